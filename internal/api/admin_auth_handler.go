package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "limoride/internal/errors"
	"limoride/internal/logging"
	"limoride/internal/service"
)

type AdminAuthHandler struct {
	service service.AdminAuthService
}

func NewAdminAuthHandler(svc service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the operator credential for a bearer token scoped to the
// pricing surface. Failures are reported without distinguishing a wrong
// email from a wrong password.
func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Write(w, apperrors.ErrBadRequest("Invalid request body"))
		return
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		logging.GetLogger().Warn("admin login rejected", zap.String("email", req.Email))
		apperrors.Write(w, apperrors.ErrUnauthorized("Invalid credentials"))
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}
