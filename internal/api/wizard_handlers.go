package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	apperrors "limoride/internal/errors"
	"limoride/internal/logging"
	"limoride/internal/repository"
	"limoride/internal/reservation"
	"limoride/internal/service"
)

// WizardHandler hosts the reservation wizard over REST. Every response
// carries the full session state so callers render from one source of
// truth.
type WizardHandler struct {
	Service *service.BookingService
}

func NewWizardHandler(svc *service.BookingService) *WizardHandler {
	return &WizardHandler{Service: svc}
}

func (h *WizardHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.StartSession(r.Context())
	if err != nil {
		logging.GetLogger().Error("starting wizard session failed", zap.Error(err))
		http.Error(w, "Could not start a reservation session", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, newWizardState(session))
}

func (h *WizardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newWizardState(session))
}

func (h *WizardHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var req SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.SetField(r.Context(), mux.Vars(r)["id"], req.Key, req.Value)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			h.sessionError(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, newWizardState(session))
}

func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.Next(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, reservation.ErrInvalid) {
			writeJSON(w, http.StatusUnprocessableEntity, newWizardState(session))
			return
		}
		h.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newWizardState(session))
}

func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.Back(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newWizardState(session))
}

func (h *WizardHandler) SelectVehicle(w http.ResponseWriter, r *http.Request) {
	var req SelectVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, err := h.Service.SelectVehicle(r.Context(), mux.Vars(r)["id"], req.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			h.sessionError(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, newWizardState(session))
}

func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	resp, session, err := h.Service.Submit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		var submitErr *reservation.SubmitError
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			h.sessionError(w, err)
		case errors.Is(err, reservation.ErrInvalid):
			writeJSON(w, http.StatusUnprocessableEntity, newWizardState(session))
		case errors.As(err, &submitErr):
			// Field errors are already merged into the session's error map;
			// the caller stays on the confirm step and may retry.
			state := newWizardState(session)
			state.Message = submitErr.Message
			writeJSON(w, http.StatusUnprocessableEntity, state)
		default:
			logging.GetLogger().Error("reservation submission failed", zap.Error(err))
			if session == nil {
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			state := newWizardState(session)
			state.Message = "Failed to submit reservation."
			writeJSON(w, http.StatusBadGateway, state)
		}
		return
	}

	state := newWizardState(session)
	state.Message = resp.Message
	writeJSON(w, http.StatusOK, state)
}

func (h *WizardHandler) sessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrSessionNotFound) {
		apperrors.Write(w, apperrors.ErrNotFound("Session not found or expired"))
		return
	}
	apperrors.Write(w, err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
