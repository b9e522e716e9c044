package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"limoride/internal/config"
	apperrors "limoride/internal/errors"
)

// AdminAuthMiddleware guards the admin subrouter: it requires a valid HS256
// bearer token issued by the login endpoint.
func AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apperrors.Write(w, apperrors.ErrUnauthorized("Unauthorized"))
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(config.AppConfig.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			apperrors.Write(w, apperrors.ErrUnauthorized("Unauthorized"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
