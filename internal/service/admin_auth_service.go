package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"limoride/internal/config"
)

type AdminAuthService interface {
	Login(email, password string) (string, error)
}

type adminAuthService struct{}

func NewAdminAuthService() AdminAuthService {
	return &adminAuthService{}
}

// Login checks the configured admin credential and issues a short-lived
// token for the admin pricing surface.
func (s *adminAuthService) Login(email, password string) (string, error) {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		return "", errors.New("admin credentials not configured")
	}
	if email != cfg.AdminEmail {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	if cfg.JWTSecret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour * 1).Unix(), // Token expires in 1 hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// HashPassword generates the bcrypt hash stored in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
