package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limoride/internal/config"
	"limoride/internal/pricing"
	"limoride/internal/service"
)

func previewRequest(t *testing.T, body PricePreviewRequest) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/admin/prices/preview", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	NewAdminHandler().PricePreview(rec, req)
	return rec
}

func TestPricePreviewHourly(t *testing.T) {
	rec := previewRequest(t, PricePreviewRequest{ServiceType: "hourly", BaseRate: 100})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp PricePreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 100, resp.Breakdown.BaseRate, 0.001)
	assert.InDelta(t, 20, resp.Breakdown.OperatingCost, 0.001)
	assert.InDelta(t, 3, resp.Breakdown.CreditCardFee, 0.001)
	assert.InDelta(t, 8.9, resp.Breakdown.StateSalesTax, 0.001)
	assert.InDelta(t, 2.75, resp.Breakdown.CongestionSurcharge, 0.001)
	assert.InDelta(t, 0, resp.Breakdown.BusinessDiscount, 0.001)
	assert.InDelta(t, 134.65, resp.Breakdown.Total, 0.001)
	assert.Equal(t, "$134.65", resp.Display)
}

func TestPricePreviewDailyDiscount(t *testing.T) {
	rec := previewRequest(t, PricePreviewRequest{ServiceType: "daily", BaseRate: 100, MinHours: 10})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp PricePreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 30, resp.Breakdown.BusinessDiscount, 0.001)
	assert.InDelta(t, 104.65, resp.Breakdown.Total, 0.001)
}

func TestPricePreviewDailyRequiresTenHours(t *testing.T) {
	rec := previewRequest(t, PricePreviewRequest{ServiceType: "daily", BaseRate: 100, MinHours: 8})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "minimum 10 hours")
}

func TestPricePreviewPointToPointRequiresPerKmRate(t *testing.T) {
	rec := previewRequest(t, PricePreviewRequest{ServiceType: "point-to-point", BaseRate: 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = previewRequest(t, PricePreviewRequest{
		ServiceType: "point-to-point", BaseRate: 100, PerKmRate: pricing.Float(2.5),
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPricePreviewRejectsBadInput(t *testing.T) {
	rec := previewRequest(t, PricePreviewRequest{ServiceType: "hourly", BaseRate: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = previewRequest(t, PricePreviewRequest{ServiceType: "weekly", BaseRate: 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminLogin(t *testing.T) {
	hash, err := service.HashPassword("s3cret")
	require.NoError(t, err)

	prev := config.AppConfig
	config.AppConfig = config.Config{
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: hash,
		JWTSecret:         "test-secret",
	}
	t.Cleanup(func() { config.AppConfig = prev })

	handler := NewAdminAuthHandler(service.NewAdminAuthService())

	login := func(email, password string) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(LoginRequest{Email: email, Password: password})
		req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(raw))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)
		return rec
	}

	rec := login("admin@example.com", "s3cret")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	assert.Equal(t, http.StatusUnauthorized, login("admin@example.com", "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, login("intruder@example.com", "s3cret").Code)
}
