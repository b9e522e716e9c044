package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limoride/internal/entities"
	"limoride/internal/reservation"
)

func TestSubmitClientSuccess(t *testing.T) {
	var got entities.ReservationPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reservations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entities.SubmitResponse{OK: true, Message: "Reservation received."})
	}))
	defer server.Close()

	client := NewSubmitClient(server.URL)
	resp, err := client.Submit(context.Background(), entities.ReservationPayload{
		ServiceType: "Point to Point",
		Email:       "ada@example.com",
		Passengers:  2,
	})
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, "Reservation received.", resp.Message)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestSubmitClientFieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(entities.SubmitResponse{
			Message: "Validation failed.",
			Errors:  map[string]string{"phone": "Enter a valid phone."},
		})
	}))
	defer server.Close()

	client := NewSubmitClient(server.URL)
	_, err := client.Submit(context.Background(), entities.ReservationPayload{})
	require.Error(t, err)

	var submitErr *reservation.SubmitError
	require.True(t, errors.As(err, &submitErr))
	assert.Equal(t, http.StatusUnprocessableEntity, submitErr.Status)
	assert.Equal(t, "Validation failed.", submitErr.Message)
	assert.Equal(t, "Enter a valid phone.", submitErr.Fields["phone"])
}

func TestSubmitClientDefaultMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := NewSubmitClient(server.URL)
	_, err := client.Submit(context.Background(), entities.ReservationPayload{})

	var submitErr *reservation.SubmitError
	require.True(t, errors.As(err, &submitErr))
	assert.Equal(t, http.StatusBadGateway, submitErr.Status)
	assert.Equal(t, "Failed to submit reservation.", submitErr.Message)
	assert.Empty(t, submitErr.Fields)
}

func TestSubmitClientTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewSubmitClient(server.URL)
	_, err := client.Submit(context.Background(), entities.ReservationPayload{})
	require.Error(t, err)

	var submitErr *reservation.SubmitError
	assert.False(t, errors.As(err, &submitErr))
}
