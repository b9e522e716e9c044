package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"limoride/internal/entities"
	"limoride/internal/reservation"
)

// SubmitClient posts finished reservation payloads to the upstream booking
// intake. Implements reservation.Submitter.
type SubmitClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewSubmitClient(baseURL string) *SubmitClient {
	return &SubmitClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// Submit sends the payload. A non-success response becomes a SubmitError
// carrying the intake's message and, when present, its field-error map. A
// transport or parse failure surfaces as a generic error so the wizard can
// show a retryable banner instead of field guidance.
func (c *SubmitClient) Submit(ctx context.Context, payload entities.ReservationPayload) (*entities.SubmitResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode reservation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/reservations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit reservation: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("submit reservation: %w", err)
	}

	var parsed entities.SubmitResponse
	// A body that doesn't parse is treated as absent; status decides.
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Message
		if msg == "" {
			msg = "Failed to submit reservation."
		}
		return nil, &reservation.SubmitError{
			Status:  resp.StatusCode,
			Message: msg,
			Fields:  parsed.Errors,
		}
	}
	return &parsed, nil
}
