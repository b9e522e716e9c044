// Package inventory talks to the upstream booking backend: fleet, price
// lists and image galleries.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"limoride/internal/entities"
)

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

// Client fetches inventory from the upstream REST backend. It performs no
// caching; callers memoize within a wizard session.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	imageConcurrency int
}

// NewClient builds a client against baseURL. imageConcurrency bounds the
// per-vehicle image fan-out when loading the full catalog.
func NewClient(baseURL string, imageConcurrency int) *Client {
	return &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		httpClient:       &http.Client{Timeout: 15 * time.Second},
		imageConcurrency: imageConcurrency,
	}
}

// FetchVehicles returns the fleet list.
func (c *Client) FetchVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	raw, err := c.getJSON(ctx, "/api/vehicles")
	if err != nil {
		return nil, err
	}
	return unwrapList[entities.Vehicle](raw, "vehicles")
}

// FetchPrices returns every price list entry across service types.
func (c *Client) FetchPrices(ctx context.Context) ([]entities.PriceEntry, error) {
	raw, err := c.getJSON(ctx, "/api/prices")
	if err != nil {
		return nil, err
	}
	return unwrapList[entities.PriceEntry](raw, "prices")
}

// FetchVehicleImages returns the gallery for one vehicle.
func (c *Client) FetchVehicleImages(ctx context.Context, vehicleID int) ([]entities.VehicleImage, error) {
	raw, err := c.getJSON(ctx, fmt.Sprintf("/api/vehicle-images/%d/images", vehicleID))
	if err != nil {
		return nil, err
	}
	return unwrapList[entities.VehicleImage](raw, "images")
}

// ToPublicURL resolves a stored asset path to an absolute URL. Absolute
// inputs pass through unchanged; relative ones are joined onto the base URL
// with exactly one separator.
func (c *Client) ToPublicURL(pathOrURL string) string {
	if pathOrURL == "" {
		return ""
	}
	if absoluteURL.MatchString(pathOrURL) {
		return pathOrURL
	}
	if strings.HasPrefix(pathOrURL, "/") {
		return c.baseURL + pathOrURL
	}
	return c.baseURL + "/" + pathOrURL
}

func (c *Client) getJSON(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inventory request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("inventory request %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			return nil, fmt.Errorf("inventory request %s: %s", path, e.Message)
		}
		return nil, fmt.Errorf("inventory request %s failed (%d)", path, resp.StatusCode)
	}
	return body, nil
}

// unwrapList normalizes the backend's inconsistent envelope: some endpoints
// return a bare array, others wrap it under a named key. This check lives
// here and nowhere else.
func unwrapList[T any](raw json.RawMessage, key string) ([]T, error) {
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected %s response shape: %w", key, err)
	}
	inner, ok := envelope[key]
	if !ok {
		return []T{}, nil
	}
	if err := json.Unmarshal(inner, &list); err != nil {
		return nil, fmt.Errorf("unexpected %s response shape: %w", key, err)
	}
	return list, nil
}
