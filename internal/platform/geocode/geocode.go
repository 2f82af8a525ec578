// Package geocode resolves street addresses to coordinates using the
// Google Maps Geocoding API. The engine depends only on the Geocoder
// interface so tests can substitute a stub.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/phrazzld/places-api/internal/config"
	"github.com/phrazzld/places-api/internal/domain"
)

// ErrZeroResults is returned when the geocoding service cannot resolve the
// given address to any location.
var ErrZeroResults = errors.New("could not find location for the specified address")

// defaultBaseURL is the production Google Maps Geocoding endpoint.
const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Geocoder resolves a free-form address to coordinates.
type Geocoder interface {
	// Resolve returns the coordinates for the address, or ErrZeroResults
	// if the address cannot be resolved.
	Resolve(ctx context.Context, address string) (domain.Location, error)
}

// Client is an HTTP implementation of Geocoder backed by the Google Maps API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client from configuration.
func NewClient(cfg config.GeocodeConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

var _ Geocoder = (*Client)(nil)

// geocodeResponse mirrors the subset of the Google Maps response we consume.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Resolve implements Geocoder.
func (c *Client) Resolve(ctx context.Context, address string) (domain.Location, error) {
	reqURL := fmt.Sprintf("%s?address=%s&key=%s",
		c.baseURL, url.QueryEscape(address), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, fmt.Errorf("geocode request failed with status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Location{}, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if body.Status == "ZERO_RESULTS" || len(body.Results) == 0 {
		return domain.Location{}, ErrZeroResults
	}

	if body.Status != "OK" {
		return domain.Location{}, fmt.Errorf("geocode request failed with status %q", body.Status)
	}

	loc := body.Results[0].Geometry.Location
	return domain.Location{Lat: loc.Lat, Lng: loc.Lng}, nil
}
