package googlemaps

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://developers.google.com/maps/documentation/geocoding/requests-geocoding
//           https://developers.google.com/maps/documentation/places/web-service/search-nearby
const (
	geocodeBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	nearbyBaseURL  = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
)

// StatusError is returned when the API answers with a non-200 HTTP status,
// preserving the code for callers that report it.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.Code, e.Body)
}

type Client struct {
	httpClient     *http.Client
	geocodeBaseURL string
	nearbyBaseURL  string
	apiKey         string
	logger         *slog.Logger
}

func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{},
		geocodeBaseURL: geocodeBaseURL,
		nearbyBaseURL:  nearbyBaseURL,
		apiKey:         apiKey,
		logger:         logger.With("component", "googlemaps-client"),
	}
}

// NewClientWithBaseURLs creates a client pointed at custom endpoints.
// This is useful for testing against an httptest server.
func NewClientWithBaseURLs(apiKey, geocodeURL, nearbyURL string, logger *slog.Logger) *Client {
	c := NewClient(apiKey, logger)
	c.geocodeBaseURL = geocodeURL
	c.nearbyBaseURL = nearbyURL
	return c
}

// Geocode resolves a free-text address into coordinate candidates.
func (c *Client) Geocode(address string) (*GeocodeAPIResponse, error) {
	u, err := url.Parse(c.geocodeBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("address", address)
	q.Set("key", c.apiKey)
	q.Set("language", "ko")
	u.RawQuery = q.Encode()

	c.logger.Debug("forward geocoding", "address", address)

	return c.fetchGeocode(u.String())
}

// ReverseGeocode resolves a coordinate into address candidates.
func (c *Client) ReverseGeocode(latitude, longitude float64) (*GeocodeAPIResponse, error) {
	u, err := url.Parse(c.geocodeBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latlng", fmt.Sprintf("%f,%f", latitude, longitude))
	q.Set("key", c.apiKey)
	q.Set("language", "ko")
	u.RawQuery = q.Encode()

	c.logger.Debug("reverse geocoding", "latitude", latitude, "longitude", longitude)

	return c.fetchGeocode(u.String())
}

func (c *Client) fetchGeocode(requestURL string) (*GeocodeAPIResponse, error) {
	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		c.logger.Error("failed to fetch geocode response", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("geocoding API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var apiResp GeocodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode geocode response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// NearbySearch fetches one page of places around a coordinate. Pass the
// previous page's continuation token to fetch a follow-up page.
func (c *Client) NearbySearch(latitude, longitude float64, radius int, placeType, pageToken string) (*NearbyAPIResponse, error) {
	u, err := url.Parse(c.nearbyBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("location", fmt.Sprintf("%f,%f", latitude, longitude))
	q.Set("radius", strconv.Itoa(radius))
	q.Set("type", placeType)
	q.Set("key", c.apiKey)
	q.Set("language", "ko")
	if pageToken != "" {
		q.Set("pagetoken", pageToken)
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("nearby search",
		"latitude", latitude,
		"longitude", longitude,
		"radius", radius,
		"type", placeType,
		"paged", pageToken != "",
	)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch nearby search page", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("nearby search API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var apiResp NearbyAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode nearby search response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("nearby search page fetched",
		"status", apiResp.Status,
		"result_count", len(apiResp.Results),
		"has_next_page", apiResp.NextPageToken != "",
	)

	return &apiResp, nil
}
