package navermaps

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://developers.naver.com/docs/serviceapi/search/local/local.md
const baseURL = "https://openapi.naver.com/v1/search/local.json"

// coordScale converts the API's fixed-point integer coordinates to decimal
// degrees. TODO confirm against Naver's documented coordinate encoding; the
// divisor is carried over from the previous deployment and has not been
// verified with live credentials.
const coordScale = 1e7

type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	logger       *slog.Logger
}

func NewClient(clientID, clientSecret string, logger *slog.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{},
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger.With("component", "navermaps-client"),
	}
}

// NewClientWithBaseURL creates a client pointed at a custom endpoint.
// This is useful for testing against an httptest server.
func NewClientWithBaseURL(clientID, clientSecret, base string, logger *slog.Logger) *Client {
	c := NewClient(clientID, clientSecret, logger)
	c.baseURL = base
	return c
}

// LocalSearch queries venues matching a free-text term.
func (c *Client) LocalSearch(query string, display int) (*LocalSearchAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("query", query)
	q.Set("display", strconv.Itoa(display))
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	c.logger.Debug("local search", "query", query, "display", display)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch local search results", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("local search API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp LocalSearchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode local search response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// Coordinates decodes an item's fixed-point map coordinates into decimal
// degrees, longitude first in the raw payload (mapx) and latitude second
// (mapy).
func (i LocalSearchItem) Coordinates() (latitude, longitude float64, err error) {
	x, err := strconv.ParseFloat(i.Mapx, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid mapx %q: %w", i.Mapx, err)
	}
	y, err := strconv.ParseFloat(i.Mapy, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid mapy %q: %w", i.Mapy, err)
	}
	return y / coordScale, x / coordScale, nil
}
