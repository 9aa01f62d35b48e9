package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"matzip-radar/internal/address"
	"matzip-radar/internal/geocode"
	"matzip-radar/internal/types"
)

// GeocodeRequest carries either a free-text query (forward lookup) or a
// coordinate pair (reverse lookup).
type GeocodeRequest struct {
	Query string   `json:"query"`
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
}

// ForwardGeocodeResponse is the forward-lookup payload
type ForwardGeocodeResponse struct {
	Results []types.GeocodeCandidate `json:"results"`
	Message string                   `json:"message,omitempty"`
}

// ReverseGeocodeResponse is the reverse-lookup payload
type ReverseGeocodeResponse struct {
	Address string `json:"address"`
	Comment string `json:"comment"`
	Error   string `json:"error,omitempty"`
}

// handleGeocode godoc
// @Summary Forward or reverse geocoding
// @Description Resolve a free-text query into coordinate candidates, or a coordinate into a display address with a themed comment
// @Tags geocode
// @Accept json
// @Produce json
// @Param request body GeocodeRequest true "Query for forward lookup, or lat/lng for reverse lookup"
// @Success 200 {object} ReverseGeocodeResponse
// @Failure 400 {object} map[string]string
// @Router /api/geocode [post]
func (app *App) handleGeocode(c *gin.Context) {
	var req GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "위치 정보 또는 검색어가 필요합니다."})
		return
	}

	switch {
	case req.Query != "":
		app.handleForwardGeocode(c, req.Query)
	case req.Lat != nil && req.Lng != nil:
		app.handleReverseGeocode(c, *req.Lat, *req.Lng)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "위치 정보 또는 검색어가 필요합니다."})
	}
}

func (app *App) handleForwardGeocode(c *gin.Context, query string) {
	candidates, err := app.geocodeService.Forward(query)
	if err != nil {
		if errors.Is(err, geocode.ErrNoAPIKey) {
			c.JSON(http.StatusOK, noAPIKeyGeocodePayload())
			return
		}
		app.logger.Error("forward geocoding failed", "query", query, "error", err)
		c.JSON(http.StatusOK, ForwardGeocodeResponse{
			Results: []types.GeocodeCandidate{},
			Message: "위치 검색 중 오류가 발생했습니다.",
		})
		return
	}

	if len(candidates) == 0 {
		c.JSON(http.StatusOK, ForwardGeocodeResponse{
			Results: []types.GeocodeCandidate{},
			Message: "검색된 위치가 없습니다.",
		})
		return
	}

	c.JSON(http.StatusOK, ForwardGeocodeResponse{Results: candidates})
}

func (app *App) handleReverseGeocode(c *gin.Context, lat, lng float64) {
	addr, comment, err := app.geocodeService.Reverse(lat, lng)
	if err != nil {
		if errors.Is(err, geocode.ErrNoAPIKey) {
			c.JSON(http.StatusOK, noAPIKeyGeocodePayload())
			return
		}
		// Reverse only errors on a missing key; anything else already
		// degraded inside the service. Keep the soft contract regardless.
		app.logger.Error("reverse geocoding failed", "error", err)
		c.JSON(http.StatusOK, ReverseGeocodeResponse{
			Address: address.PlaceholderAddress,
			Comment: address.GenericComment,
		})
		return
	}

	c.JSON(http.StatusOK, ReverseGeocodeResponse{
		Address: addr,
		Comment: comment,
	})
}

func noAPIKeyGeocodePayload() ReverseGeocodeResponse {
	return ReverseGeocodeResponse{
		Address: "API 키 없음",
		Comment: "Google Places API 키가 설정되지 않아 위치 검색이 제한됩니다.",
		Error:   "NO_API_KEY",
	}
}
