package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matzip-radar/internal/places"
	"matzip-radar/internal/types"
)

// PlacesRequest is the search request body. Location is required; everything
// else falls back to the documented defaults.
type PlacesRequest struct {
	Location    *types.Coords `json:"location"`
	Radius      int           `json:"radius"`
	Type        string        `json:"type"`
	MinRating   float64       `json:"minRating"`
	Keyword     string        `json:"keyword"`
	PreferLocal bool          `json:"preferLocal"`
}

// PlacesResponse is the search envelope returned to the client
type PlacesResponse struct {
	Results []types.Venue `json:"results"`
	Status  string        `json:"status"`
	Mock    bool          `json:"mock"`
	Message string        `json:"message"`
	Debug   string        `json:"debug"`
	Country string        `json:"country"`
	IsKorea bool          `json:"isKorea"`
}

// handlePlaces godoc
// @Summary Search nearby restaurants and bars
// @Description Aggregate venue listings around a coordinate, with category, keyword, and rating filters. Provider failures degrade to demo data; the endpoint never fails past input validation
// @Tags places
// @Accept json
// @Produce json
// @Param request body PlacesRequest true "Search filter"
// @Success 200 {object} PlacesResponse
// @Failure 400 {object} map[string]string
// @Router /api/places [post]
func (app *App) handlePlaces(c *gin.Context) {
	var req PlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Location == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "위치 정보가 필요합니다."})
		return
	}

	if req.Radius == 0 {
		req.Radius = 1000
	}
	if req.Type == "" {
		req.Type = "restaurant"
	}

	// The search contract has no failure mode past input validation: any
	// panic in the pipeline becomes a demo-mode envelope, never a 5xx.
	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("places search panicked", "panic", r)
			c.JSON(http.StatusOK, serverErrorPlacesResponse(app.cfg.App.CategoryLabels))
		}
	}()

	result := app.placesService.Search(places.SearchFilter{
		Location:    *req.Location,
		Radius:      req.Radius,
		PlaceType:   req.Type,
		MinRating:   req.MinRating,
		Keyword:     req.Keyword,
		PreferLocal: req.PreferLocal,
	})

	c.JSON(http.StatusOK, PlacesResponse{
		Results: result.Listings,
		Status:  "OK",
		Mock:    result.Mock,
		Message: result.Message,
		Debug:   result.Debug,
		Country: result.Country.Country,
		IsKorea: result.Country.IsKorea,
	})
}

func serverErrorPlacesResponse(categoryLabels map[string]string) PlacesResponse {
	return PlacesResponse{
		Results: places.MockListings("restaurant", 0, 1000, true, categoryLabels),
		Status:  "OK",
		Mock:    true,
		Message: "서버 오류로 인해 데모 모드로 전환되었습니다.",
		Debug:   places.DebugServerError,
		Country: "대한민국",
		IsKorea: true,
	}
}
