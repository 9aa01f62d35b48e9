package places

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"matzip-radar/internal/config"
	"matzip-radar/internal/country"
	"matzip-radar/internal/geo"
	"matzip-radar/internal/providers/googlemaps"
	"matzip-radar/internal/providers/navermaps"
	"matzip-radar/internal/types"
)

// naverDisplayCount is how many venues one local search request asks for.
const naverDisplayCount = 5

// NearbyProvider fetches one page of places around a coordinate.
type NearbyProvider interface {
	NearbySearch(latitude, longitude float64, radius int, placeType, pageToken string) (*googlemaps.NearbyAPIResponse, error)
}

// LocalSearchProvider queries the region-specific venue search.
type LocalSearchProvider interface {
	LocalSearch(query string, display int) (*navermaps.LocalSearchAPIResponse, error)
}

// ReverseGeocodeProvider resolves a coordinate into address candidates, used
// here to derive a locality term for local search queries.
type ReverseGeocodeProvider interface {
	ReverseGeocode(latitude, longitude float64) (*googlemaps.GeocodeAPIResponse, error)
}

// Service aggregates venue listings across providers. Provider failures
// never surface to the caller; every failure path degrades to a fallback
// provider or the mock dataset inside a success envelope.
type Service interface {
	Search(filter SearchFilter) *SearchResult
}

type placesService struct {
	detector        country.Detector
	nearbyProvider  NearbyProvider
	localProvider   LocalSearchProvider
	geocodeProvider ReverseGeocodeProvider
	cfg             *config.Config
	logger          *slog.Logger
	sleep           func(time.Duration)
}

// NewPlacesService creates a service backed by the real provider clients.
func NewPlacesService(cfg *config.Config, logger *slog.Logger) Service {
	googleClient := googlemaps.NewClient(cfg.Google.APIKey, logger)
	return NewPlacesServiceWithProviders(
		country.NewDetectorWithProvider(googleClient, logger),
		googleClient,
		navermaps.NewClient(cfg.Naver.ClientID, cfg.Naver.ClientSecret, logger),
		googleClient,
		cfg,
		logger,
	)
}

// NewPlacesServiceWithProviders creates a service with custom providers.
// This is useful for testing with mock providers.
func NewPlacesServiceWithProviders(
	detector country.Detector,
	nearbyProvider NearbyProvider,
	localProvider LocalSearchProvider,
	geocodeProvider ReverseGeocodeProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &placesService{
		detector:        detector,
		nearbyProvider:  nearbyProvider,
		localProvider:   localProvider,
		geocodeProvider: geocodeProvider,
		cfg:             cfg,
		logger:          logger.With("component", "places-service"),
		sleep:           time.Sleep,
	}
}

func (s *placesService) Search(filter SearchFilter) *SearchResult {
	countryInfo := s.detector.Detect(filter.Location.Latitude, filter.Location.Longitude)
	s.logger.Info("location detected",
		"country", countryInfo.Country,
		"is_korea", countryInfo.IsKorea,
	)

	naverFailed := false
	if filter.PreferLocal && countryInfo.IsKorea && s.cfg.Naver.Configured() {
		result, err := s.searchNaver(filter, countryInfo)
		if err == nil {
			return result
		}
		s.logger.Warn("local provider failed, falling back", "error", err)
		naverFailed = true
	}

	if s.cfg.Google.APIKey == "" {
		s.logger.Info("no places API key configured, serving mock data")
		return &SearchResult{
			Listings: s.mockListings(filter, countryInfo),
			Mock:     true,
			Message:  "Google Places API 키가 설정되지 않아 데모 모드로 실행됩니다.",
			Debug:    DebugNoAPIKey,
			Country:  countryInfo,
		}
	}

	return s.searchGoogle(filter, countryInfo, naverFailed)
}

// searchGoogle pages through the nearby search, annotates and filters the
// accumulated results, and composes the envelope.
func (s *placesService) searchGoogle(filter SearchFilter, countryInfo types.CountryInfo, naverFailed bool) *SearchResult {
	var accumulated []googlemaps.PlaceResult
	pageToken := ""
	pageCount := 0
	maxPages := s.cfg.App.MaxPages

	for {
		page, err := s.nearbyProvider.NearbySearch(
			filter.Location.Latitude,
			filter.Location.Longitude,
			filter.Radius,
			filter.PlaceType,
			pageToken,
		)
		if err != nil {
			return s.abortPagination(filter, countryInfo, accumulated, err)
		}

		if page.Status == "OK" && len(page.Results) > 0 {
			accumulated = append(accumulated, page.Results...)
			pageToken = page.NextPageToken
			pageCount++
		} else {
			pageToken = ""
		}

		if pageToken == "" || pageCount >= maxPages {
			break
		}

		// The continuation token is not valid immediately; the upstream API
		// needs a moment before it accepts the cursor. Sequential by
		// contract, never parallelized.
		s.sleep(s.cfg.App.PageDelay())
	}

	listings := s.processGoogleResults(filter, accumulated)
	s.logger.Info("nearby search complete",
		"raw_count", len(accumulated),
		"filtered_count", len(listings),
		"pages", pageCount,
	)

	debug := DebugSuccessGoogle
	if naverFailed {
		debug = DebugNaverFailedFallback
	}

	return &SearchResult{
		Listings: listings,
		Mock:     false,
		Message:  fmt.Sprintf("Google Places API로 %d개 맛집 정보를 제공합니다.", len(listings)),
		Debug:    debug,
		Country:  countryInfo,
	}
}

// abortPagination converts a mid-pagination provider failure into either a
// partial result set or a full mock fallback.
func (s *placesService) abortPagination(filter SearchFilter, countryInfo types.CountryInfo, accumulated []googlemaps.PlaceResult, err error) *SearchResult {
	debug := DebugServerError
	var statusErr *googlemaps.StatusError
	if errors.As(err, &statusErr) {
		debug = fmt.Sprintf("HTTP_ERROR_%d", statusErr.Code)
	}

	if len(accumulated) == 0 {
		s.logger.Warn("nearby search failed with no results, serving mock data", "error", err)
		return &SearchResult{
			Listings: s.mockListings(filter, countryInfo),
			Mock:     true,
			Message:  "Google Places API 오류로 인해 데모 모드로 전환되었습니다.",
			Debug:    debug,
			Country:  countryInfo,
		}
	}

	s.logger.Warn("nearby search failed mid-pagination, serving partial results",
		"error", err,
		"accumulated", len(accumulated),
	)
	return &SearchResult{
		Listings: s.processGoogleResults(filter, accumulated),
		Mock:     false,
		Message:  "Google Places API 오류로 인해 일부 결과만 제공됩니다.",
		Debug:    debug,
		Country:  countryInfo,
	}
}

// processGoogleResults annotates raw places with distance and applies the
// category, keyword, and rating filters.
func (s *placesService) processGoogleResults(filter SearchFilter, results []googlemaps.PlaceResult) []types.Venue {
	listings := make([]types.Venue, 0, len(results))

	for _, result := range results {
		if filter.PlaceType != "" && filter.PlaceType != "all" && !matchesType(result.Types, filter.PlaceType) {
			continue
		}
		if filter.Keyword != "" &&
			!strings.Contains(result.Name, filter.Keyword) &&
			!strings.Contains(result.Vicinity, filter.Keyword) {
			continue
		}
		if filter.MinRating > 0 && (result.Rating == 0 || result.Rating < filter.MinRating) {
			continue
		}

		listings = append(listings, types.Venue{
			PlaceID:      result.PlaceID,
			Name:         result.Name,
			Rating:       result.Rating,
			RatingSource: types.RatingSourceGoogle,
			Vicinity:     result.Vicinity,
			Types:        result.Types,
			PriceLevel:   result.PriceLevel,
			DistanceMeters: geo.Distance(
				filter.Location,
				result.Geometry.Location,
			),
			Geometry: result.Geometry,
		})
	}

	return listings
}

// matchesType implements the category filter: a listing survives only when
// its tag set contains the requested place type.
func matchesType(tags []string, placeType string) bool {
	for _, tag := range tags {
		if tag == placeType {
			return true
		}
	}
	return false
}

// searchNaver queries the local provider using a locality term derived from
// the request coordinate. Results come back distance-filtered.
func (s *placesService) searchNaver(filter SearchFilter, countryInfo types.CountryInfo) (*SearchResult, error) {
	locality, err := s.localityFor(filter.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to derive locality: %w", err)
	}

	term := filter.Keyword
	if term == "" {
		term = s.cfg.App.CategoryLabels[filter.PlaceType]
	}
	if term == "" {
		term = "맛집"
	}
	query := strings.TrimSpace(locality + " " + term)

	resp, err := s.localProvider.LocalSearch(query, naverDisplayCount)
	if err != nil {
		return nil, fmt.Errorf("local search failed: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("local search returned no items for %q", query)
	}

	titleCleaner := strings.NewReplacer("<b>", "", "</b>", "")

	listings := make([]types.Venue, 0, len(resp.Items))
	for _, item := range resp.Items {
		latitude, longitude, err := item.Coordinates()
		if err != nil {
			s.logger.Warn("skipping local result with bad coordinates", "title", item.Title, "error", err)
			continue
		}

		location := types.NewCoords(latitude, longitude)
		distance := geo.Distance(filter.Location, location)
		if distance > float64(filter.Radius) {
			continue
		}

		listings = append(listings, types.Venue{
			PlaceID:        "naver_" + item.Mapx + "_" + item.Mapy,
			Name:           titleCleaner.Replace(item.Title),
			RatingSource:   types.RatingSourceNaver,
			Vicinity:       item.RoadAddress,
			Types:          []string{filter.PlaceType},
			Phone:          item.Telephone,
			Category:       item.Category,
			DistanceMeters: distance,
			Geometry:       types.Geometry{Location: location},
		})
	}

	s.logger.Info("local search complete", "query", query, "count", len(listings))

	return &SearchResult{
		Listings: listings,
		Mock:     false,
		Message:  fmt.Sprintf("네이버 검색 API로 %d개 맛집 정보를 제공합니다.", len(listings)),
		Debug:    DebugSuccessNaver,
		Country:  countryInfo,
	}, nil
}

// localityFor reverse-geocodes the request point and extracts the
// neighborhood (or district) to anchor the local search query.
func (s *placesService) localityFor(location types.Coords) (string, error) {
	resp, err := s.geocodeProvider.ReverseGeocode(location.Latitude, location.Longitude)
	if err != nil {
		return "", err
	}
	if len(resp.Results) == 0 {
		return "", fmt.Errorf("reverse geocode returned no results")
	}

	district := ""
	for _, component := range resp.Results[0].AddressComponents {
		for _, componentType := range component.Types {
			if componentType == "sublocality_level_1" {
				return component.LongName, nil
			}
			if componentType == "administrative_area_level_2" {
				district = component.LongName
			}
		}
	}
	if district == "" {
		return "", fmt.Errorf("no locality component in reverse geocode result")
	}
	return district, nil
}

func (s *placesService) mockListings(filter SearchFilter, countryInfo types.CountryInfo) []types.Venue {
	return MockListings(filter.PlaceType, filter.MinRating, filter.Radius, countryInfo.IsKorea, s.cfg.App.CategoryLabels)
}
