package geocode

import (
	"errors"
	"fmt"
	"log/slog"

	"matzip-radar/internal/address"
	"matzip-radar/internal/providers/googlemaps"
	"matzip-radar/internal/types"
)

// ErrNoAPIKey signals that no geocoding credential is configured; callers
// render the fixed demo-mode payload instead of an error status.
var ErrNoAPIKey = errors.New("no geocoding API key configured")

// searchedPlaceComment annotates every forward-geocoding candidate.
const searchedPlaceComment = "검색된 위치입니다. 맛집을 찾아보세요! 📍"

// Provider defines the geocoding dependency.
type Provider interface {
	Geocode(addr string) (*googlemaps.GeocodeAPIResponse, error)
	ReverseGeocode(latitude, longitude float64) (*googlemaps.GeocodeAPIResponse, error)
}

// Service resolves free-text queries to coordinates and coordinates to
// display addresses with a themed comment.
type Service interface {
	Forward(query string) ([]types.GeocodeCandidate, error)
	Reverse(latitude, longitude float64) (addr, comment string, err error)
}

type geocodeService struct {
	provider Provider
	apiKey   string
	logger   *slog.Logger
}

// NewGeocodeService creates a service backed by the Google geocoding API.
func NewGeocodeService(apiKey string, logger *slog.Logger) Service {
	return NewGeocodeServiceWithProvider(googlemaps.NewClient(apiKey, logger), apiKey, logger)
}

// NewGeocodeServiceWithProvider creates a service with a custom provider.
// This is useful for testing with mock providers.
func NewGeocodeServiceWithProvider(provider Provider, apiKey string, logger *slog.Logger) Service {
	return &geocodeService{
		provider: provider,
		apiKey:   apiKey,
		logger:   logger.With("component", "geocode-service"),
	}
}

// Forward resolves a free-text address query into candidate locations. An
// empty candidate list with a nil error means the query matched nothing.
func (s *geocodeService) Forward(query string) ([]types.GeocodeCandidate, error) {
	if s.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	resp, err := s.provider.Geocode(query)
	if err != nil {
		s.logger.Error("forward geocoding failed", "query", query, "error", err)
		return nil, fmt.Errorf("forward geocoding failed: %w", err)
	}

	candidates := make([]types.GeocodeCandidate, 0, len(resp.Results))
	for _, result := range resp.Results {
		candidates = append(candidates, types.GeocodeCandidate{
			Latitude:  result.Geometry.Location.Latitude,
			Longitude: result.Geometry.Location.Longitude,
			Address:   result.FormattedAddress,
			Comment:   searchedPlaceComment,
		})
	}

	s.logger.Info("forward geocoding complete", "query", query, "candidates", len(candidates))
	return candidates, nil
}

// Reverse resolves a coordinate into a display address and comment. Provider
// failures degrade to the generic placeholder pair rather than an error.
func (s *geocodeService) Reverse(latitude, longitude float64) (string, string, error) {
	if s.apiKey == "" {
		return "", "", ErrNoAPIKey
	}

	resp, err := s.provider.ReverseGeocode(latitude, longitude)
	if err != nil {
		s.logger.Warn("reverse geocoding failed, serving placeholder",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return address.PlaceholderAddress, address.GenericComment, nil
	}

	if len(resp.Results) == 0 {
		return address.PlaceholderAddress, address.GenericComment, nil
	}

	addr, comment := address.Format(resp.Results[0].AddressComponents)
	return addr, comment, nil
}
