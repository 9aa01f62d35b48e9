package country

import (
	"log/slog"

	"matzip-radar/internal/providers/googlemaps"
	"matzip-radar/internal/types"
)

// koreaCountryCode is the short code the detector matches against.
const koreaCountryCode = "KR"

// Detector classifies a coordinate as inside or outside Korea.
type Detector interface {
	// Detect reverse-geocodes the point and reports its country. It never
	// fails; any provider problem yields the Unknown classification.
	Detect(latitude, longitude float64) types.CountryInfo
}

// ReverseGeocodeProvider defines the reverse-geocoding dependency.
type ReverseGeocodeProvider interface {
	ReverseGeocode(latitude, longitude float64) (*googlemaps.GeocodeAPIResponse, error)
}

type detector struct {
	provider ReverseGeocodeProvider
	logger   *slog.Logger
}

// NewDetector creates a detector backed by the Google geocoding API.
func NewDetector(apiKey string, logger *slog.Logger) Detector {
	return NewDetectorWithProvider(googlemaps.NewClient(apiKey, logger), logger)
}

// NewDetectorWithProvider creates a detector with a custom provider.
// This is useful for testing with mock providers.
func NewDetectorWithProvider(provider ReverseGeocodeProvider, logger *slog.Logger) Detector {
	return &detector{
		provider: provider,
		logger:   logger.With("component", "country-detector"),
	}
}

func (d *detector) Detect(latitude, longitude float64) types.CountryInfo {
	resp, err := d.provider.ReverseGeocode(latitude, longitude)
	if err != nil {
		d.logger.Warn("country check failed", "error", err)
		return types.UnknownCountry()
	}

	if resp == nil || len(resp.Results) == 0 {
		return types.UnknownCountry()
	}

	for _, component := range resp.Results[0].AddressComponents {
		for _, componentType := range component.Types {
			if componentType == "country" {
				return types.CountryInfo{
					Country:     component.LongName,
					CountryCode: component.ShortName,
					IsKorea:     component.ShortName == koreaCountryCode,
				}
			}
		}
	}

	return types.UnknownCountry()
}
