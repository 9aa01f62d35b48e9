package types

// GeocodeCandidate is one forward-geocoding match for a free-text query.
type GeocodeCandidate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address"`
	Comment   string  `json:"comment"`
}

// CountryInfo classifies a coordinate relative to the service's home country.
// It is computed once per places request and never cached across requests.
type CountryInfo struct {
	Country     string
	CountryCode string
	IsKorea     bool
}

// UnknownCountry is returned whenever country detection fails; detection
// failures must never abort the caller's flow.
func UnknownCountry() CountryInfo {
	return CountryInfo{
		Country:     "Unknown",
		CountryCode: "Unknown",
		IsKorea:     false,
	}
}
