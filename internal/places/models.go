package places

import "matzip-radar/internal/types"

// SearchFilter drives both provider query construction and post-hoc
// filtering of the returned listings.
type SearchFilter struct {
	Location  types.Coords
	Radius    int
	PlaceType string
	MinRating float64
	Keyword   string
	// PreferLocal asks for the Naver local provider to be tried first when
	// the coordinate is in Korea and credentials are configured.
	PreferLocal bool
}

// SearchResult is the aggregation envelope. Message and Debug describe which
// provider served the request; they are informational only and must never
// drive behavior downstream.
type SearchResult struct {
	Listings []types.Venue
	Mock     bool
	Message  string
	Debug    string
	Country  types.CountryInfo
}

// Debug codes reported in the envelope.
const (
	DebugNoAPIKey            = "NO_API_KEY"
	DebugSuccessGoogle       = "SUCCESS_GOOGLE_PAGINATED"
	DebugSuccessNaver        = "SUCCESS_NAVER"
	DebugNaverFailedFallback = "NAVER_API_FAILED_FALLBACK_GOOGLE"
	DebugServerError         = "SERVER_ERROR"
)
