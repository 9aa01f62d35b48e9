package types

// Rating sources reported to the client alongside each listing.
const (
	RatingSourceGoogle = "google"
	RatingSourceNaver  = "naver"
)

// Geometry mirrors the Google Places geometry object so listings can be
// serialized in the wire format the client already renders.
type Geometry struct {
	Location Coords `json:"location"`
}

// Venue is a single place listing, either from a provider or the mock set.
type Venue struct {
	PlaceID      string   `json:"place_id"`
	Name         string   `json:"name"`
	Rating       float64  `json:"rating,omitempty"`
	RatingSource string   `json:"rating_source"`
	Vicinity     string   `json:"vicinity"`
	Types        []string `json:"types"`
	PriceLevel   int      `json:"price_level,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Category     string   `json:"category,omitempty"`
	// Distance is the canned distance carried by mock venues only.
	Distance       float64  `json:"distance,omitempty"`
	DistanceMeters float64  `json:"distance_meters"`
	Geometry       Geometry `json:"geometry"`
}
