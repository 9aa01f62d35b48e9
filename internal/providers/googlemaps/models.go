package googlemaps

import "matzip-radar/internal/types"

// AddressComponent is one element of a geocoding result's address breakdown.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type GeocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          types.Geometry     `json:"geometry"`
	AddressComponents []AddressComponent `json:"address_components"`
	PlaceID           string             `json:"place_id"`
	Types             []string           `json:"types"`
}

// GeocodeAPIResponse is the payload of both forward and reverse geocoding.
type GeocodeAPIResponse struct {
	Results      []GeocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
}

type PlaceResult struct {
	PlaceID          string         `json:"place_id"`
	Name             string         `json:"name"`
	Rating           float64        `json:"rating"`
	UserRatingsTotal int            `json:"user_ratings_total"`
	Vicinity         string         `json:"vicinity"`
	Types            []string       `json:"types"`
	PriceLevel       int            `json:"price_level"`
	Geometry         types.Geometry `json:"geometry"`
}

// NearbyAPIResponse is one page of a nearby search. NextPageToken is an
// opaque continuation cursor that only becomes valid a couple of seconds
// after it is issued.
type NearbyAPIResponse struct {
	Results       []PlaceResult `json:"results"`
	Status        string        `json:"status"`
	NextPageToken string        `json:"next_page_token"`
	ErrorMessage  string        `json:"error_message"`
}
