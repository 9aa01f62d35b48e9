package types

type Coords struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
