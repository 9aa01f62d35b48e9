package navermaps

// LocalSearchItem is one venue in a local search response. Title may contain
// <b> highlight markup around the matched term. Mapx and Mapy are fixed-point
// WGS84 coordinates serialized as integer strings.
type LocalSearchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Telephone   string `json:"telephone"`
	Address     string `json:"address"`
	RoadAddress string `json:"roadAddress"`
	Mapx        string `json:"mapx"`
	Mapy        string `json:"mapy"`
}

// LocalSearchAPIResponse is the payload of the local search endpoint.
type LocalSearchAPIResponse struct {
	Total   int               `json:"total"`
	Start   int               `json:"start"`
	Display int               `json:"display"`
	Items   []LocalSearchItem `json:"items"`
}
