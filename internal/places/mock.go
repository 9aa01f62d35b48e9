package places

import "matzip-radar/internal/types"

// mockVenues is the canned demo dataset served when no credential is
// configured or every provider fails. Distances are fixed fixture values,
// not computed.
var mockVenues = []types.Venue{
	{
		PlaceID:    "mock_1",
		Name:       "맛있는 김밥천국",
		Rating:     4.2,
		Vicinity:   "서울특별시 강남구 테헤란로 123",
		Types:      []string{"restaurant", "food", "establishment"},
		PriceLevel: 1,
		Distance:   300,
		Phone:      "02-1234-5678",
		Category:   "한식",
		Geometry:   types.Geometry{Location: types.NewCoords(37.5, 127.0)},
	},
	{
		PlaceID:    "mock_2",
		Name:       "이자카야 하나",
		Rating:     4.5,
		Vicinity:   "서울특별시 강남구 역삼동 456",
		Types:      []string{"japanese_restaurant", "restaurant", "food"},
		PriceLevel: 2,
		Distance:   800,
		Phone:      "02-2345-6789",
		Category:   "일식",
		Geometry:   types.Geometry{Location: types.NewCoords(37.505, 127.005)},
	},
	{
		PlaceID:    "mock_3",
		Name:       "중국집 용궁",
		Rating:     4.0,
		Vicinity:   "서울특별시 강남구 선릉로 789",
		Types:      []string{"chinese_restaurant", "restaurant", "food"},
		PriceLevel: 2,
		Distance:   1200,
		Phone:      "02-3456-7890",
		Category:   "중식",
		Geometry:   types.Geometry{Location: types.NewCoords(37.51, 127.01)},
	},
	{
		PlaceID:    "mock_4",
		Name:       "파스타 하우스",
		Rating:     4.3,
		Vicinity:   "서울특별시 강남구 강남대로 101",
		Types:      []string{"restaurant", "food", "establishment"},
		PriceLevel: 3,
		Distance:   2100,
		Phone:      "02-4567-8901",
		Category:   "양식",
		Geometry:   types.Geometry{Location: types.NewCoords(37.515, 127.015)},
	},
	{
		PlaceID:    "mock_5",
		Name:       "한우마을",
		Rating:     4.7,
		Vicinity:   "서울특별시 강남구 논현로 202",
		Types:      []string{"korean_restaurant", "restaurant", "food"},
		PriceLevel: 4,
		Distance:   3500,
		Phone:      "02-5678-9012",
		Category:   "한식",
		Geometry:   types.Geometry{Location: types.NewCoords(37.52, 127.02)},
	},
	{
		PlaceID:    "mock_6",
		Name:       "스타벅스 강남점",
		Rating:     4.1,
		Vicinity:   "서울특별시 강남구 테헤란로 303",
		Types:      []string{"cafe", "food", "establishment"},
		PriceLevel: 2,
		Distance:   600,
		Phone:      "02-6789-0123",
		Category:   "카페",
		Geometry:   types.Geometry{Location: types.NewCoords(37.525, 127.025)},
	},
}

// MockListings filters the canned dataset the same way a real search would:
// fixture distance against the radius, then category, then minimum rating.
// The rating source label follows the country so the UI renders the badge it
// would show for live data. Never fails and performs no I/O.
func MockListings(placeType string, minRating float64, radiusMeters int, isKorea bool, categoryLabels map[string]string) []types.Venue {
	source := types.RatingSourceGoogle
	if isKorea {
		source = types.RatingSourceNaver
	}

	targetCategory := ""
	if placeType != "restaurant" && placeType != "all" {
		targetCategory = categoryLabels[placeType]
	}

	listings := make([]types.Venue, 0, len(mockVenues))
	for _, venue := range mockVenues {
		if venue.Distance > float64(radiusMeters) {
			continue
		}
		if targetCategory != "" && venue.Category != targetCategory {
			continue
		}
		if minRating > 0 && venue.Rating < minRating {
			continue
		}

		venue.RatingSource = source
		venue.DistanceMeters = venue.Distance
		listings = append(listings, venue)
	}

	return listings
}
