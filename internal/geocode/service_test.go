package geocode

import (
	"errors"
	"log/slog"
	"testing"

	"matzip-radar/internal/address"
	"matzip-radar/internal/providers/googlemaps"
	"matzip-radar/internal/types"
)

type mockGeocodeProvider struct {
	forwardResponse *googlemaps.GeocodeAPIResponse
	forwardErr      error
	reverseResponse *googlemaps.GeocodeAPIResponse
	reverseErr      error
}

func (m *mockGeocodeProvider) Geocode(addr string) (*googlemaps.GeocodeAPIResponse, error) {
	return m.forwardResponse, m.forwardErr
}

func (m *mockGeocodeProvider) ReverseGeocode(latitude, longitude float64) (*googlemaps.GeocodeAPIResponse, error) {
	return m.reverseResponse, m.reverseErr
}

func TestForward(t *testing.T) {
	provider := &mockGeocodeProvider{
		forwardResponse: &googlemaps.GeocodeAPIResponse{
			Status: "OK",
			Results: []googlemaps.GeocodeResult{
				{
					FormattedAddress: "대한민국 서울특별시 강남구 테헤란로 123",
					Geometry:         types.Geometry{Location: types.NewCoords(37.5, 127.03)},
				},
				{
					FormattedAddress: "대한민국 서울특별시 서초구",
					Geometry:         types.Geometry{Location: types.NewCoords(37.48, 127.01)},
				},
			},
		},
	}

	svc := NewGeocodeServiceWithProvider(provider, "key", slog.Default())

	candidates, err := svc.Forward("테헤란로")
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}
	if candidates[0].Address != "대한민국 서울특별시 강남구 테헤란로 123" {
		t.Errorf("address = %q", candidates[0].Address)
	}
	if candidates[0].Latitude != 37.5 || candidates[0].Longitude != 127.03 {
		t.Errorf("coordinates = (%v, %v)", candidates[0].Latitude, candidates[0].Longitude)
	}
	if candidates[0].Comment != searchedPlaceComment {
		t.Errorf("comment = %q, want the searched-place comment", candidates[0].Comment)
	}
}

func TestForward_NoAPIKey(t *testing.T) {
	svc := NewGeocodeServiceWithProvider(&mockGeocodeProvider{}, "", slog.Default())

	if _, err := svc.Forward("테헤란로"); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("error = %v, want ErrNoAPIKey", err)
	}
}

func TestForward_ProviderError(t *testing.T) {
	provider := &mockGeocodeProvider{forwardErr: errors.New("timeout")}
	svc := NewGeocodeServiceWithProvider(provider, "key", slog.Default())

	if _, err := svc.Forward("테헤란로"); err == nil {
		t.Error("expected an error for a provider failure")
	}
}

func TestForward_NoMatches(t *testing.T) {
	provider := &mockGeocodeProvider{
		forwardResponse: &googlemaps.GeocodeAPIResponse{Status: "ZERO_RESULTS"},
	}
	svc := NewGeocodeServiceWithProvider(provider, "key", slog.Default())

	candidates, err := svc.Forward("존재하지 않는 주소")
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("got %d candidates, want 0", len(candidates))
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name        string
		response    *googlemaps.GeocodeAPIResponse
		err         error
		wantAddress string
		wantComment string
	}{
		{
			name: "formats the first result",
			response: &googlemaps.GeocodeAPIResponse{
				Status: "OK",
				Results: []googlemaps.GeocodeResult{
					{
						AddressComponents: []googlemaps.AddressComponent{
							{LongName: "서울특별시", Types: []string{"administrative_area_level_1"}},
							{LongName: "테헤란로", Types: []string{"route"}},
						},
					},
				},
			},
			wantAddress: "서울특별시 테헤란로",
			wantComment: "IT와 비즈니스의 중심가! 고급 맛집들이 즐비해요 💼",
		},
		{
			name:        "provider error degrades to placeholder",
			err:         errors.New("connection reset"),
			wantAddress: address.PlaceholderAddress,
			wantComment: address.GenericComment,
		},
		{
			name:        "empty result set degrades to placeholder",
			response:    &googlemaps.GeocodeAPIResponse{Status: "ZERO_RESULTS"},
			wantAddress: address.PlaceholderAddress,
			wantComment: address.GenericComment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockGeocodeProvider{reverseResponse: tt.response, reverseErr: tt.err}
			svc := NewGeocodeServiceWithProvider(provider, "key", slog.Default())

			addr, comment, err := svc.Reverse(37.4979, 127.0276)
			if err != nil {
				t.Fatalf("Reverse() error = %v", err)
			}
			if addr != tt.wantAddress {
				t.Errorf("address = %q, want %q", addr, tt.wantAddress)
			}
			if comment != tt.wantComment {
				t.Errorf("comment = %q, want %q", comment, tt.wantComment)
			}
		})
	}
}

func TestReverse_NoAPIKey(t *testing.T) {
	svc := NewGeocodeServiceWithProvider(&mockGeocodeProvider{}, "", slog.Default())

	if _, _, err := svc.Reverse(37.4979, 127.0276); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("error = %v, want ErrNoAPIKey", err)
	}
}
