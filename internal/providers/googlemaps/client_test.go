package googlemaps

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_NearbySearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("location") == "" || q.Get("radius") != "1000" || q.Get("type") != "restaurant" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Get("language") != "ko" {
			t.Errorf("language = %q, want ko", q.Get("language"))
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"next_page_token": "token-1",
			"results": [
				{
					"place_id": "p1",
					"name": "맛있는 김밥천국",
					"rating": 4.2,
					"vicinity": "서울특별시 강남구 테헤란로 123",
					"types": ["restaurant", "food"],
					"price_level": 1,
					"geometry": {"location": {"lat": 37.5, "lng": 127.0}}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("key", server.URL, server.URL, slog.Default())

	resp, err := client.NearbySearch(37.4979, 127.0276, 1000, "restaurant", "")
	if err != nil {
		t.Fatalf("NearbySearch() error = %v", err)
	}

	if resp.Status != "OK" {
		t.Errorf("status = %q, want OK", resp.Status)
	}
	if resp.NextPageToken != "token-1" {
		t.Errorf("next_page_token = %q, want token-1", resp.NextPageToken)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(resp.Results))
	}
	if resp.Results[0].Name != "맛있는 김밥천국" {
		t.Errorf("name = %q", resp.Results[0].Name)
	}
	if resp.Results[0].Geometry.Location.Latitude != 37.5 {
		t.Errorf("latitude = %v, want 37.5", resp.Results[0].Geometry.Location.Latitude)
	}
}

func TestClient_NearbySearch_PassesPageToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("pagetoken"); got != "token-1" {
			t.Errorf("pagetoken = %q, want token-1", got)
		}
		_, _ = w.Write([]byte(`{"status": "OK", "results": []}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("key", server.URL, server.URL, slog.Default())

	if _, err := client.NearbySearch(37.4979, 127.0276, 1000, "restaurant", "token-1"); err != nil {
		t.Fatalf("NearbySearch() error = %v", err)
	}
}

func TestClient_NearbySearch_HTTPErrorCarriesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`upstream unavailable`))
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("key", server.URL, server.URL, slog.Default())

	_, err := client.NearbySearch(37.4979, 127.0276, 1000, "restaurant", "")
	if err == nil {
		t.Fatal("expected an error for a 503 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusServiceUnavailable {
		t.Errorf("code = %d, want 503", statusErr.Code)
	}
}

func TestClient_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("latlng"); got == "" {
			t.Error("latlng query parameter missing")
		}
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"formatted_address": "대한민국 서울특별시 강남구 테헤란로 123",
					"address_components": [
						{"long_name": "대한민국", "short_name": "KR", "types": ["country", "political"]}
					],
					"geometry": {"location": {"lat": 37.5, "lng": 127.03}}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("key", server.URL, server.URL, slog.Default())

	resp, err := client.ReverseGeocode(37.4979, 127.0276)
	if err != nil {
		t.Fatalf("ReverseGeocode() error = %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(resp.Results))
	}
	if resp.Results[0].AddressComponents[0].ShortName != "KR" {
		t.Errorf("country short name = %q, want KR", resp.Results[0].AddressComponents[0].ShortName)
	}
}

func TestClient_Geocode_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OK", "results": [`))
	}))
	defer server.Close()

	client := NewClientWithBaseURLs("key", server.URL, server.URL, slog.Default())

	if _, err := client.Geocode("테헤란로"); err == nil {
		t.Error("expected a decode error for malformed JSON")
	}
}
