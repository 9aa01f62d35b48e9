package navermaps

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_LocalSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Naver-Client-Id") != "id" || r.Header.Get("X-Naver-Client-Secret") != "secret" {
			t.Error("credential headers missing")
		}
		if got := r.URL.Query().Get("query"); got != "역삼동 맛집" {
			t.Errorf("query = %q, want 역삼동 맛집", got)
		}
		if got := r.URL.Query().Get("display"); got != "5" {
			t.Errorf("display = %q, want 5", got)
		}

		_, _ = w.Write([]byte(`{
			"total": 1,
			"start": 1,
			"display": 1,
			"items": [
				{
					"title": "<b>역삼</b> 갈비집",
					"category": "음식점>한식",
					"telephone": "02-111-2222",
					"roadAddress": "서울특별시 강남구 테헤란로 1",
					"mapx": "1270276000",
					"mapy": "374979000"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("id", "secret", server.URL, slog.Default())

	resp, err := client.LocalSearch("역삼동 맛집", 5)
	if err != nil {
		t.Fatalf("LocalSearch() error = %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(resp.Items))
	}
	if resp.Items[0].Title != "<b>역삼</b> 갈비집" {
		t.Errorf("title = %q", resp.Items[0].Title)
	}
}

func TestClient_LocalSearch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errorCode": "024"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("bad", "creds", server.URL, slog.Default())

	if _, err := client.LocalSearch("역삼동 맛집", 5); err == nil {
		t.Error("expected an error for a 401 response")
	}
}

func TestLocalSearchItem_Coordinates(t *testing.T) {
	tests := []struct {
		name    string
		item    LocalSearchItem
		wantLat float64
		wantLng float64
		wantErr bool
	}{
		{
			name:    "fixed-point conversion",
			item:    LocalSearchItem{Mapx: "1270276000", Mapy: "374979000"},
			wantLat: 37.4979,
			wantLng: 127.0276,
		},
		{
			name:    "malformed mapx",
			item:    LocalSearchItem{Mapx: "not-a-number", Mapy: "374979000"},
			wantErr: true,
		},
		{
			name:    "malformed mapy",
			item:    LocalSearchItem{Mapx: "1270276000", Mapy: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, err := tt.item.Coordinates()

			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Coordinates() error = %v", err)
			}
			if lat != tt.wantLat || lng != tt.wantLng {
				t.Errorf("got (%v, %v), want (%v, %v)", lat, lng, tt.wantLat, tt.wantLng)
			}
		})
	}
}
