package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"smart_oficina/internal/domain/entities"
)

func TestNewPartsHTTPGateway(t *testing.T) {
	t.Run("missing base url", func(t *testing.T) {
		if _, err := NewPartsHTTPGateway("  "); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("mock mode skips base url requirement", func(t *testing.T) {
		os.Setenv("PARTS_API_MOCK", "true")
		defer os.Unsetenv("PARTS_API_MOCK")

		g, err := NewPartsHTTPGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result, err := g.CheckAvailability(context.Background(), []entities.PartAvailabilityQuery{{PartID: "p-1", Quantity: 2}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.AllAvailable || len(result.Items) != 1 {
			t.Fatalf("unexpected result: %+v", result)
		}

		stock, err := g.GetPartStock(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stock.PartID != "p-1" || stock.CurrentStock <= 0 {
			t.Fatalf("unexpected stock: %+v", stock)
		}
	})
}

func TestPartsHTTPGateway_CheckAvailability(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/parts/check-availability" {
				t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			var body struct {
				Items []struct {
					PartID   string `json:"part_id"`
					Quantity int    `json:"quantity"`
				} `json:"items"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if len(body.Items) != 2 || body.Items[0].PartID != "p-1" {
				t.Fatalf("unexpected request body: %+v", body)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"all_available": false,
				"has_missing_parts": true,
				"items": [
					{"part_id":"p-1","requested":2,"current_stock":1,"available":false},
					{"part_id":"p-2","requested":1,"current_stock":5,"available":true}
				]
			}`))
		}))
		defer srv.Close()

		g, err := NewPartsHTTPGateway(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result, err := g.CheckAvailability(context.Background(), []entities.PartAvailabilityQuery{
			{PartID: "p-1", Quantity: 2},
			{PartID: "p-2", Quantity: 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.AllAvailable || !result.HasMissingParts {
			t.Fatalf("unexpected flags: %+v", result)
		}
		if len(result.Items) != 2 || result.Items[0].CurrentStock != 1 {
			t.Fatalf("unexpected items: %+v", result.Items)
		}
	})

	t.Run("upstream error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		g, err := NewPartsHTTPGateway(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := g.CheckAvailability(context.Background(), []entities.PartAvailabilityQuery{{PartID: "p-1", Quantity: 1}}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPartsHTTPGateway_GetPartStock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/parts/p-1/stock" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"part_id":"p-1","current_stock":7,"unit":"un"}`))
	}))
	defer srv.Close()

	g, err := NewPartsHTTPGateway(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stock, err := g.GetPartStock(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stock.CurrentStock != 7 || stock.Unit != "un" {
		t.Fatalf("unexpected stock: %+v", stock)
	}
}
