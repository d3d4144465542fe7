package openfoodfacts

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rafaelleal24/farejador/internal/adapters/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.LookupConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	}).(*Client)
}

func TestClient_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("found with brands and image", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v0/product/7891000100103.json" {
				t.Fatalf("unexpected path %q", r.URL.Path)
			}
			fmt.Fprint(w, `{"status":1,"product":{"product_name":"Leite Moça","brands":"Nestlé","image_url":"https://images.example/moca.jpg"}}`)
		})

		result, err := client.Lookup(ctx, "7891000100103")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result == nil {
			t.Fatal("expected result, got nil")
		}
		if result.Description != "Nestlé - Leite Moça" {
			t.Fatalf("expected combined description, got %q", result.Description)
		}
		if result.ImageURL == nil || *result.ImageURL != "https://images.example/moca.jpg" {
			t.Fatalf("expected image URL, got %v", result.ImageURL)
		}
	})

	t.Run("found without brands falls back to product name", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"status":1,"product":{"product_name":"Leite Moça","image_front_small_url":"https://images.example/small.jpg"}}`)
		})

		result, err := client.Lookup(ctx, "7891000100103")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Description != "Leite Moça" {
			t.Fatalf("expected plain product name, got %q", result.Description)
		}
		if result.ImageURL == nil || *result.ImageURL != "https://images.example/small.jpg" {
			t.Fatalf("expected fallback image, got %v", result.ImageURL)
		}
	})

	t.Run("unknown code yields nil without error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"status":0}`)
		})

		result, err := client.Lookup(ctx, "7891000100103")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != nil {
			t.Fatalf("expected nil, got %+v", result)
		}
	})

	t.Run("entry without a usable name yields nil", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"status":1,"product":{"brands":"Nestlé"}}`)
		})

		result, err := client.Lookup(ctx, "7891000100103")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != nil {
			t.Fatalf("expected nil, got %+v", result)
		}
	})

	t.Run("server error surfaces", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		if _, err := client.Lookup(ctx, "7891000100103"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
