package redis_test

import (
	"context"
	"testing"
	"time"

	adaptredis "github.com/rafaelleal24/farejador/internal/adapters/redis"
	"github.com/rafaelleal24/farejador/internal/core/domain"
)

func TestCache_SetAndGet(t *testing.T) {
	cache := adaptredis.NewCache[domain.LookupResult](testClient, "test-cache")
	ctx := context.Background()

	t.Run("set and get value", func(t *testing.T) {
		image := "https://images.example/moca.jpg"
		item := &domain.LookupResult{
			EANCode:     "7891000100103",
			Description: "Nestlé - Leite Moça",
			ImageURL:    &image,
		}
		err := cache.Set(ctx, "ean:7891000100103", item, 1*time.Minute)
		if err != nil {
			t.Fatalf("expected no error on set, got %v", err)
		}

		got, err := cache.Get(ctx, "ean:7891000100103")
		if err != nil {
			t.Fatalf("expected no error on get, got %v", err)
		}
		if got == nil {
			t.Fatal("expected item, got nil")
		}
		if got.Description != item.Description {
			t.Fatalf("expected description %q, got %q", item.Description, got.Description)
		}
		if got.ImageURL == nil || *got.ImageURL != image {
			t.Fatalf("expected image URL %q, got %v", image, got.ImageURL)
		}
	})

	t.Run("get returns nil for missing key", func(t *testing.T) {
		got, err := cache.Get(ctx, "nonexistent-key")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("entry expires after ttl", func(t *testing.T) {
		item := &domain.LookupResult{EANCode: "7891000100110", Description: "Leite Desnatado"}
		if err := cache.Set(ctx, "ean:7891000100110", item, 1*time.Second); err != nil {
			t.Fatalf("expected no error on set, got %v", err)
		}

		time.Sleep(2 * time.Second)

		got, err := cache.Get(ctx, "ean:7891000100110")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Fatalf("expected entry to expire, got %+v", got)
		}
	})
}
