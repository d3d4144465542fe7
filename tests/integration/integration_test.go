package integration_test

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	adaptconfig "github.com/rafaelleal24/farejador/internal/adapters/config"
	"github.com/rafaelleal24/farejador/internal/adapters/openfoodfacts"
	adaptredis "github.com/rafaelleal24/farejador/internal/adapters/redis"
	"github.com/rafaelleal24/farejador/internal/adapters/storage"
	"github.com/rafaelleal24/farejador/internal/core/domain"
	"github.com/rafaelleal24/farejador/internal/core/dto"
	"github.com/rafaelleal24/farejador/internal/core/service"
	"github.com/rafaelleal24/farejador/internal/core/serviceerrors"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

var redisClient *adaptredis.Client

// fixed reference instant: 2024-06-10 15:30 in America/Sao_Paulo
var testNow = time.Date(2024, 6, 10, 15, 30, 0, 0, domain.ReferenceLocation())

func TestMain(m *testing.M) {
	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Fatalf("redis container: %v", err)
	}
	redisEndpoint, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("redis connection string: %v", err)
	}
	redisClient, err = adaptredis.NewConnection(adaptconfig.RedisConfig{URL: redisEndpoint})
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}

	code := m.Run()

	_ = redisClient.Close()
	_ = redisContainer.Terminate(ctx)

	os.Exit(code)
}

func buildProductService(t *testing.T, storageKey string) *service.ProductService {
	t.Helper()

	kv := adaptredis.NewKeyValue(redisClient)
	repo := storage.NewProductRepository(kv, storageKey,
		storage.WithClock(func() time.Time { return testNow }))

	t.Cleanup(func() { _ = repo.Clear(context.Background()) })

	return service.NewProductService(repo)
}

func saveRequest(description, expirationDate string) *dto.SaveProductRequest {
	return &dto.SaveProductRequest{
		OperatorName:   "Joana",
		EANCode:        "7891000100103",
		Description:    description,
		Quantity:       4,
		QuantityType:   "unit",
		ExpirationDate: expirationDate,
	}
}

func TestIntegration_ProductLifecycle(t *testing.T) {
	productSvc := buildProductService(t, "int_lifecycle")
	ctx := context.Background()

	registered, err := productSvc.Register(ctx, saveRequest("Leite Integral", "2024-06-20"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.ID == "" {
		t.Fatal("registered product should have an ID")
	}
	if !registered.RegistrationDate.Equal(testNow.Truncate(time.Millisecond)) {
		t.Fatalf("unexpected registration stamp: %v", registered.RegistrationDate)
	}

	fetched, err := productSvc.GetByID(ctx, registered.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if fetched.Description != "Leite Integral" {
		t.Fatalf("expected description 'Leite Integral', got %q", fetched.Description)
	}

	updated, err := productSvc.Update(ctx, registered.ID, saveRequest("Leite Desnatado", "2024-06-25"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != registered.ID {
		t.Fatalf("update must keep the ID: %s vs %s", updated.ID, registered.ID)
	}
	if !updated.RegistrationDate.Equal(registered.RegistrationDate) {
		t.Fatal("update must keep the registration stamp")
	}
	if updated.Description != "Leite Desnatado" {
		t.Fatalf("expected updated description, got %q", updated.Description)
	}

	// a fresh service over the same key sees the persisted state
	reopened := buildProductService(t, "int_lifecycle")
	all := reopened.GetAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 product after reopen, got %d", len(all))
	}
	if all[0].Description != "Leite Desnatado" {
		t.Fatalf("reopened state should carry the update, got %q", all[0].Description)
	}

	if err := productSvc.Delete(ctx, registered.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if remaining := productSvc.GetAll(ctx); len(remaining) != 0 {
		t.Fatalf("expected empty inventory after delete, got %d", len(remaining))
	}

	_, err = productSvc.GetByID(ctx, registered.ID)
	if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestIntegration_InsertionOrderSurvivesReload(t *testing.T) {
	productSvc := buildProductService(t, "int_insertion_order")
	ctx := context.Background()

	descriptions := []string{"Iogurte", "Queijo Minas", "Presunto", "Requeijao"}
	for _, d := range descriptions {
		if _, err := productSvc.Register(ctx, saveRequest(d, "2024-07-01")); err != nil {
			t.Fatalf("register %q: %v", d, err)
		}
	}

	reopened := buildProductService(t, "int_insertion_order")
	all := reopened.GetAll(ctx)
	if len(all) != len(descriptions) {
		t.Fatalf("expected %d products, got %d", len(descriptions), len(all))
	}
	for i, d := range descriptions {
		if all[i].Description != d {
			t.Fatalf("position %d: expected %q, got %q", i, d, all[i].Description)
		}
	}
}

func TestIntegration_ExpiringScan(t *testing.T) {
	productSvc := buildProductService(t, "int_expiring")
	ctx := context.Background()

	// relative to testNow: expired, today, at the window edge, far out
	dates := map[string]string{
		"Vencido":   "2024-06-09",
		"Hoje":      "2024-06-10",
		"No limite": "2024-06-13",
		"Tranquilo": "2024-06-30",
	}
	for desc, date := range dates {
		if _, err := productSvc.Register(ctx, saveRequest(desc, date)); err != nil {
			t.Fatalf("register %q: %v", desc, err)
		}
	}

	expiring, err := productSvc.GetExpiringWithinDays(ctx, domain.DefaultExpiringWindowDays)
	if err != nil {
		t.Fatalf("expiring scan: %v", err)
	}
	if len(expiring) != 3 {
		t.Fatalf("expected 3 expiring products, got %d", len(expiring))
	}
	for _, p := range expiring {
		if p.Description == "Tranquilo" {
			t.Fatal("product outside the window should not be reported")
		}
	}
}

func TestIntegration_LookupServedFromCache(t *testing.T) {
	var catalogHits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		catalogHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":1,"product":{"product_name":"Leite UHT Integral","brands":"Italac","image_url":"https://images.example/leite.jpg"}}`)
	}))
	defer server.Close()

	catalog := openfoodfacts.NewClient(adaptconfig.LookupConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
	cache := adaptredis.NewCache[domain.LookupResult](redisClient, "int-lookup")
	lookupSvc := service.NewLookupService(catalog, cache, time.Hour)

	ctx := context.Background()

	first, err := lookupSvc.Lookup(ctx, "7891234567890")
	if err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if first.Description != "Italac - Leite UHT Integral" {
		t.Fatalf("unexpected description: %q", first.Description)
	}

	second, err := lookupSvc.Lookup(ctx, "7891234567890")
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if second.Description != first.Description {
		t.Fatal("cached result should match the catalog result")
	}
	if hits := catalogHits.Load(); hits != 1 {
		t.Fatalf("expected a single catalog request, got %d", hits)
	}
}
