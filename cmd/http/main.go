package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafaelleal24/farejador/internal/adapters/config"
	"github.com/rafaelleal24/farejador/internal/adapters/http"
	"github.com/rafaelleal24/farejador/internal/adapters/http/controllers"
	"github.com/rafaelleal24/farejador/internal/adapters/openfoodfacts"
	"github.com/rafaelleal24/farejador/internal/adapters/redis"
	"github.com/rafaelleal24/farejador/internal/adapters/storage"
	"github.com/rafaelleal24/farejador/internal/core/domain"
	"github.com/rafaelleal24/farejador/internal/core/logger"
	"github.com/rafaelleal24/farejador/internal/core/port"
	"github.com/rafaelleal24/farejador/internal/core/service"
)

// @title       Farejador API
// @version     1.0
// @description Perishable product inventory with expiration tracking

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize redis connection
	redisClient, err := redis.NewConnection(cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// product store: a single key holding the whole inventory blob.
	// STORAGE_IN_MEMORY swaps the backing key-value store only, the
	// cache and rate limiter still run on redis.
	var kv port.KeyValuePort
	if cfg.Storage.InMemory {
		kv = storage.NewMemoryKeyValue()
		logger.Info(ctx, "Using in-memory product store", nil)
	} else {
		kv = redis.NewKeyValue(redisClient)
	}
	productRepository := storage.NewProductRepository(kv, cfg.Storage.Key)

	// cache and rate limiter
	lookupCache := redis.NewCache[domain.LookupResult](redisClient, "lookup-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// external product catalog
	catalog := openfoodfacts.NewClient(cfg.Lookup)

	// services
	productService := service.NewProductService(productRepository)
	lookupService := service.NewLookupService(catalog, lookupCache, cfg.Lookup.CacheTTL)

	// controllers
	productController := controllers.NewProductController(productService)
	lookupController := controllers.NewLookupController(lookupService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx) }},
	})

	// router
	router := http.NewRouter(healthController, productController, lookupController, rateLimiter)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
