package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/farejador/internal/adapters/config"
	"github.com/rafaelleal24/farejador/internal/adapters/http/controllers"
	"github.com/rafaelleal24/farejador/internal/adapters/http/middleware"
)

type Router struct {
	healthController  *controllers.HealthController
	productController *controllers.ProductController
	lookupController  *controllers.LookupController
	rateLimiter       middleware.RateLimiter
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	lookupController *controllers.LookupController,
	rateLimiter middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		productController: productController,
		lookupController:  lookupController,
		rateLimiter:       rateLimiter,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.GET("/products", r.productController.GetAll)
		v1Group.POST("/products", middleware.RateLimit(rl, 30, 1*time.Minute), r.productController.Register)
		v1Group.GET("/products/:id", r.productController.GetByID)
		v1Group.PUT("/products/:id", r.productController.Update)
		v1Group.DELETE("/products/:id", r.productController.Delete)

		v1Group.GET("/expiring", r.productController.GetExpiring)

		// the external catalog is protected by a tighter limit
		v1Group.GET("/lookup/:ean", middleware.RateLimit(rl, 20, 1*time.Minute), r.lookupController.Lookup)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
