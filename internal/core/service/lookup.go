package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/farejador/internal/core/domain"
	"github.com/rafaelleal24/farejador/internal/core/logger"
	"github.com/rafaelleal24/farejador/internal/core/port"
	"github.com/rafaelleal24/farejador/internal/core/serviceerrors"
)

const minEANLength = 8

// LookupService resolves barcodes through the remote catalog, keeping
// recent answers in a shared cache so repeated scans of the same code do
// not hit the external API.
type LookupService struct {
	catalog  port.ProductLookupPort
	cache    port.CachePort[domain.LookupResult]
	cacheTTL time.Duration
}

func NewLookupService(catalog port.ProductLookupPort, cache port.CachePort[domain.LookupResult], cacheTTL time.Duration) *LookupService {
	return &LookupService{catalog: catalog, cache: cache, cacheTTL: cacheTTL}
}

func (s *LookupService) cacheKey(eanCode string) string {
	return fmt.Sprintf("ean:%s", eanCode)
}

func (s *LookupService) Lookup(ctx context.Context, eanCode string) (*domain.LookupResult, error) {
	if len(eanCode) < minEANLength {
		return nil, serviceerrors.NewInvalidRequestError("EAN code must have at least 8 characters")
	}

	cached, err := s.cache.Get(ctx, s.cacheKey(eanCode))
	if err != nil {
		logger.Error(ctx, "lookup: cache get failed", err, map[string]any{
			"ean_code": eanCode,
		})
	}
	if cached != nil {
		return cached, nil
	}

	result, err := s.catalog.Lookup(ctx, eanCode)
	if err != nil {
		logger.Error(ctx, "lookup: catalog request failed", err, map[string]any{
			"ean_code": eanCode,
		})
		return nil, err
	}
	if result == nil {
		return nil, serviceerrors.NewNotFoundError("product not found in catalog")
	}

	if err := s.cache.Set(ctx, s.cacheKey(eanCode), result, s.cacheTTL); err != nil {
		logger.Error(ctx, "lookup: cache set failed", err, map[string]any{
			"ean_code": eanCode,
		})
	}

	return result, nil
}
