package port

import (
	"context"

	"github.com/rafaelleal24/farejador/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ProductLookupPort resolves a barcode against a remote product catalog.
// A nil result without error means the catalog has no entry for the code.
type ProductLookupPort interface {
	Lookup(ctx context.Context, eanCode string) (*domain.LookupResult, error)
}
