package port

import (
	"context"

	"github.com/rafaelleal24/farejador/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ProductPort is the sole authority over the persisted product collection.
// Reads never fail: any storage read or decode problem degrades to an empty
// collection. Absence is signalled with a nil product, not an error.
type ProductPort interface {
	GetAll(ctx context.Context) []domain.Product
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	Save(ctx context.Context, in domain.InsertProduct) (*domain.Product, error)
	Update(ctx context.Context, id domain.ID, in domain.InsertProduct) (*domain.Product, error)
	Delete(ctx context.Context, id domain.ID) (bool, error)
	GetExpiringWithinDays(ctx context.Context, days int) []domain.Product
	Clear(ctx context.Context) error
}
