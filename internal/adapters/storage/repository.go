package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelleal24/farejador/internal/core/domain"
	"github.com/rafaelleal24/farejador/internal/core/logger"
	"github.com/rafaelleal24/farejador/internal/core/port"
)

// DefaultStorageKey matches the key used by earlier clients so an existing
// collection keeps working.
const DefaultStorageKey = "perishable_products"

// ProductRepository owns the persisted product collection: a single
// JSON-encoded array behind a key-value blob, kept in insertion order.
// It is the only component that generates identifiers or registration
// stamps. Reads fail open (a corrupt or unreadable blob degrades to an
// empty collection); write failures propagate to the caller.
type ProductRepository struct {
	kv    port.KeyValuePort
	key   string
	now   func() time.Time
	newID func() domain.ID
}

type Option func(*ProductRepository)

// WithClock fixes the "now" supplier, so tests control the reference day.
func WithClock(now func() time.Time) Option {
	return func(r *ProductRepository) { r.now = now }
}

// WithIDGenerator replaces the identifier source.
func WithIDGenerator(newID func() domain.ID) Option {
	return func(r *ProductRepository) { r.newID = newID }
}

func NewProductRepository(kv port.KeyValuePort, key string, opts ...Option) port.ProductPort {
	if key == "" {
		key = DefaultStorageKey
	}
	r := &ProductRepository{
		kv:    kv,
		key:   key,
		now:   time.Now,
		newID: func() domain.ID { return domain.ID(uuid.NewString()) },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// load reads the whole collection. It never returns an error: a missing
// key is an empty collection, and any read or decode failure is logged and
// also treated as empty so a corrupt blob never blanks the caller.
func (r *ProductRepository) load(ctx context.Context) []domain.Product {
	blob, err := r.kv.Get(ctx, r.key)
	if err != nil {
		logger.Warn(ctx, "storage: read failed, treating collection as empty", map[string]any{
			"key":   r.key,
			"error": err.Error(),
		})
		return nil
	}
	if blob == "" {
		return nil
	}

	var records []productRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		logger.Warn(ctx, "storage: corrupt collection, treating as empty", map[string]any{
			"key":   r.key,
			"error": err.Error(),
		})
		return nil
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		product, err := rec.toDomain()
		if err != nil {
			logger.Warn(ctx, "storage: corrupt record, treating collection as empty", map[string]any{
				"key":   r.key,
				"id":    rec.ID,
				"error": err.Error(),
			})
			return nil
		}
		products = append(products, product)
	}
	return products
}

func (r *ProductRepository) persist(ctx context.Context, products []domain.Product) error {
	records := make([]productRecord, len(products))
	for i, p := range products {
		records[i] = toRecord(p)
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, r.key, string(blob))
}

func (r *ProductRepository) GetAll(ctx context.Context) []domain.Product {
	return r.load(ctx)
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	for _, p := range r.load(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) Save(ctx context.Context, in domain.InsertProduct) (*domain.Product, error) {
	products := r.load(ctx)

	// The stamp persists with millisecond precision; truncating up front
	// keeps the returned product equal to what a later read yields.
	registeredAt := r.now().Truncate(time.Millisecond)
	product := domain.NewProduct(r.newID(), in, registeredAt)

	products = append(products, *product)
	if err := r.persist(ctx, products); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, id domain.ID, in domain.InsertProduct) (*domain.Product, error) {
	products := r.load(ctx)

	for i, p := range products {
		if p.ID != id {
			continue
		}
		updated := p.Apply(in)
		products[i] = updated
		if err := r.persist(ctx, products); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID) (bool, error) {
	products := r.load(ctx)

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(products) {
		return false, nil
	}

	if err := r.persist(ctx, filtered); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ProductRepository) GetExpiringWithinDays(ctx context.Context, days int) []domain.Product {
	now := r.now()

	expiring := make([]domain.Product, 0)
	for _, p := range r.load(ctx) {
		// Negative deltas (already expired) satisfy any non-negative
		// threshold, so expired products are always part of the scan.
		if domain.DaysUntilExpiry(now, p.ExpirationDate) <= days {
			expiring = append(expiring, p)
		}
	}
	return expiring
}

func (r *ProductRepository) Clear(ctx context.Context) error {
	return r.kv.Del(ctx, r.key)
}
