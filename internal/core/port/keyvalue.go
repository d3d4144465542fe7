package port

import "context"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// KeyValuePort is the storage boundary of the product repository: a string
// blob per key. Get returns an empty string without error when the key does
// not exist.
type KeyValuePort interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Del(ctx context.Context, key string) error
}
