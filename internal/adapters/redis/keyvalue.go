package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/farejador/internal/core/port"
)

// KeyValue adapts the client to the repository's storage boundary: a plain
// string blob per key with no expiry. A missing key reads as an empty
// string without error, per the port contract.
type KeyValue struct {
	client *Client
}

func NewKeyValue(client *Client) port.KeyValuePort {
	return &KeyValue{client: client}
}

func (k *KeyValue) Get(ctx context.Context, key string) (string, error) {
	value, err := k.client.Get(ctx, key)
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (k *KeyValue) Set(ctx context.Context, key, value string) error {
	return k.client.Set(ctx, key, value, 0)
}

func (k *KeyValue) Del(ctx context.Context, key string) error {
	return k.client.Del(ctx, key)
}
