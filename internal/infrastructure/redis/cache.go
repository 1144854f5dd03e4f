// Package redis adapta go-redis al puerto de cache de la aplicación.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/safestock/internal/application/ports"
)

var _ ports.Cache = (*Cache)(nil)

const keyPrefix = "safestock:"

// Cache implementa ports.Cache sobre Redis. Los valores viajan como JSON.
type Cache struct {
	client *redis.Client
}

// NewCache construye el adaptador sobre un cliente ya configurado.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get lee y deserializa una clave. Un miss devuelve ports.ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.ErrCacheMiss
		}
		return fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("deserializar cache: %w", err)
	}
	return nil
}

// Set serializa y guarda un valor con TTL.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar cache: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete invalida una o más claves.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
