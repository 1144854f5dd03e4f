package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss la clave no existe en cache. Un miss no es un fallo.
var ErrCacheMiss = errors.New("cache miss")

// DashboardCacheKey clave única del dashboard materializado. La comparten el
// caso de uso de dashboard (Get/Set) y el motor de ledger (Delete al mutar).
const DashboardCacheKey = "dashboard"

// Cache puerto de cache para vistas materializadas de lectura (dashboard).
// El motor de ledger invalida tras cada mutación confirmada; el dashboard
// puebla con TTL. Una implementación nil-safe permite correr sin Redis.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
