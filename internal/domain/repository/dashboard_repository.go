package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/safestock/internal/domain/entity"
)

// OutboundStats estadísticas de salidas de un producto. Son diagnóstico de
// solo lectura para el endpoint de prioridad; nunca alteran la prioridad
// determinista calculada desde la cantidad.
type OutboundStats struct {
	AvgQuantity decimal.Decimal // promedio de magnitud de salidas (0 si no hay)
	LastDate    *time.Time      // fecha de la última salida (nil si no hay)
}

// DashboardRepository consultas de solo lectura para reporting.
type DashboardRepository interface {
	CountProducts() (int64, error)
	CountCategories() (int64, error)
	CountLowStock(threshold int64) (int64, error)
	// CriticalProducts productos con cantidad <= threshold, ascendente por
	// cantidad, con nombre de categoría resuelto.
	CriticalProducts(threshold int64, limit int) ([]*entity.Product, error)
	OutboundStats(productID string) (*OutboundStats, error)
}
