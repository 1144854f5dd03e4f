package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/tu-usuario/safestock/internal/application/dto"
	"github.com/tu-usuario/safestock/internal/application/ports"
	"github.com/tu-usuario/safestock/internal/domain/repository"
	"github.com/tu-usuario/safestock/internal/domain/stock"
	"github.com/tu-usuario/safestock/pkg/logger"
)

const criticalProductsLimit = 10

// DashboardUseCase arma el resumen de inventario. El resultado se materializa
// en cache con TTL; el motor de ledger lo invalida en cada mutación
// confirmada, así que nunca miente más allá de la ventana del TTL. El umbral
// de "stock bajo" es el mismo del clasificador (única fuente de verdad).
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	cache ports.Cache // opcional: nil desactiva la materialización
	ttl   time.Duration
	log   *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, cache ports.Cache, ttl time.Duration, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, cache: cache, ttl: ttl, log: log}
}

// Get devuelve el resumen, desde cache si está vigente.
func (uc *DashboardUseCase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	if uc.cache != nil {
		var cached dto.DashboardResponse
		err := uc.cache.Get(ctx, ports.DashboardCacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, ports.ErrCacheMiss) {
			// Cache caído no debe tumbar el dashboard; se consulta la BD.
			uc.log.Warn().Err(err).Msg("fallo leyendo cache del dashboard")
		}
	}

	resp, err := uc.build()
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, ports.DashboardCacheKey, resp, uc.ttl); err != nil {
			uc.log.Warn().Err(err).Msg("fallo escribiendo cache del dashboard")
		}
	}
	return resp, nil
}

func (uc *DashboardUseCase) build() (*dto.DashboardResponse, error) {
	totalProducts, err := uc.repo.CountProducts()
	if err != nil {
		return nil, err
	}
	totalCategories, err := uc.repo.CountCategories()
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.repo.CountLowStock(stock.LevelLowMax)
	if err != nil {
		return nil, err
	}
	critical, err := uc.repo.CriticalProducts(stock.LevelLowMax, criticalProductsLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ProductStatusDTO, 0, len(critical))
	for _, p := range critical {
		level := stock.LevelFor(p.Quantity)
		rows = append(rows, dto.ProductStatusDTO{
			Name:        p.Name,
			Category:    p.CategoryName,
			Quantity:    p.Quantity,
			Status:      string(level),
			StatusColor: stock.ColorFor(level),
		})
	}
	return &dto.DashboardResponse{
		TotalProducts:    totalProducts,
		LowStockProducts: lowStock,
		TotalCategories:  totalCategories,
		CriticalProducts: rows,
	}, nil
}
