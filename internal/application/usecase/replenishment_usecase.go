package usecase

import (
	"time"

	"github.com/tu-usuario/safestock/internal/application/dto"
	"github.com/tu-usuario/safestock/internal/domain"
	"github.com/tu-usuario/safestock/internal/domain/repository"
	"github.com/tu-usuario/safestock/internal/domain/stock"
)

// ReplenishmentUseCase calcula la prioridad de reposición de un producto.
// La prioridad sale únicamente de la cantidad actual (regla determinista);
// las estadísticas de salidas viajan como diagnóstico de solo lectura.
type ReplenishmentUseCase struct {
	productRepo   repository.ProductRepository
	dashboardRepo repository.DashboardRepository
}

// NewReplenishmentUseCase construye el caso de uso.
func NewReplenishmentUseCase(productRepo repository.ProductRepository, dashboardRepo repository.DashboardRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo, dashboardRepo: dashboardRepo}
}

// Priority devuelve la prioridad determinista más diagnósticos de salidas.
func (uc *ReplenishmentUseCase) Priority(productID string) (*dto.ReplenishmentPriorityResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	stats, err := uc.dashboardRepo.OutboundStats(productID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReplenishmentPriorityResponse{
		ProductID:       product.ID,
		Name:            product.Name,
		CurrentQuantity: product.Quantity,
		Priority:        string(stock.PriorityFor(product.Quantity)),
		AvgOutbound:     stats.AvgQuantity.StringFixed(2),
	}
	if stats.LastDate != nil {
		last := stats.LastDate.Format(time.RFC3339)
		resp.LastOutboundAt = &last
	}
	return resp, nil
}
