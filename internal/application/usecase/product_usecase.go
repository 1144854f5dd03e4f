package usecase

import (
	"time"

	"github.com/tu-usuario/safestock/internal/application/dto"
	"github.com/tu-usuario/safestock/internal/domain"
	"github.com/tu-usuario/safestock/internal/domain/entity"
	"github.com/tu-usuario/safestock/internal/domain/repository"
	"github.com/tu-usuario/safestock/internal/domain/stock"
)

const maxProductNameLen = 150

// ProductUseCase lecturas y actualización de datos maestros de productos.
// La cantidad no se toca por aquí: creación con stock inicial, entradas,
// salidas y borrado en cascada viven en el motor de ledger.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// GetByID obtiene un producto con su nivel de stock derivado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza nombre o categoría. Nunca la cantidad.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" || len(*in.Name) > maxProductNameLen {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// ToProductResponse arma la respuesta con el nivel derivado de la cantidad.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	level := stock.LevelFor(p.Quantity)
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Quantity:     p.Quantity,
		Status:       string(level),
		StatusColor:  stock.ColorFor(level),
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
	}
}
