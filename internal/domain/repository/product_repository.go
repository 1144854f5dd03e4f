package repository

import "github.com/tu-usuario/safestock/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQuantity es de uso exclusivo del motor de ledger, siempre dentro de
// una transacción y tras GetForUpdate sobre la misma fila.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción; serializa operaciones por producto.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
