package repository

import (
	"time"

	"github.com/tu-usuario/safestock/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ProductID string // vacío = todos los productos
}

// MovementRepository define el puerto de persistencia para el ledger de
// movimientos. Las entradas solo se corrigen en cantidad/fecha; producto y
// tipo son inmutables tras la creación.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	UpdateQuantity(id string, quantity int64, date time.Time) error
	List(filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
	Delete(id string) error
	// DeleteByProduct elimina todos los movimientos de un producto (cascada al
	// borrar el producto). Devuelve cuántas entradas se eliminaron.
	DeleteByProduct(productID string) (int64, error)
}
