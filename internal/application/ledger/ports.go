package ledger

import (
	"context"

	"github.com/tu-usuario/safestock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ledger:
// cambio de cantidad y entrada de movimiento se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		categoryRepo repository.CategoryRepository,
	) error) error
}
