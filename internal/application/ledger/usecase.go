package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/safestock/internal/application/ports"
	"github.com/tu-usuario/safestock/internal/domain"
	"github.com/tu-usuario/safestock/internal/domain/entity"
	"github.com/tu-usuario/safestock/internal/domain/repository"
	"github.com/tu-usuario/safestock/pkg/logger"
)

const maxProductNameLen = 150

// LedgerUseCase es la única autoridad que muta la cantidad de un producto:
// todo cambio pasa por un movimiento con signo, fechado y atribuible.
// Cada operación corre en una transacción (TxRunner) con bloqueo de fila
// sobre el producto (SELECT FOR UPDATE), de modo que operaciones concurrentes
// sobre el mismo producto se serializan y el invariante
// cantidad == suma con signo de movimientos se cumple tras cada commit.
type LedgerUseCase struct {
	txRunner TxRunner
	cache    ports.Cache // opcional: invalida el dashboard tras cada mutación
	log      *logger.Logger
}

// NewLedgerUseCase construye el motor de ledger. cache puede ser nil.
func NewLedgerUseCase(txRunner TxRunner, cache ports.Cache, log *logger.Logger) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, cache: cache, log: log}
}

// ApplyMovementInput entrada para registrar un movimiento.
type ApplyMovementInput struct {
	ProductID string
	Type      string // IN, OUT
	Quantity  int64  // magnitud, > 0
}

// MovementResult movimiento creado y cantidad resultante del producto.
type MovementResult struct {
	Movement    *entity.Movement
	NewQuantity int64
}

// ApplyMovement registra un movimiento y actualiza la cantidad del producto
// en la misma transacción. Para OUT exige stock suficiente: la operación se
// rechaza completa con ErrInsufficientStock, sin mutación parcial.
func (uc *LedgerUseCase) ApplyMovement(ctx context.Context, input ApplyMovementInput) (*MovementResult, error) {
	if input.ProductID == "" || !entity.ValidMovementType(input.Type) || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		_ repository.CategoryRepository,
	) error {
		// Bloquea la fila del producto: dos OUT concurrentes no pueden validar
		// ambos contra la misma cantidad previa.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQty := product.Quantity + input.Quantity
		if input.Type == entity.MovementTypeOUT {
			if input.Quantity > product.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty = product.Quantity - input.Quantity
		}

		if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Date:      time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result = MovementResult{Movement: mov, NewQuantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateDashboard(ctx)
	return &result, nil
}

// CorrectMovement cambia la magnitud de un movimiento existente y reconcilia
// la cantidad del producto: revierte el efecto anterior y aplica el nuevo como
// un único delta atómico, sin exponer un intermedio inválido. Si el resultado
// quedara negativo se rechaza con ErrInvalidAdjustment (el caso riesgoso es
// agrandar un OUT, pero se verifica siempre). La fecha del movimiento pasa a
// "ahora": una corrección es en sí misma un evento.
func (uc *LedgerUseCase) CorrectMovement(ctx context.Context, movementID string, newQuantity int64) (*MovementResult, error) {
	if movementID == "" || newQuantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		_ repository.CategoryRepository,
	) error {
		mov, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(mov.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		// Delta con signo: (nueva - vieja) para IN, (vieja - nueva) para OUT.
		delta := newQuantity - mov.Quantity
		if mov.Type == entity.MovementTypeOUT {
			delta = -delta
		}
		newProductQty := product.Quantity + delta
		if newProductQty < 0 {
			return domain.ErrInvalidAdjustment
		}

		now := time.Now()
		if err := productRepo.UpdateQuantity(product.ID, newProductQty); err != nil {
			return err
		}
		if err := movRepo.UpdateQuantity(mov.ID, newQuantity, now); err != nil {
			return err
		}
		mov.Quantity = newQuantity
		mov.Date = now
		result = MovementResult{Movement: mov, NewQuantity: newProductQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateDashboard(ctx)
	return &result, nil
}

// RemoveMovement revierte el efecto del movimiento sobre la cantidad y borra
// la entrada. Por construcción no puede dejar stock negativo si el invariante
// se mantuvo (revertir un IN resta lo que antes se sumó; revertir un OUT
// suma); aun así se verifica, y una violación se trata como corrupción del
// ledger: se registra con severidad alta y se devuelve ErrLedgerCorrupted.
func (uc *LedgerUseCase) RemoveMovement(ctx context.Context, movementID string) error {
	if movementID == "" {
		return domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		_ repository.CategoryRepository,
	) error {
		mov, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(mov.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQty := product.Quantity - mov.SignedQuantity()
		if newQty < 0 {
			uc.log.Error().
				Str("movement_id", mov.ID).
				Str("product_id", product.ID).
				Int64("product_quantity", product.Quantity).
				Int64("movement_signed", mov.SignedQuantity()).
				Msg("reversión dejaría stock negativo: ledger corrupto")
			return domain.ErrLedgerCorrupted
		}

		if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
			return err
		}
		return movRepo.Delete(mov.ID)
	})
	if err != nil {
		return err
	}
	uc.invalidateDashboard(ctx)
	return nil
}

// RemoveProduct borra todos los movimientos del producto y luego el producto,
// en una sola transacción (cascada). No hay reconciliación de cantidad: el
// registro del producto desaparece junto con su historial.
func (uc *LedgerUseCase) RemoveProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		_ repository.CategoryRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if _, err := movRepo.DeleteByProduct(product.ID); err != nil {
			return err
		}
		return productRepo.Delete(product.ID)
	})
	if err != nil {
		return err
	}
	uc.invalidateDashboard(ctx)
	return nil
}

// CreateProductInput entrada para crear un producto.
type CreateProductInput struct {
	Name            string
	CategoryID      string
	InitialQuantity int64 // >= 0; si > 0 genera un movimiento IN implícito
}

// CreateProduct crea el producto y, si trae cantidad inicial, registra el
// movimiento IN implícito en la misma transacción: el ledger nace consistente
// (cantidad == suma de movimientos) desde el primer commit.
func (uc *LedgerUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || len(input.Name) > maxProductNameLen || input.CategoryID == "" || input.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Quantity:   input.InitialQuantity,
		CategoryID: input.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		categoryRepo repository.CategoryRepository,
	) error {
		category, err := categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		product.CategoryName = category.Name

		if err := productRepo.Create(product); err != nil {
			return err
		}
		if input.InitialQuantity > 0 {
			mov := &entity.Movement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      entity.MovementTypeIN,
				Quantity:  input.InitialQuantity,
				Date:      now,
			}
			return movRepo.Create(mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateDashboard(ctx)
	return product, nil
}

// invalidateDashboard borra la vista materializada del dashboard tras un
// commit exitoso. Un fallo de cache no revierte la operación: el TTL acota
// la ventana de staleness.
func (uc *LedgerUseCase) invalidateDashboard(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, ports.DashboardCacheKey); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar el cache del dashboard")
	}
}
