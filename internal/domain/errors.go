package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidAdjustment = errors.New("ajuste inválido: el stock quedaría negativo")
	ErrCategoryInUse     = errors.New("la categoría tiene productos vinculados")

	// ErrLedgerCorrupted: revertir un movimiento dejaría stock negativo, algo
	// estructuralmente imposible si el invariante del ledger se mantuvo.
	// No es un error de usuario; se registra con severidad alta y se responde 500.
	ErrLedgerCorrupted = errors.New("ledger corrupto: la reversión dejaría stock negativo")
)
