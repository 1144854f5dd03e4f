package entity

import "time"

// Product representa un producto del inventario.
// Quantity se deriva del ledger de movimientos y SOLO la muta el motor de
// inventario (application/ledger); nunca se escribe directamente desde fuera.
// Invariante: Quantity >= 0 y Quantity == suma con signo de sus movimientos.
type Product struct {
	ID           string
	Name         string
	Quantity     int64
	CategoryID   string
	CategoryName string // derivado: se llena con JOIN en lecturas
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
