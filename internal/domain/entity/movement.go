package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// ValidMovementType reporta si t es un tipo de movimiento conocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// Movement es una entrada del ledger de stock: un cambio de inventario con
// signo, fechado y atribuible a un producto. Quantity es la magnitud (> 0);
// el signo lo da Type. Date se actualiza a "ahora" cuando se corrige la
// cantidad: una corrección es en sí misma un evento.
type Movement struct {
	ID          string
	ProductID   string
	ProductName string // derivado: se llena con JOIN en listados
	Type        string // IN, OUT
	Quantity    int64
	Date        time.Time
}

// SignedQuantity devuelve la cantidad con signo (IN positivo, OUT negativo).
func (m *Movement) SignedQuantity() int64 {
	if m.Type == MovementTypeOUT {
		return -m.Quantity
	}
	return m.Quantity
}
