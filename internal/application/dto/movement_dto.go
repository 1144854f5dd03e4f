package dto

import "time"

// RegisterMovementRequest cuerpo para registrar un movimiento de stock.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // IN, OUT
	Quantity  int64  `json:"quantity"`
}

// CorrectMovementRequest cuerpo para corregir la magnitud de un movimiento.
type CorrectMovementRequest struct {
	Quantity int64 `json:"quantity"`
}

// MovementResponse entrada del ledger con nombre de producto resuelto.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
}

// RegisterMovementResponse movimiento creado y cantidad resultante.
type RegisterMovementResponse struct {
	Movement    MovementResponse `json:"movement"`
	NewQuantity int64            `json:"new_quantity"`
}

// MovementListResponse listado paginado de movimientos, más reciente primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
