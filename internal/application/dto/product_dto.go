package dto

// CreateProductRequest cuerpo para crear un producto. Una cantidad inicial
// mayor que cero genera un movimiento IN implícito.
type CreateProductRequest struct {
	Name            string `json:"name"`
	CategoryID      string `json:"category_id"`
	InitialQuantity int64  `json:"initial_quantity"`
}

// UpdateProductRequest cuerpo para actualizar nombre o categoría. La cantidad
// no se actualiza por aquí: solo el motor de ledger la muta.
type UpdateProductRequest struct {
	Name       *string `json:"name"`
	CategoryID *string `json:"category_id"`
}

// AddStockRequest cuerpo del atajo de entrada de stock.
type AddStockRequest struct {
	Quantity int64 `json:"quantity"`
}

// ProductResponse producto con su nivel de stock derivado.
type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Quantity     int64  `json:"quantity"`
	Status       string `json:"status"`
	StatusColor  string `json:"status_color"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ReplenishmentPriorityResponse prioridad determinista de reposición más
// diagnósticos de salidas. Los diagnósticos son informativos; jamás alteran
// la prioridad calculada desde la cantidad.
type ReplenishmentPriorityResponse struct {
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	CurrentQuantity int64   `json:"current_quantity"`
	Priority        string  `json:"priority"`
	AvgOutbound     string  `json:"avg_outbound"`               // promedio de magnitud de salidas
	LastOutboundAt  *string `json:"last_outbound_at,omitempty"` // RFC3339, omitido si nunca salió
}
