package dto

// ProductStatusDTO fila de producto crítico en el dashboard.
type ProductStatusDTO struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int64  `json:"quantity"`
	Status      string `json:"status"`
	StatusColor string `json:"status_color"`
}

// DashboardResponse resumen de inventario para el tablero.
type DashboardResponse struct {
	TotalProducts    int64              `json:"total_products"`
	LowStockProducts int64              `json:"low_stock_products"`
	TotalCategories  int64              `json:"total_categories"`
	CriticalProducts []ProductStatusDTO `json:"critical_products"`
}
