package entity

import "time"

// Category representa una categoría de productos.
// ProductCount es derivado (COUNT en lecturas); no se persiste como columna.
type Category struct {
	ID           string
	Name         string
	ProductCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
