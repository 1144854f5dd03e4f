package repository

import "github.com/tu-usuario/safestock/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	// CountProducts cuenta los productos vinculados a la categoría. El guard de
	// borrado lo evalúa dentro de la misma transacción que Delete.
	CountProducts(id string) (int64, error)
	Delete(id string) error
}
