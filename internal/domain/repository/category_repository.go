package repository

import "github.com/dareyes/inventario-pyme/internal/domain/entity"

// CategoryWithCount categoría con el número de productos activos asociados.
type CategoryWithCount struct {
	entity.Category
	ProductCount int
}

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*CategoryWithCount, error)
	Update(category *entity.Category) error
	// Delete elimina la fila (hard delete). La guarda de productos activos vive en el caso de uso.
	Delete(id string) error
}
