package entity

import "time"

// Category representa una categoría de productos.
// No se puede eliminar mientras existan productos activos que la referencien.
type Category struct {
	ID          string
	Name        string // único
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
