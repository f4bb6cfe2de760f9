package repository

import "github.com/dareyes/inventario-pyme/internal/domain/entity"

// RequirementFilter filtros del listado de requerimientos.
type RequirementFilter struct {
	Status   string
	Priority string
}

// RequirementDetail requerimiento con datos del producto y proveedor resueltos.
type RequirementDetail struct {
	entity.Requirement
	SKU          string
	ProductName  string
	SupplierName string
}

// RequirementRepository puerto de persistencia para requerimientos de compra.
type RequirementRepository interface {
	Create(requirement *entity.Requirement) error
	GetByID(id string) (*RequirementDetail, error)
	// List ordena por prioridad (URGENT primero) y luego expected_date ASC.
	List(filter RequirementFilter) ([]*RequirementDetail, error)
	// UpdateFields aplica un mapa parcial columna -> valor. Devuelve domain.ErrNotFound si el id no existe.
	UpdateFields(id string, fields map[string]any) error
	// Delete elimina la fila (hard delete). Devuelve domain.ErrNotFound si el id no existe.
	Delete(id string) error

	// NextSequence devuelve max(secuencia del año) + 1. Dentro de una transacción
	// la implementación serializa llamadas concurrentes del mismo año.
	NextSequence(year int) (int, error)
}
