package repository

import "github.com/dareyes/inventario-pyme/internal/domain/entity"

// SupplierWithCount proveedor con el número de productos asociados.
type SupplierWithCount struct {
	entity.Supplier
	ProductCount int
}

// SupplierRepository puerto de persistencia para proveedores (soft delete).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByCode(code string) (*entity.Supplier, error)
	List() ([]*SupplierWithCount, error)
	Update(supplier *entity.Supplier) error
	SoftDelete(id string) error
}
