package repository

import "github.com/dareyes/inventario-pyme/internal/domain/entity"

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Search     string // busca en name y sku (substring)
	CategoryID string
	LowStock   bool // solo productos con current_stock <= reorder_point
}

// ProductDetail producto con los nombres de categoría y proveedor resueltos (joins de lectura).
type ProductDetail struct {
	entity.Product
	CategoryName string
	SupplierName string
}

// ProductRepository puerto de persistencia para productos.
// Las implementaciones devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetDetail(id string) (*ProductDetail, error)
	List(filter ProductFilter) ([]*ProductDetail, error)
	Update(product *entity.Product) error
	SoftDelete(id string) error

	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE); usar solo dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock sobrescribe current_stock (usado por el libro de movimientos).
	UpdateStock(id string, newStock int64) error

	// CountActiveByCategory cuenta productos activos que referencian una categoría (guarda de borrado).
	CountActiveByCategory(categoryID string) (int, error)
	// CountActiveBySupplier cuenta productos que referencian un proveedor (para listados).
	CountActiveBySupplier(supplierID string) (int, error)
}
