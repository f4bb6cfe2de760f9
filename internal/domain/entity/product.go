package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// CurrentStock es el saldo denormalizado del libro de movimientos: debe coincidir
// siempre con la suma de cantidades firmadas de stock_movements para el producto.
type Product struct {
	ID           string
	SKU          string // código único, no vacío
	Name         string
	Description  string
	CategoryID   string // vacío si no tiene categoría
	SupplierID   string // vacío si no tiene proveedor
	UnitPrice    decimal.Decimal // precio de venta
	CostPrice    decimal.Decimal // costo de adquisición
	CurrentStock int64
	MinStock     int64
	MaxStock     int64
	ReorderPoint int64 // umbral de reposición: stock <= reorder_point => alerta
	Location     string
	IsActive     bool // soft delete
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el producto está en o por debajo de su punto de reorden.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.ReorderPoint
}
