package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// LowStockProduct fila del listado de stock bajo del dashboard.
type LowStockProduct struct {
	ProductDetail
	QuantityToOrder int64 // reorder_point - current_stock
}

// DashboardRepository consultas de solo lectura para los agregados del dashboard.
// Sin caché: cada llamada recalcula contra el estado actual.
type DashboardRepository interface {
	CountActiveProducts(ctx context.Context) (int64, error)
	CountLowStockProducts(ctx context.Context) (int64, error)
	// InventoryValue devuelve la suma de current_stock * cost_price sobre productos activos.
	InventoryValue(ctx context.Context) (decimal.Decimal, error)
	CountPendingRequirements(ctx context.Context) (int64, error)
	// ListLowStock devuelve productos activos en o bajo su punto de reorden, current_stock ASC.
	ListLowStock(ctx context.Context, limit int) ([]*LowStockProduct, error)
}
