package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountActiveProducts cuenta productos activos.
func (r *DashboardRepo) CountActiveProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active products: %w", err)
	}
	return count, nil
}

// CountLowStockProducts cuenta productos activos en o bajo su punto de reorden.
func (r *DashboardRepo) CountLowStockProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE is_active AND current_stock <= reorder_point`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock products: %w", err)
	}
	return count, nil
}

// InventoryValue suma current_stock * cost_price sobre productos activos.
func (r *DashboardRepo) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(current_stock * cost_price), 0) FROM products WHERE is_active`).Scan(&value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("inventory value: %w", err)
	}
	return value, nil
}

// CountPendingRequirements cuenta requerimientos en estado PENDING.
func (r *DashboardRepo) CountPendingRequirements(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM requirements WHERE status = 'PENDING'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending requirements: %w", err)
	}
	return count, nil
}

// ListLowStock devuelve los productos más urgentes de reponer, ordenados por
// current_stock ascendente, con la cantidad sugerida a ordenar.
func (r *DashboardRepo) ListLowStock(ctx context.Context, limit int) ([]*repository.LowStockProduct, error) {
	query := productDetailQuery + `
		WHERE p.is_active AND p.current_stock <= p.reorder_point
		ORDER BY p.current_stock ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	defer rows.Close()
	var list []*repository.LowStockProduct
	for rows.Next() {
		var p repository.LowStockProduct
		if err := scanProductDetail(rows, &p.ProductDetail); err != nil {
			return nil, fmt.Errorf("scan low stock product: %w", err)
		}
		p.QuantityToOrder = p.ReorderPoint - p.CurrentStock
		if p.QuantityToOrder < 0 {
			p.QuantityToOrder = 0
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
