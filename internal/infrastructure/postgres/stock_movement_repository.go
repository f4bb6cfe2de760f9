package postgres

import (
	"context"
	"fmt"

	"github.com/dareyes/inventario-pyme/internal/domain/entity"
	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL.
// Las entradas son inmutables: no hay UPDATE ni DELETE sobre esta tabla.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta una entrada del libro. Debe llamarse dentro de la misma
// transacción que actualiza el stock del producto (ver TxRunner.Run).
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, movement_type, quantity,
			previous_stock, new_stock, unit_cost, reason, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.PreviousStock, movement.NewStock, movement.UnitCost,
		nullIfEmpty(movement.Reason), nullIfEmpty(movement.Reference),
		movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List devuelve movimientos con datos del producto, ordenados por created_at DESC.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementDetail, error) {
	query := `
		SELECT m.id, m.product_id, m.movement_type, m.quantity,
		       m.previous_stock, m.new_stock, m.unit_cost, m.reason, m.reference,
		       m.created_at,
		       p.sku, p.name AS product_name,
		       COALESCE(c.name, '') AS category_name
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN categories c ON c.id = p.category_id`
	var args []any
	pos := 1
	where := ""
	if filter.ProductID != "" {
		where += fmt.Sprintf(" AND m.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Type != "" {
		where += fmt.Sprintf(" AND m.movement_type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if where != "" {
		query += " WHERE" + where[4:]
	}
	query += " ORDER BY m.created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", pos)
		args = append(args, filter.Limit)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*repository.MovementDetail
	for rows.Next() {
		var d repository.MovementDetail
		var reason, reference *string
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Type, &d.Quantity,
			&d.PreviousStock, &d.NewStock, &d.UnitCost, &reason, &reference,
			&d.CreatedAt, &d.SKU, &d.ProductName, &d.CategoryName); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		d.Reason = orEmpty(reason)
		d.Reference = orEmpty(reference)
		list = append(list, &d)
	}
	return list, rows.Err()
}
