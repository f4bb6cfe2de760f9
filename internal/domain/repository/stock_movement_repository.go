package repository

import "github.com/dareyes/inventario-pyme/internal/domain/entity"

// MovementFilter filtros del listado de movimientos.
type MovementFilter struct {
	ProductID string
	Type      string
	Limit     int // 0 = sin límite
}

// MovementDetail movimiento con datos del producto resueltos (joins de lectura).
type MovementDetail struct {
	entity.StockMovement
	SKU          string
	ProductName  string
	CategoryName string
}

// StockMovementRepository puerto del libro de movimientos de inventario.
// Las entradas son inmutables: solo se insertan y se listan.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List devuelve movimientos ordenados por created_at DESC.
	List(filter MovementFilter) ([]*MovementDetail, error)
}
