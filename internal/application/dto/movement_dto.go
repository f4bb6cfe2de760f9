package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/stock-movements.
// Quantity es una magnitud sin signo; el signo lo determina MovementType (IN | OUT).
type RegisterMovementRequest struct {
	ProductID    string           `json:"product_id"`
	MovementType string           `json:"movement_type"`
	Quantity     int64            `json:"quantity"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason       string           `json:"reason,omitempty"`
	Reference    string           `json:"reference,omitempty"`
}

// MovementResponse salida de un movimiento con datos del producto.
type MovementResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	SKU           string           `json:"sku"`
	ProductName   string           `json:"product_name"`
	CategoryName  string           `json:"category_name,omitempty"`
	MovementType  string           `json:"movement_type"`
	Quantity      int64            `json:"quantity"`
	PreviousStock int64            `json:"previous_stock"`
	NewStock      int64            `json:"new_stock"`
	UnitCost      *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason        string           `json:"reason,omitempty"`
	Reference     string           `json:"reference,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ListMovementsQuery filtros de GET /api/stock-movements.
type ListMovementsQuery struct {
	ProductID    string `query:"product_id"`
	MovementType string `query:"movement_type"`
	Limit        int    `query:"limit"`
}
