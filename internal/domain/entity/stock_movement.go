package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario. La API de registro solo escribe IN y OUT;
// el resto existe para cargas históricas y compatibilidad de datos.
const (
	MovementTypeIN         = "IN"
	MovementTypeOUT        = "OUT"
	MovementTypeADJUSTMENT = "ADJUSTMENT"
	MovementTypeTRANSFER   = "TRANSFER"
	MovementTypeRETURN     = "RETURN"
)

// StockMovement es una entrada inmutable del libro de inventario.
// Quantity se guarda firmada (positiva para IN, negativa para OUT).
// PreviousStock y NewStock son la foto del stock del producto antes y después
// de aplicar la entrada; el PreviousStock de la entrada n+1 debe ser igual al
// NewStock de la entrada n para un mismo producto (cadena monotónica).
type StockMovement struct {
	ID            string
	ProductID     string
	Type          string
	Quantity      int64
	PreviousStock int64
	NewStock      int64
	UnitCost      *decimal.Decimal
	Reason        string
	Reference     string // factura, orden, nota de ajuste, etc.
	CreatedAt     time.Time
}
