package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
type DashboardStatsResponse struct {
	TotalProducts       int64           `json:"totalProducts"`
	LowStockProducts    int64           `json:"lowStockProducts"`
	InventoryValue      decimal.Decimal `json:"inventoryValue"`      // Σ current_stock * cost_price (activos)
	PendingRequirements int64           `json:"pendingRequirements"`
}

// LowStockProductResponse fila de GET /api/dashboard/low-stock.
type LowStockProductResponse struct {
	ProductResponse
	QuantityToOrder int64 `json:"quantity_to_order"` // reorder_point - current_stock
}
