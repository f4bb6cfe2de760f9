// Package analytics contiene los casos de uso de las vistas agregadas del
// dashboard (estadísticas, stock bajo y movimientos recientes).
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dareyes/inventario-pyme/internal/application/dto"
	"github.com/dareyes/inventario-pyme/internal/application/inventory"
	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

const (
	lowStockLimit        = 20 // filas del listado de stock bajo
	recentMovementsLimit = 20 // filas del listado de movimientos recientes
)

// DashboardUseCase proyecciones de solo lectura sobre productos, requerimientos
// y el libro de movimientos. Sin caché: cada llamada recalcula contra la BD.
type DashboardUseCase struct {
	dashRepo  repository.DashboardRepository
	movements *inventory.RegisterMovementUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, movements *inventory.RegisterMovementUseCase) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, movements: movements}
}

// GetStats construye las estadísticas del dashboard.
//
// Cuatro llamadas en paralelo:
//  1. CountActiveProducts        → TotalProducts
//  2. CountLowStockProducts      → LowStockProducts (current_stock <= reorder_point)
//  3. InventoryValue             → Σ current_stock * cost_price (activos)
//  4. CountPendingRequirements   → PendingRequirements
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	type countResult struct {
		n   int64
		err error
	}
	type valueResult struct {
		v   decimal.Decimal
		err error
	}

	totalCh := make(chan countResult, 1)
	lowCh := make(chan countResult, 1)
	valueCh := make(chan valueResult, 1)
	pendingCh := make(chan countResult, 1)

	go func() {
		n, err := uc.dashRepo.CountActiveProducts(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountLowStockProducts(ctx)
		lowCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.dashRepo.InventoryValue(ctx)
		valueCh <- valueResult{v, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountPendingRequirements(ctx)
		pendingCh <- countResult{n, err}
	}()

	total := <-totalCh
	low := <-lowCh
	value := <-valueCh
	pending := <-pendingCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", total.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: productos con stock bajo: %w", low.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("dashboard: valor del inventario: %w", value.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: requerimientos pendientes: %w", pending.err)
	}

	return &dto.DashboardStatsResponse{
		TotalProducts:       total.n,
		LowStockProducts:    low.n,
		InventoryValue:      value.v,
		PendingRequirements: pending.n,
	}, nil
}

// GetLowStock devuelve los productos activos en o bajo su punto de reorden,
// ordenados por current_stock ASC, máximo 20 filas.
func (uc *DashboardUseCase) GetLowStock(ctx context.Context) ([]dto.LowStockProductResponse, error) {
	list, err := uc.dashRepo.ListLowStock(ctx, lowStockLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", err)
	}
	out := make([]dto.LowStockProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.LowStockProductResponse{
			ProductResponse: dto.ProductResponse{
				ID:           p.ID,
				SKU:          p.SKU,
				Name:         p.Name,
				Description:  p.Description,
				CategoryID:   p.CategoryID,
				CategoryName: p.CategoryName,
				SupplierID:   p.SupplierID,
				SupplierName: p.SupplierName,
				UnitPrice:    p.UnitPrice,
				CostPrice:    p.CostPrice,
				CurrentStock: p.CurrentStock,
				MinStock:     p.MinStock,
				MaxStock:     p.MaxStock,
				ReorderPoint: p.ReorderPoint,
				Location:     p.Location,
				IsActive:     p.IsActive,
				CreatedAt:    p.CreatedAt,
				UpdatedAt:    p.UpdatedAt,
			},
			QuantityToOrder: p.QuantityToOrder,
		})
	}
	return out, nil
}

// GetRecentMovements devuelve las últimas 20 entradas del libro (created_at DESC).
func (uc *DashboardUseCase) GetRecentMovements() ([]dto.MovementResponse, error) {
	return uc.movements.ListMovements(dto.ListMovementsQuery{Limit: recentMovementsLimit})
}
