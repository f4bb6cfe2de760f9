package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dareyes/inventario-pyme/internal/application/dto"
	"github.com/dareyes/inventario-pyme/internal/domain"
	"github.com/dareyes/inventario-pyme/internal/domain/entity"
	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos del libro de inventario de forma
// transaccional (IN, OUT) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository // atado al pool, solo lecturas
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// MovementInput entrada para registrar un movimiento.
// Quantity es una magnitud sin signo; el signo lo deriva Type. Los call sites
// no deben pasar cantidades pre-firmadas: una cantidad negativa se rechaza.
type MovementInput struct {
	ProductID string
	Type      string // IN | OUT
	Quantity  int64
	UnitCost  *decimal.Decimal
	Reason    string
	Reference string
}

// MovementResult confirma la entrada registrada con la foto antes/después del stock.
type MovementResult struct {
	MovementID    string
	ProductID     string
	Type          string
	PreviousStock int64
	NewStock      int64
}

// RegisterMovement inicia una transacción, bloquea la fila del producto,
// verifica stock suficiente para OUT, inserta la entrada inmutable del libro
// (previous_stock/new_stock) y sobrescribe products.current_stock.
// Ambas escrituras se confirman juntas o ninguna. Sin reintentos: cualquier
// fallo se devuelve de inmediato al caller.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementTypeIN && input.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.UnitCost != nil && input.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila en products para que dos movimientos concurrentes no
		// lean el mismo previous_stock (lost update sobre la cadena del libro).
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		previous := product.CurrentStock
		var newStock, signed int64
		switch input.Type {
		case entity.MovementTypeIN:
			newStock = previous + input.Quantity
			signed = input.Quantity
		case entity.MovementTypeOUT:
			if input.Quantity > previous {
				return domain.ErrInsufficientStock
			}
			newStock = previous - input.Quantity
			signed = -input.Quantity
		}

		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     input.ProductID,
			Type:          input.Type,
			Quantity:      signed,
			PreviousStock: previous,
			NewStock:      newStock,
			UnitCost:      input.UnitCost,
			Reason:        input.Reason,
			Reference:     input.Reference,
			CreatedAt:     time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(input.ProductID, newStock); err != nil {
			return err
		}

		result = &MovementResult{
			MovementID:    mov.ID,
			ProductID:     input.ProductID,
			Type:          input.Type,
			PreviousStock: previous,
			NewStock:      newStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListMovements lista movimientos (más recientes primero) con filtros opcionales.
func (uc *RegisterMovementUseCase) ListMovements(query dto.ListMovementsQuery) ([]dto.MovementResponse, error) {
	filter := repository.MovementFilter{
		ProductID: query.ProductID,
		Type:      query.MovementType,
		Limit:     query.Limit,
	}
	list, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *repository.MovementDetail) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		SKU:           m.SKU,
		ProductName:   m.ProductName,
		CategoryName:  m.CategoryName,
		MovementType:  m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		UnitCost:      m.UnitCost,
		Reason:        m.Reason,
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
	}
}
