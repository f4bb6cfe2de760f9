package requirement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dareyes/inventario-pyme/internal/application/dto"
	"github.com/dareyes/inventario-pyme/internal/domain"
	"github.com/dareyes/inventario-pyme/internal/domain/entity"
	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

// Columnas admitidas en el update parcial. El body se aplica tal cual
// (sin grafo de transiciones de estado), pero solo sobre estas columnas.
var updatableFields = map[string]bool{
	"product_id":      true,
	"quantity_needed": true,
	"priority":        true,
	"status":          true,
	"requested_by":    true,
	"department":      true,
	"reason":          true,
	"expected_date":   true,
}

var validPriorities = map[string]bool{
	entity.PriorityLow:    true,
	entity.PriorityMedium: true,
	entity.PriorityHigh:   true,
	entity.PriorityUrgent: true,
}

// UseCase casos de uso para requerimientos de compra, incluida la generación
// del número secuencial REQ-<año>-<NNNN>.
type UseCase struct {
	txRunner    TxRunner
	reqRepo     repository.RequirementRepository // atado al pool
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, reqRepo repository.RequirementRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{txRunner: txRunner, reqRepo: reqRepo, productRepo: productRepo, now: time.Now}
}

// Create genera el requirement_number del año en curso y crea el requerimiento
// en una sola transacción. La secuencia es max(existente del año) + 1, con
// default 1 cuando no hay requerimientos del año.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateRequirementRequest) (*dto.CreateRequirementResponse, error) {
	if in.ProductID == "" || in.QuantityNeeded <= 0 {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !validPriorities[priority] {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	year := now.Year()
	req := &entity.Requirement{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		QuantityNeeded: in.QuantityNeeded,
		Priority:       priority,
		Status:         entity.StatusPending,
		RequestedBy:    in.RequestedBy,
		Department:     in.Department,
		Reason:         in.Reason,
		ExpectedDate:   in.ExpectedDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Número e insert en la misma transacción: NextSequence serializa por año,
	// y el unique sobre requirement_number queda como respaldo.
	err = uc.txRunner.RunRequirement(ctx, func(reqRepo repository.RequirementRepository) error {
		seq, err := reqRepo.NextSequence(year)
		if err != nil {
			return err
		}
		req.RequirementNumber = FormatNumber(year, seq)
		return reqRepo.Create(req)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateRequirementResponse{
		ID:                req.ID,
		RequirementNumber: req.RequirementNumber,
		Message:           "requerimiento creado exitosamente",
	}, nil
}

// FormatNumber construye el número legible: REQ-<año>-<secuencia a 4 dígitos>.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("REQ-%d-%04d", year, seq)
}

// GetByID obtiene un requerimiento con datos del producto. Devuelve (nil, nil) si no existe.
func (uc *UseCase) GetByID(id string) (*dto.RequirementResponse, error) {
	detail, err := uc.reqRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}
	out := toRequirementResponse(detail)
	return &out, nil
}

// List lista requerimientos filtrados por status/priority, URGENT primero.
func (uc *UseCase) List(query dto.ListRequirementsQuery) ([]dto.RequirementResponse, error) {
	list, err := uc.reqRepo.List(repository.RequirementFilter{
		Status:   query.Status,
		Priority: query.Priority,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequirementResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRequirementResponse(r))
	}
	return out, nil
}

// Update aplica un mapa parcial de campos tal cual (status incluido, texto libre).
// Claves fuera de la lista de columnas admitidas se rechazan con ErrInvalidInput.
func (uc *UseCase) Update(id string, fields map[string]any) error {
	if len(fields) == 0 {
		return domain.ErrInvalidInput
	}
	for key := range fields {
		if !updatableFields[key] {
			return domain.ErrInvalidInput
		}
	}
	// Los números JSON llegan como float64; la columna es BIGINT.
	if v, ok := fields["quantity_needed"].(float64); ok {
		if v <= 0 || v != float64(int64(v)) {
			return domain.ErrInvalidInput
		}
		fields["quantity_needed"] = int64(v)
	}
	return uc.reqRepo.UpdateFields(id, fields)
}

// Delete elimina el requerimiento (hard delete).
func (uc *UseCase) Delete(id string) error {
	return uc.reqRepo.Delete(id)
}

func toRequirementResponse(r *repository.RequirementDetail) dto.RequirementResponse {
	return dto.RequirementResponse{
		ID:                r.ID,
		RequirementNumber: r.RequirementNumber,
		ProductID:         r.ProductID,
		SKU:               r.SKU,
		ProductName:       r.ProductName,
		SupplierName:      r.SupplierName,
		QuantityNeeded:    r.QuantityNeeded,
		Priority:          r.Priority,
		Status:            r.Status,
		RequestedBy:       r.RequestedBy,
		Department:        r.Department,
		Reason:            r.Reason,
		ExpectedDate:      r.ExpectedDate,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
