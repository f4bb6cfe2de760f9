package requirement_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dareyes/inventario-pyme/internal/application/dto"
	"github.com/dareyes/inventario-pyme/internal/application/requirement"
	"github.com/dareyes/inventario-pyme/internal/domain"
	"github.com/dareyes/inventario-pyme/internal/domain/entity"
	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeRequirementRepo struct {
	requirements map[string]*entity.Requirement
	updates      []map[string]any
}

func newFakeRequirementRepo() *fakeRequirementRepo {
	return &fakeRequirementRepo{requirements: map[string]*entity.Requirement{}}
}

func (r *fakeRequirementRepo) Create(req *entity.Requirement) error {
	for _, existing := range r.requirements {
		if existing.RequirementNumber == req.RequirementNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *req
	r.requirements[req.ID] = &cp
	return nil
}

func (r *fakeRequirementRepo) GetByID(id string) (*repository.RequirementDetail, error) {
	req, ok := r.requirements[id]
	if !ok {
		return nil, nil
	}
	return &repository.RequirementDetail{Requirement: *req}, nil
}

func (r *fakeRequirementRepo) List(filter repository.RequirementFilter) ([]*repository.RequirementDetail, error) {
	var out []*repository.RequirementDetail
	for _, req := range r.requirements {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && req.Priority != filter.Priority {
			continue
		}
		out = append(out, &repository.RequirementDetail{Requirement: *req})
	}
	return out, nil
}

func (r *fakeRequirementRepo) UpdateFields(id string, fields map[string]any) error {
	if _, ok := r.requirements[id]; !ok {
		return domain.ErrNotFound
	}
	r.updates = append(r.updates, fields)
	return nil
}

func (r *fakeRequirementRepo) Delete(id string) error {
	if _, ok := r.requirements[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.requirements, id)
	return nil
}

func (r *fakeRequirementRepo) NextSequence(year int) (int, error) {
	prefix := fmt.Sprintf("REQ-%d-", year)
	max := 0
	for _, req := range r.requirements {
		if !strings.HasPrefix(req.RequirementNumber, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(req.RequirementNumber, prefix))
		if err == nil && n > max {
			max = n
		}
	}
	return max + 1, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetDetail(string) (*repository.ProductDetail, error) {
	return nil, nil
}
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*repository.ProductDetail, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error               { return nil }
func (r *fakeProductRepo) SoftDelete(string) error                    { return nil }
func (r *fakeProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) UpdateStock(string, int64) error            { return nil }
func (r *fakeProductRepo) CountActiveByCategory(string) (int, error)  { return 0, nil }
func (r *fakeProductRepo) CountActiveBySupplier(string) (int, error)  { return 0, nil }

type fakeTxRunner struct {
	reqRepo *fakeRequirementRepo
}

func (r *fakeTxRunner) RunRequirement(_ context.Context, fn func(
	reqRepo repository.RequirementRepository,
) error) error {
	return fn(r.reqRepo)
}

func buildUseCase() (*requirement.UseCase, *fakeRequirementRepo) {
	reqRepo := newFakeRequirementRepo()
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", SKU: "SKU-1", Name: "Producto 1", IsActive: true},
	}}
	uc := requirement.NewUseCase(&fakeTxRunner{reqRepo: reqRepo}, reqRepo, productRepo)
	return uc, reqRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Numeración
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatNumber_SecuenciaACuatroDigitos(t *testing.T) {
	assert.Equal(t, "REQ-2025-0001", requirement.FormatNumber(2025, 1))
	assert.Equal(t, "REQ-2025-0042", requirement.FormatNumber(2025, 42))
	assert.Equal(t, "REQ-2026-9999", requirement.FormatNumber(2026, 9999))
	// Más de cuatro dígitos no se trunca.
	assert.Equal(t, "REQ-2025-10000", requirement.FormatNumber(2025, 10000))
}

func TestCreate_PrimerNumeroDelAnio(t *testing.T) {
	uc, _ := buildUseCase()

	out, err := uc.Create(context.Background(), dto.CreateRequirementRequest{
		ProductID:      "p1",
		QuantityNeeded: 10,
	})
	require.NoError(t, err)

	expected := requirement.FormatNumber(time.Now().Year(), 1)
	assert.Equal(t, expected, out.RequirementNumber)
}

func TestCreate_SecuenciaIncrementa(t *testing.T) {
	uc, _ := buildUseCase()
	year := time.Now().Year()

	for i := 1; i <= 3; i++ {
		out, err := uc.Create(context.Background(), dto.CreateRequirementRequest{
			ProductID:      "p1",
			QuantityNeeded: int64(i),
		})
		require.NoError(t, err)
		assert.Equal(t, requirement.FormatNumber(year, i), out.RequirementNumber,
			"cada creación debe tomar la siguiente secuencia del año")
	}
}

// La secuencia reinicia por año: los números de años anteriores no cuentan.
func TestCreate_SecuenciaReiniciaPorAnio(t *testing.T) {
	uc, reqRepo := buildUseCase()
	year := time.Now().Year()

	reqRepo.requirements["viejo"] = &entity.Requirement{
		ID:                "viejo",
		RequirementNumber: requirement.FormatNumber(year-1, 7),
		ProductID:         "p1",
	}

	out, err := uc.Create(context.Background(), dto.CreateRequirementRequest{
		ProductID:      "p1",
		QuantityNeeded: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, requirement.FormatNumber(year, 1), out.RequirementNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_PrioridadPorDefectoMedium(t *testing.T) {
	uc, reqRepo := buildUseCase()

	out, err := uc.Create(context.Background(), dto.CreateRequirementRequest{
		ProductID:      "p1",
		QuantityNeeded: 5,
	})
	require.NoError(t, err)

	stored := reqRepo.requirements[out.ID]
	require.NotNil(t, stored)
	assert.Equal(t, entity.PriorityMedium, stored.Priority)
	assert.Equal(t, entity.StatusPending, stored.Status, "todo requerimiento nace PENDING")
}

func TestCreate_PrioridadInvalidaRechazada(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Create(context.Background(), dto.CreateRequirementRequest{
		ProductID:      "p1",
		QuantityNeeded: 5,
		Priority:       "CRITICAL",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CantidadInvalidaRechazada(t *testing.T) {
	uc, _ := buildUseCase()

	for _, qty := range []int64{0, -5} {
		_, err := uc.Create(context.Background(), dto.CreateRequirementRequest{
			ProductID:      "p1",
			QuantityNeeded: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreate_ProductoInexistente(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.Create(context.Background(), dto.CreateRequirementRequest{
		ProductID:      "no-existe",
		QuantityNeeded: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CamposAdmitidos(t *testing.T) {
	uc, reqRepo := buildUseCase()
	out, err := uc.Create(context.Background(), dto.CreateRequirementRequest{
		ProductID:      "p1",
		QuantityNeeded: 5,
	})
	require.NoError(t, err)

	err = uc.Update(out.ID, map[string]any{
		"status":   "APPROVED",
		"priority": "HIGH",
	})
	require.NoError(t, err)
	require.Len(t, reqRepo.updates, 1)
	assert.Equal(t, "APPROVED", reqRepo.updates[0]["status"])
}

func TestUpdate_CampoFueraDeListaRechazado(t *testing.T) {
	uc, reqRepo := buildUseCase()
	out, err := uc.Create(context.Background(), dto.CreateRequirementRequest{
		ProductID:      "p1",
		QuantityNeeded: 5,
	})
	require.NoError(t, err)

	// requirement_number es inmutable; id y columnas arbitrarias tampoco pasan.
	for _, field := range []string{"requirement_number", "id", "created_at", "1=1; DROP TABLE requirements"} {
		err = uc.Update(out.ID, map[string]any{field: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "campo %q debe rechazarse", field)
	}
	assert.Empty(t, reqRepo.updates, "ningún update debe llegar al repo")
}

func TestUpdate_CuerpoVacioRechazado(t *testing.T) {
	uc, _ := buildUseCase()
	err := uc.Update("r1", map[string]any{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_RequerimientoInexistente(t *testing.T) {
	uc, _ := buildUseCase()
	err := uc.Update("no-existe", map[string]any{"status": "APPROVED"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado y lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_EliminaYLuego404(t *testing.T) {
	uc, _ := buildUseCase()
	out, err := uc.Create(context.Background(), dto.CreateRequirementRequest{
		ProductID:      "p1",
		QuantityNeeded: 5,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID))

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "tras el borrado la lectura debe devolver nil")

	assert.ErrorIs(t, uc.Delete(out.ID), domain.ErrNotFound)
}
