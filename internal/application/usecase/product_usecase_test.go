package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dareyes/inventario-pyme/internal/application/dto"
	"github.com/dareyes/inventario-pyme/internal/application/usecase"
	"github.com/dareyes/inventario-pyme/internal/domain"
	"github.com/dareyes/inventario-pyme/internal/domain/entity"
	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

// memProductRepo fake completo con estado para los casos de uso de productos.
type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetDetail(id string) (*repository.ProductDetail, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &repository.ProductDetail{Product: *p}, nil
}

func (r *memProductRepo) List(filter repository.ProductFilter) ([]*repository.ProductDetail, error) {
	var out []*repository.ProductDetail
	for _, p := range r.products {
		if !p.IsActive {
			continue
		}
		if filter.LowStock && p.CurrentStock > p.ReorderPoint {
			continue
		}
		out = append(out, &repository.ProductDetail{Product: *p})
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) SoftDelete(id string) error {
	if p, ok := r.products[id]; ok {
		p.IsActive = false
	}
	return nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) UpdateStock(id string, newStock int64) error {
	if p, ok := r.products[id]; ok {
		p.CurrentStock = newStock
	}
	return nil
}

func (r *memProductRepo) CountActiveByCategory(string) (int, error) { return 0, nil }
func (r *memProductRepo) CountActiveBySupplier(string) (int, error) { return 0, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CamposRequeridos(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "Sin SKU"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "SKU-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PrecioNegativoRechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		SKU:       "SKU-1",
		Name:      "Tornillo",
		UnitPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-1", Name: "Tornillo"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "SKU-1", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_MaxStockPorDefecto(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-1", Name: "Tornillo"})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), out.MaxStock, "max_stock omitido toma el valor por defecto")
	assert.True(t, out.IsActive, "todo producto nace activo")
}

func TestProductDelete_SoftDelete(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{SKU: "SKU-1", Name: "Tornillo"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID))

	stored := repo.products[out.ID]
	require.NotNil(t, stored, "soft delete no elimina la fila")
	assert.False(t, stored.IsActive)

	list, err := uc.List(dto.ListProductsQuery{})
	require.NoError(t, err)
	assert.Empty(t, list, "los inactivos no aparecen en el listado")
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Update("no-existe", dto.UpdateProductRequest{SKU: "SKU-1", Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, out)
}
