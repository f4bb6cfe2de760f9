package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dareyes/inventario-pyme/internal/application/dto"
	"github.com/dareyes/inventario-pyme/internal/application/usecase"
	"github.com/dareyes/inventario-pyme/internal/domain"
	"github.com/dareyes/inventario-pyme/internal/domain/entity"
	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) List() ([]*repository.CategoryWithCount, error) {
	var out []*repository.CategoryWithCount
	for _, c := range r.categories {
		out = append(out, &repository.CategoryWithCount{Category: *c})
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

// countingProductRepo solo responde los conteos por categoría/proveedor.
type countingProductRepo struct {
	byCategory map[string]int
	bySupplier map[string]int
}

func (r *countingProductRepo) Create(*entity.Product) error                  { return nil }
func (r *countingProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (r *countingProductRepo) GetBySKU(string) (*entity.Product, error)      { return nil, nil }
func (r *countingProductRepo) GetDetail(string) (*repository.ProductDetail, error) {
	return nil, nil
}
func (r *countingProductRepo) List(repository.ProductFilter) ([]*repository.ProductDetail, error) {
	return nil, nil
}
func (r *countingProductRepo) Update(*entity.Product) error                 { return nil }
func (r *countingProductRepo) SoftDelete(string) error                      { return nil }
func (r *countingProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *countingProductRepo) UpdateStock(string, int64) error              { return nil }
func (r *countingProductRepo) CountActiveByCategory(id string) (int, error) {
	return r.byCategory[id], nil
}
func (r *countingProductRepo) CountActiveBySupplier(id string) (int, error) {
	return r.bySupplier[id], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_NombreRequerido(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), &countingProductRepo{})

	_, err := uc.Create(dto.CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), &countingProductRepo{})

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Ferretería"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Ferretería"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Borrar una categoría con productos activos asociados se bloquea con ErrConflict.
func TestCategoryDelete_BloqueadoConProductosActivos(t *testing.T) {
	repo := newFakeCategoryRepo()
	products := &countingProductRepo{byCategory: map[string]int{}}
	uc := usecase.NewCategoryUseCase(repo, products)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Ferretería"})
	require.NoError(t, err)
	products.byCategory[out.ID] = 3

	err = uc.Delete(out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, _ := repo.GetByID(out.ID)
	assert.NotNil(t, got, "la categoría debe seguir existiendo tras el rechazo")
}

func TestCategoryDelete_SinProductosActivos(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo, &countingProductRepo{})

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Descontinuados"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID))

	got, _ := repo.GetByID(out.ID)
	assert.Nil(t, got, "el borrado es hard delete")
}

func TestCategoryDelete_Inexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), &countingProductRepo{})
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestCategoryUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), &countingProductRepo{})

	out, err := uc.Update("no-existe", dto.UpdateCategoryRequest{Name: "Nueva"})
	require.NoError(t, err)
	assert.Nil(t, out, "update de categoría inexistente devuelve nil sin error")
}
