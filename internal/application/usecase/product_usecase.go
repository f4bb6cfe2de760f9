package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dareyes/inventario-pyme/internal/application/dto"
	"github.com/dareyes/inventario-pyme/internal/domain"
	"github.com/dareyes/inventario-pyme/internal/domain/entity"
	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

const defaultMaxStock = 1000

// ProductUseCase casos de uso CRUD para productos.
// CurrentStock se inicializa al crear; después solo se modifica vía movimientos
// o por la sobrescritura explícita del PUT (comportamiento heredado de la API).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto activo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) || in.CostPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	maxStock := in.MaxStock
	if maxStock == 0 {
		maxStock = defaultMaxStock
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		UnitPrice:    in.UnitPrice,
		CostPrice:    in.CostPrice,
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		MaxStock:     maxStock,
		ReorderPoint: in.ReorderPoint,
		Location:     in.Location,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	out := toProductResponse(&repository.ProductDetail{Product: *product})
	return &out, nil
}

// GetByID obtiene un producto con nombres de categoría y proveedor. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	detail, err := uc.repo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}
	out := toProductResponse(detail)
	return &out, nil
}

// List lista productos activos ordenados por nombre, con filtros opcionales.
func (uc *ProductUseCase) List(query dto.ListProductsQuery) ([]dto.ProductResponse, error) {
	filter := repository.ProductFilter{
		Search:     query.Search,
		CategoryID: query.CategoryID,
		LowStock:   query.LowStock == "true",
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update sobrescribe los campos del producto (PUT completo). Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) || in.CostPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.SKU = in.SKU
	product.Name = in.Name
	product.Description = in.Description
	product.CategoryID = in.CategoryID
	product.SupplierID = in.SupplierID
	product.UnitPrice = in.UnitPrice
	product.CostPrice = in.CostPrice
	product.CurrentStock = in.CurrentStock
	product.MinStock = in.MinStock
	product.MaxStock = in.MaxStock
	product.ReorderPoint = in.ReorderPoint
	product.Location = in.Location
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete marca el producto como inactivo (soft delete).
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

func toProductResponse(p *repository.ProductDetail) dto.ProductResponse {
	return dto.ProductResponse{
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
	}
}
