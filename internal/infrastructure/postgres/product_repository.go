package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dareyes/inventario-pyme/internal/domain"
	"github.com/dareyes/inventario-pyme/internal/domain/entity"
	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, description, category_id, supplier_id,
	unit_price, cost_price, current_stock, min_stock, max_stock, reorder_point,
	location, is_active, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		nullIfEmpty(product.CategoryID), nullIfEmpty(product.SupplierID),
		product.UnitPrice, product.CostPrice, product.CurrentStock,
		product.MinStock, product.MaxStock, product.ReorderPoint,
		nullIfEmpty(product.Location), product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(query, sku)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción: el lock serializa los movimientos
// concurrentes sobre el mismo producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *ProductRepo) scanOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	var categoryID, supplierID, location *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &categoryID, &supplierID,
		&p.UnitPrice, &p.CostPrice, &p.CurrentStock, &p.MinStock, &p.MaxStock,
		&p.ReorderPoint, &location, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.CategoryID = orEmpty(categoryID)
	p.SupplierID = orEmpty(supplierID)
	p.Location = orEmpty(location)
	return &p, nil
}

const productDetailQuery = `
	SELECT p.id, p.sku, p.name, p.description, p.category_id, p.supplier_id,
	       p.unit_price, p.cost_price, p.current_stock, p.min_stock, p.max_stock,
	       p.reorder_point, p.location, p.is_active, p.created_at, p.updated_at,
	       COALESCE(c.name, '') AS category_name,
	       COALESCE(s.name, '') AS supplier_name
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN suppliers  s ON s.id = p.supplier_id`

// GetDetail obtiene un producto con los nombres de categoría y proveedor resueltos.
func (r *ProductRepo) GetDetail(id string) (*repository.ProductDetail, error) {
	query := productDetailQuery + ` WHERE p.id = $1`
	var d repository.ProductDetail
	if err := scanProductDetail(r.q.QueryRow(context.Background(), query, id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}
	return &d, nil
}

// List lista productos activos ordenados por nombre, con filtros opcionales.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*repository.ProductDetail, error) {
	query := productDetailQuery + ` WHERE p.is_active`
	var args []any
	pos := 1
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.sku ILIKE $%d)", pos, pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND p.category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	if filter.LowStock {
		query += " AND p.current_stock <= p.reorder_point"
	}
	query += " ORDER BY p.name"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductDetail
	for rows.Next() {
		var d repository.ProductDetail
		if err := scanProductDetail(rows, &d); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func scanProductDetail(row pgx.Row, d *repository.ProductDetail) error {
	var categoryID, supplierID, location *string
	err := row.Scan(
		&d.ID, &d.SKU, &d.Name, &d.Description, &categoryID, &supplierID,
		&d.UnitPrice, &d.CostPrice, &d.CurrentStock, &d.MinStock, &d.MaxStock,
		&d.ReorderPoint, &location, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
		&d.CategoryName, &d.SupplierName,
	)
	if err != nil {
		return err
	}
	d.CategoryID = orEmpty(categoryID)
	d.SupplierID = orEmpty(supplierID)
	d.Location = orEmpty(location)
	return nil
}

// Update sobrescribe los campos del producto (current_stock incluido: PUT completo).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, name = $3, description = $4, category_id = $5,
			supplier_id = $6, unit_price = $7, cost_price = $8, current_stock = $9,
			min_stock = $10, max_stock = $11, reorder_point = $12, location = $13,
			updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description,
		nullIfEmpty(product.CategoryID), nullIfEmpty(product.SupplierID),
		product.UnitPrice, product.CostPrice, product.CurrentStock,
		product.MinStock, product.MaxStock, product.ReorderPoint,
		nullIfEmpty(product.Location), product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como inactivo.
func (r *ProductRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// UpdateStock sobrescribe current_stock (usado por el libro de movimientos, dentro de su tx).
func (r *ProductRepo) UpdateStock(id string, newStock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, newStock)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// CountActiveByCategory cuenta productos activos que referencian la categoría.
func (r *ProductRepo) CountActiveByCategory(categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1 AND is_active`,
		categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// CountActiveBySupplier cuenta productos activos que referencian el proveedor.
func (r *ProductRepo) CountActiveBySupplier(supplierID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE supplier_id = $1 AND is_active`,
		supplierID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by supplier: %w", err)
	}
	return count, nil
}
