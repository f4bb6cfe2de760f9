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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, code, name, contact_name, email, phone, address, city, country,
	is_active, created_at, updated_at`

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Code, supplier.Name,
		nullIfEmpty(supplier.ContactName), nullIfEmpty(supplier.Email),
		nullIfEmpty(supplier.Phone), nullIfEmpty(supplier.Address),
		nullIfEmpty(supplier.City), nullIfEmpty(supplier.Country),
		supplier.IsActive, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCode obtiene un proveedor por código.
func (r *SupplierRepo) GetByCode(code string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE code = $1`
	return r.scanOne(query, code)
}

func (r *SupplierRepo) scanOne(query string, arg any) (*entity.Supplier, error) {
	var s entity.Supplier
	var contact, email, phone, address, city, country *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Code, &s.Name, &contact, &email, &phone,
		&address, &city, &country, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	s.ContactName = orEmpty(contact)
	s.Email = orEmpty(email)
	s.Phone = orEmpty(phone)
	s.Address = orEmpty(address)
	s.City = orEmpty(city)
	s.Country = orEmpty(country)
	return &s, nil
}

// List lista proveedores activos con el conteo de productos, ordenados por nombre.
func (r *SupplierRepo) List() ([]*repository.SupplierWithCount, error) {
	query := `
		SELECT s.id, s.code, s.name, s.contact_name, s.email, s.phone,
		       s.address, s.city, s.country, s.is_active, s.created_at, s.updated_at,
		       COUNT(p.id) AS product_count
		FROM suppliers s
		LEFT JOIN products p ON p.supplier_id = s.id AND p.is_active
		WHERE s.is_active
		GROUP BY s.id
		ORDER BY s.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*repository.SupplierWithCount
	for rows.Next() {
		var s repository.SupplierWithCount
		var contact, email, phone, address, city, country *string
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &contact, &email, &phone,
			&address, &city, &country, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&s.ProductCount); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		s.ContactName = orEmpty(contact)
		s.Email = orEmpty(email)
		s.Phone = orEmpty(phone)
		s.Address = orEmpty(address)
		s.City = orEmpty(city)
		s.Country = orEmpty(country)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update sobrescribe los campos del proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET code = $2, name = $3, contact_name = $4, email = $5,
			phone = $6, address = $7, city = $8, country = $9, is_active = $10,
			updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Code, supplier.Name,
		nullIfEmpty(supplier.ContactName), nullIfEmpty(supplier.Email),
		nullIfEmpty(supplier.Phone), nullIfEmpty(supplier.Address),
		nullIfEmpty(supplier.City), nullIfEmpty(supplier.Country),
		supplier.IsActive, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// SoftDelete marca el proveedor como inactivo.
func (r *SupplierRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET is_active = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete supplier: %w", err)
	}
	return nil
}
