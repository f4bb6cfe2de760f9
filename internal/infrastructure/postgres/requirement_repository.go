package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/dareyes/inventario-pyme/internal/domain"
	"github.com/dareyes/inventario-pyme/internal/domain/entity"
	"github.com/dareyes/inventario-pyme/internal/domain/repository"
)

var _ repository.RequirementRepository = (*RequirementRepo)(nil)

// RequirementRepo implementación de RequirementRepository sobre PostgreSQL.
type RequirementRepo struct {
	q Querier
}

// NewRequirementRepository construye el adaptador de requerimientos. Pasar pool o tx (Querier).
func NewRequirementRepository(q Querier) *RequirementRepo {
	return &RequirementRepo{q: q}
}

// Create persiste un nuevo requerimiento.
func (r *RequirementRepo) Create(requirement *entity.Requirement) error {
	query := `
		INSERT INTO requirements (id, requirement_number, product_id, quantity_needed,
			priority, status, requested_by, department, reason, expected_date,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		requirement.ID, requirement.RequirementNumber, requirement.ProductID,
		requirement.QuantityNeeded, requirement.Priority, requirement.Status,
		nullIfEmpty(requirement.RequestedBy), nullIfEmpty(requirement.Department),
		nullIfEmpty(requirement.Reason), requirement.ExpectedDate,
		requirement.CreatedAt, requirement.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert requirement: %w", err)
	}
	return nil
}

const requirementDetailQuery = `
	SELECT r.id, r.requirement_number, r.product_id, r.quantity_needed,
	       r.priority, r.status, r.requested_by, r.department, r.reason,
	       r.expected_date, r.created_at, r.updated_at,
	       p.sku, p.name AS product_name,
	       COALESCE(s.name, '') AS supplier_name
	FROM requirements r
	JOIN products p ON p.id = r.product_id
	LEFT JOIN suppliers s ON s.id = p.supplier_id`

// GetByID obtiene un requerimiento con datos de producto y proveedor.
func (r *RequirementRepo) GetByID(id string) (*repository.RequirementDetail, error) {
	query := requirementDetailQuery + ` WHERE r.id = $1`
	var d repository.RequirementDetail
	if err := scanRequirementDetail(r.q.QueryRow(context.Background(), query, id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get requirement: %w", err)
	}
	return &d, nil
}

// List devuelve requerimientos ordenados por prioridad (URGENT primero) y
// luego expected_date ascendente (NULL al final).
func (r *RequirementRepo) List(filter repository.RequirementFilter) ([]*repository.RequirementDetail, error) {
	query := requirementDetailQuery
	var args []any
	pos := 1
	where := ""
	if filter.Status != "" {
		where += fmt.Sprintf(" AND r.status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Priority != "" {
		where += fmt.Sprintf(" AND r.priority = $%d", pos)
		args = append(args, filter.Priority)
	}
	if where != "" {
		query += " WHERE" + where[4:]
	}
	query += `
		ORDER BY CASE r.priority
			WHEN 'URGENT' THEN 1
			WHEN 'HIGH'   THEN 2
			WHEN 'MEDIUM' THEN 3
			WHEN 'LOW'    THEN 4
			ELSE 5
		END, r.expected_date ASC NULLS LAST`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()
	var list []*repository.RequirementDetail
	for rows.Next() {
		var d repository.RequirementDetail
		if err := scanRequirementDetail(rows, &d); err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func scanRequirementDetail(row pgx.Row, d *repository.RequirementDetail) error {
	var requestedBy, department, reason *string
	err := row.Scan(
		&d.ID, &d.RequirementNumber, &d.ProductID, &d.QuantityNeeded,
		&d.Priority, &d.Status, &requestedBy, &department, &reason,
		&d.ExpectedDate, &d.CreatedAt, &d.UpdatedAt,
		&d.SKU, &d.ProductName, &d.SupplierName,
	)
	if err != nil {
		return err
	}
	d.RequestedBy = orEmpty(requestedBy)
	d.Department = orEmpty(department)
	d.Reason = orEmpty(reason)
	return nil
}

// UpdateFields aplica un update parcial. Las claves del mapa ya vienen validadas
// contra la lista blanca del caso de uso; aquí solo se arma el SET con placeholders.
func (r *RequirementRepo) UpdateFields(id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	// Orden determinístico para que el SQL generado sea estable.
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	query := "UPDATE requirements SET "
	args := []any{id}
	for i, col := range cols {
		if i > 0 {
			query += ", "
		}
		query += col + " = $" + strconv.Itoa(i+2)
		args = append(args, fields[col])
	}
	query += ", updated_at = now() WHERE id = $1"

	tag, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("update requirement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el requerimiento (hard delete).
func (r *RequirementRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM requirements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete requirement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextSequence devuelve la siguiente secuencia del año. Toma un advisory lock
// transaccional por año para serializar generaciones concurrentes; el constraint
// único sobre requirement_number queda como respaldo.
func (r *RequirementRepo) NextSequence(year int) (int, error) {
	ctx := context.Background()
	yearStr := strconv.Itoa(year)
	_, err := r.q.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext('requirements_seq_' || $1))`, yearStr)
	if err != nil {
		return 0, fmt.Errorf("lock requirement sequence: %w", err)
	}

	// El número tiene formato REQ-<año>-NNNN; la secuencia empieza en la posición 10.
	var next int
	err = r.q.QueryRow(ctx, `
		SELECT COALESCE(MAX(CAST(SUBSTRING(requirement_number FROM 10) AS INTEGER)), 0) + 1
		FROM requirements
		WHERE requirement_number LIKE 'REQ-' || $1 || '-%'`, yearStr).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next requirement sequence: %w", err)
	}
	return next, nil
}
