package dto

import "time"

// CreateRequirementRequest entrada para crear un requerimiento.
// RequirementNumber se genera en el servidor (REQ-<año>-<secuencia>).
type CreateRequirementRequest struct {
	ProductID      string     `json:"product_id"`
	QuantityNeeded int64      `json:"quantity_needed"`
	Priority       string     `json:"priority"`
	RequestedBy    string     `json:"requested_by"`
	Department     string     `json:"department"`
	Reason         string     `json:"reason"`
	ExpectedDate   *time.Time `json:"expected_date"`
}

// CreateRequirementResponse confirma la creación con el número asignado.
type CreateRequirementResponse struct {
	ID                string `json:"id"`
	RequirementNumber string `json:"requirement_number"`
	Message           string `json:"message"`
}

// RequirementResponse salida de un requerimiento con datos del producto.
type RequirementResponse struct {
	ID                string     `json:"id"`
	RequirementNumber string     `json:"requirement_number"`
	ProductID         string     `json:"product_id"`
	SKU               string     `json:"sku"`
	ProductName       string     `json:"product_name"`
	SupplierName      string     `json:"supplier_name,omitempty"`
	QuantityNeeded    int64      `json:"quantity_needed"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	RequestedBy       string     `json:"requested_by,omitempty"`
	Department        string     `json:"department,omitempty"`
	Reason            string     `json:"reason,omitempty"`
	ExpectedDate      *time.Time `json:"expected_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ListRequirementsQuery filtros de GET /api/requirements.
type ListRequirementsQuery struct {
	Status   string `query:"status"`
	Priority string `query:"priority"`
}
