package entity

import "time"

// Prioridades de un requerimiento de compra.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// Estados conocidos de un requerimiento. El campo Status es texto libre
// (actualizable vía update parcial, sin grafo de transiciones).
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusOrdered   = "ORDERED"
	StatusPartial   = "PARTIAL"
	StatusReceived  = "RECEIVED"
	StatusCancelled = "CANCELLED"
)

// Requirement representa una solicitud de compra de un producto.
// RequirementNumber tiene formato REQ-<año>-<secuencia de 4 dígitos>;
// la secuencia reinicia cada año calendario.
type Requirement struct {
	ID                string
	RequirementNumber string
	ProductID         string
	QuantityNeeded    int64
	Priority          string
	Status            string
	RequestedBy       string
	Department        string
	Reason            string
	ExpectedDate      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
