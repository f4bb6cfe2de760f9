package entity

import "time"

// Supplier representa un proveedor (soft delete vía IsActive).
type Supplier struct {
	ID          string
	Code        string // código único
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	City        string
	Country     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
