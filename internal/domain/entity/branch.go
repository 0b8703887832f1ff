package entity

import "time"

// Branch representa una sucursal física de un Tenant.
type Branch struct {
	ID        string
	TenantID  string
	Name      string
	Address   string
	City      string
	Phone     string
	Status    string // Activa, Inactiva
	CreatedAt time.Time
	UpdatedAt time.Time
}
