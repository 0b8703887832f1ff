package dto

import (
	"time"

	"github.com/jhoicas/fideliza-api/internal/domain/entity"
)

// CreateCustomerRequest entrada para crear un cliente desde el panel del tenant.
type CreateCustomerRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"omitempty,max=30"`
	Cedula string `json:"cedula" validate:"omitempty,max=30"`
}

// AdjustPointsRequest entrada para acreditar o debitar puntos.
// Points puede ser negativo (canje); Description alimenta el historial.
type AdjustPointsRequest struct {
	Points      int    `json:"points" validate:"required"`
	Description string `json:"description" validate:"required,min=1,max=300"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string                `json:"id"`
	TenantID  string                `json:"tenant_id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Phone     string                `json:"phone,omitempty"`
	Tier      string                `json:"tier"`
	Points    int                   `json:"points"`
	Segment   string                `json:"segment"`
	Joined    time.Time             `json:"joined"`
	Initials  string                `json:"initials"`
	History   []entity.HistoryEntry `json:"history"`
	CreatedAt time.Time             `json:"created_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
