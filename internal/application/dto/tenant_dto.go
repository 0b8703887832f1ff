package dto

import (
	"time"

	"github.com/jhoicas/fideliza-api/internal/domain/entity"
)

// UpdateTenantRequest entrada para actualizar el perfil del tenant.
type UpdateTenantRequest struct {
	Name    string              `json:"name" validate:"omitempty,min=1,max=200"`
	LogoURL string              `json:"logo_url" validate:"omitempty,url"`
	Billing *entity.BillingInfo `json:"billing_info"`
}

// UpdateTenantStatusRequest entrada del super-admin para cambiar estado/plan.
type UpdateTenantStatusRequest struct {
	Status string `json:"status" validate:"omitempty,oneof=Prueba Activo Cancelado Suspendido"`
	Plan   string `json:"plan" validate:"omitempty,oneof=Esencial Crecimiento Empresarial"`
}

// TenantResponse salida de un tenant.
type TenantResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	OwnerEmail string             `json:"owner_email"`
	Plan       string             `json:"plan"`
	Status     string             `json:"status"`
	TrialEnds  time.Time          `json:"trial_ends"`
	LogoURL    string             `json:"logo_url,omitempty"`
	Survey     entity.Survey      `json:"survey"`
	Billing    entity.BillingInfo `json:"billing_info"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// TenantListResponse listado paginado de tenants (super-admin).
type TenantListResponse struct {
	Items []TenantResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
