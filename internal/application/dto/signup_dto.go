package dto

// StagingSignupRequest entrada del formulario de registro del negocio.
// Se guarda keyed por el uid pre-creado, antes de confirmar la identidad.
type StagingSignupRequest struct {
	UID            string `json:"uid" validate:"required"`
	BusinessName   string `json:"business_name" validate:"omitempty,max=200"`
	Industry       string `json:"industry" validate:"omitempty,max=100"`
	BusinessSize   string `json:"business_size" validate:"omitempty,max=50"`
	Goals          string `json:"goals" validate:"omitempty,max=500"`
	BillingAddress string `json:"billing_address" validate:"omitempty,max=300"`
	City           string `json:"city" validate:"omitempty,max=100"`
	Country        string `json:"country" validate:"omitempty,max=100"`
	TaxID          string `json:"tax_id" validate:"omitempty,max=50"`
}

// IdentityConfirmedEvent payload del webhook del servicio de identidad:
// se dispara una vez por identidad confirmada.
type IdentityConfirmedEvent struct {
	UID   string `json:"uid" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// RegisterCustomerRequest entrada del registro público de clientes finales,
// scoped a {tenantId, programId} por la URL.
type RegisterCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Cedula   string `json:"cedula" validate:"omitempty,max=30"`
}

// RegisterCustomerResponse salida del registro público.
type RegisterCustomerResponse struct {
	UID string `json:"uid"`
}
