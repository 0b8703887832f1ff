package dto

import "time"

// CreateStaffRequest entrada para crear un usuario de staff (password en texto,
// la credencial vive en el servicio de identidad).
type CreateStaffRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=Admin Gerente Cajero"`
}

// UserResponse salida de un usuario de staff.
type UserResponse struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	Initials  string     `json:"initials"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// LoginRequest entrada para login de staff.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
