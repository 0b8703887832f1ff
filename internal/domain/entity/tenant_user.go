package entity

import "time"

// Roles del staff de un tenant.
const (
	RoleAdmin   = "Admin"
	RoleGerente = "Gerente"
	RoleCajero  = "Cajero"
)

// Estados de un usuario de staff.
const (
	UserActivo   = "Activo"
	UserInactivo = "Inactivo"
)

// TenantUser representa un miembro del staff de un Tenant. Su ID es el uid de
// su identidad; la credencial vive en el servicio de identidad, nunca aquí.
type TenantUser struct {
	ID        string
	TenantID  string
	Name      string
	Email     string
	Role      string
	Status    string
	LastLogin *time.Time
	Initials  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidRole informa si el rol pertenece al conjunto conocido.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleGerente, RoleCajero:
		return true
	}
	return false
}
