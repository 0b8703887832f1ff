package ports

import "context"

// IdentityService define el puerto de salida hacia el servicio externo de
// identidades (cuentas email+password). El aprovisionamiento solo necesita
// crear, eliminar y verificar cuentas; el resto del ciclo de vida de la
// identidad es responsabilidad del proveedor.
type IdentityService interface {
	// CreateUser crea una cuenta y devuelve su uid.
	// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
	CreateUser(ctx context.Context, email, password string) (string, error)
	// DeleteUser elimina la cuenta. Usado como compensación cuando el
	// aprovisionamiento falla o la identidad quedó huérfana.
	DeleteUser(ctx context.Context, uid string) error
	// VerifyUser valida email+password y devuelve el uid de la cuenta.
	// Devuelve domain.ErrUnauthorized si las credenciales no son válidas.
	VerifyUser(ctx context.Context, email, password string) (string, error)
}
