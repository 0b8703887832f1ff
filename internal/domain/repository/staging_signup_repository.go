package repository

import "github.com/jhoicas/fideliza-api/internal/domain/entity"

// StagingSignupRepository define el puerto de persistencia para StagingSignup (DIP).
// El registro se consume exactamente una vez: Delete ocurre dentro de la misma
// transacción que crea el grafo del tenant.
type StagingSignupRepository interface {
	Create(signup *entity.StagingSignup) error
	GetByUID(uid string) (*entity.StagingSignup, error)
	Delete(uid string) error
}
