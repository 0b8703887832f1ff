package repository

import "github.com/jhoicas/fideliza-api/internal/domain/entity"

// ProgramRepository define el puerto de persistencia para Program (DIP).
type ProgramRepository interface {
	Create(program *entity.Program) error
	GetByID(tenantID, id string) (*entity.Program, error)
	ListByTenant(tenantID string) ([]*entity.Program, error)
	Update(program *entity.Program) error
	// IncrementMembers suma uno al contador de miembros del programa.
	IncrementMembers(tenantID, id string) error
	Delete(tenantID, id string) error
}
