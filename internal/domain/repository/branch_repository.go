package repository

import "github.com/jhoicas/fideliza-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(tenantID, id string) (*entity.Branch, error)
	ListByTenant(tenantID string) ([]*entity.Branch, error)
	Update(branch *entity.Branch) error
	Delete(tenantID, id string) error
}
