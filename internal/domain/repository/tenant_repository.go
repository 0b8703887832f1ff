package repository

import "github.com/jhoicas/fideliza-api/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant (DIP).
// La implementación vive en infrastructure.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
	UpdateStatus(id, status, plan string) error
	List(limit, offset int) ([]*entity.Tenant, error)
	Delete(id string) error
}
