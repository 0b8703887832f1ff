package repository

import (
	"time"

	"github.com/jhoicas/fideliza-api/internal/domain/entity"
)

// TenantUserRepository define el puerto de persistencia para TenantUser (DIP).
type TenantUserRepository interface {
	Create(user *entity.TenantUser) error
	GetByID(tenantID, id string) (*entity.TenantUser, error)
	// GetByUID busca el usuario por uid de identidad en todos los tenants (login).
	GetByUID(uid string) (*entity.TenantUser, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.TenantUser, error)
	Update(user *entity.TenantUser) error
	UpdateLastLogin(tenantID, id string, at time.Time) error
	Delete(tenantID, id string) error
}
