package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/fideliza-api/internal/application/auth"
	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/ports"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// StaffUseCase administra los usuarios de staff de un tenant. La creación sigue
// el mismo flujo bifásico del registro público: primero la identidad, después
// el TenantUser.
type StaffUseCase struct {
	repo     repository.TenantUserRepository
	identity ports.IdentityService
}

// NewStaffUseCase construye el caso de uso de staff.
func NewStaffUseCase(repo repository.TenantUserRepository, identity ports.IdentityService) *StaffUseCase {
	return &StaffUseCase{repo: repo, identity: identity}
}

// Create crea la identidad y el TenantUser del nuevo miembro de staff.
// Devuelve domain.ErrEmailAlreadyExists si el email ya tiene cuenta.
func (uc *StaffUseCase) Create(ctx context.Context, tenantID string, in dto.CreateStaffRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	uid, err := uc.identity.CreateUser(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.TenantUser{
		ID:        uid,
		TenantID:  tenantID,
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Status:    entity.UserActivo,
		Initials:  entity.Initials(in.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ListByTenant lista los usuarios de staff del tenant.
func (uc *StaffUseCase) ListByTenant(tenantID string, limit, offset int) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// Delete elimina un usuario de staff y su identidad. El dueño del tenant
// (TenantUser cuyo ID coincide con el tenant) no puede eliminarse.
func (uc *StaffUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if id == tenantID {
		return domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(tenantID, id); err != nil {
		return err
	}
	// Identidad después del registro: si falla queda una cuenta sin perfil,
	// misma brecha conocida del flujo bifásico.
	return uc.identity.DeleteUser(ctx, id)
}
