package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// BranchUseCase aplica reglas de negocio para sucursales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso con el puerto de persistencia.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// Create crea una sucursal para el tenant.
func (uc *BranchUseCase) Create(tenantID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		Phone:     in.Phone,
		Status:    "Activa",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return entityToBranchResponse(branch), nil
}

// ListByTenant lista las sucursales del tenant.
func (uc *BranchUseCase) ListByTenant(tenantID string) ([]dto.BranchResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *entityToBranchResponse(b))
	}
	return items, nil
}

// Delete elimina una sucursal del tenant.
func (uc *BranchUseCase) Delete(tenantID, id string) error {
	branch, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}

func entityToBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:        b.ID,
		TenantID:  b.TenantID,
		Name:      b.Name,
		Address:   b.Address,
		City:      b.City,
		Phone:     b.Phone,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}
