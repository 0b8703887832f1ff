package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// RewardUseCase aplica reglas de negocio para recompensas.
type RewardUseCase struct {
	repo repository.RewardRepository
}

// NewRewardUseCase construye el caso de uso con el puerto de persistencia.
func NewRewardUseCase(repo repository.RewardRepository) *RewardUseCase {
	return &RewardUseCase{repo: repo}
}

// Create crea una recompensa para el tenant.
func (uc *RewardUseCase) Create(tenantID string, in dto.CreateRewardRequest) (*dto.RewardResponse, error) {
	if in.Name == "" || in.PointsCost <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	reward := &entity.Reward{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        in.Name,
		Description: in.Description,
		PointsCost:  in.PointsCost,
		Value:       in.Value,
		Status:      entity.RewardActiva,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(reward); err != nil {
		return nil, err
	}
	return entityToRewardResponse(reward), nil
}

// GetByID obtiene una recompensa del tenant.
func (uc *RewardUseCase) GetByID(tenantID, id string) (*dto.RewardResponse, error) {
	reward, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if reward == nil {
		return nil, nil
	}
	return entityToRewardResponse(reward), nil
}

// ListByTenant lista las recompensas del tenant.
func (uc *RewardUseCase) ListByTenant(tenantID string) ([]dto.RewardResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RewardResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *entityToRewardResponse(r))
	}
	return items, nil
}

// Delete elimina una recompensa del tenant.
func (uc *RewardUseCase) Delete(tenantID, id string) error {
	reward, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if reward == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}

func entityToRewardResponse(r *entity.Reward) *dto.RewardResponse {
	if r == nil {
		return nil
	}
	return &dto.RewardResponse{
		ID:          r.ID,
		TenantID:    r.TenantID,
		Name:        r.Name,
		Description: r.Description,
		PointsCost:  r.PointsCost,
		Value:       r.Value,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}
