package repository

import "github.com/jhoicas/fideliza-api/internal/domain/entity"

// RewardRepository define el puerto de persistencia para Reward (DIP).
type RewardRepository interface {
	Create(reward *entity.Reward) error
	GetByID(tenantID, id string) (*entity.Reward, error)
	ListByTenant(tenantID string) ([]*entity.Reward, error)
	Update(reward *entity.Reward) error
	Delete(tenantID, id string) error
}
