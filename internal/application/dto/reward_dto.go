package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRewardRequest entrada para crear una recompensa.
type CreateRewardRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	PointsCost  int             `json:"points_cost" validate:"required,min=1"`
	Value       decimal.Decimal `json:"value"`
}

// RewardResponse salida de una recompensa.
type RewardResponse struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	PointsCost  int             `json:"points_cost"`
	Value       decimal.Decimal `json:"value"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
