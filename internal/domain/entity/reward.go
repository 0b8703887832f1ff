package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una recompensa.
const (
	RewardActiva   = "Activa"
	RewardInactiva = "Inactiva"
)

// Reward representa una recompensa canjeable por puntos dentro de un Tenant.
type Reward struct {
	ID          string
	TenantID    string
	Name        string
	Description string
	PointsCost  int
	Value       decimal.Decimal // valor comercial de referencia
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
