package dto

import (
	"time"

	"github.com/jhoicas/fideliza-api/internal/domain/entity"
)

// CreateProgramRequest entrada para crear un programa de lealtad.
type CreateProgramRequest struct {
	Name        string                `json:"name" validate:"required,min=1,max=200"`
	Type        string                `json:"type" validate:"required,oneof=Puntos Sellos Cashback"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	Rules       *entity.ProgramRules  `json:"rules"`
	Design      *entity.ProgramDesign `json:"design"`
}

// UpdateProgramRequest entrada para actualizar un programa.
type UpdateProgramRequest struct {
	Name        string                `json:"name" validate:"omitempty,min=1,max=200"`
	Status      string                `json:"status" validate:"omitempty,oneof=Activo Inactivo"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	Rules       *entity.ProgramRules  `json:"rules"`
	Design      *entity.ProgramDesign `json:"design"`
}

// ProgramResponse salida de un programa.
type ProgramResponse struct {
	ID          string               `json:"id"`
	TenantID    string               `json:"tenant_id"`
	Name        string               `json:"name"`
	Type        string               `json:"type"`
	Status      string               `json:"status"`
	Members     int                  `json:"members"`
	Description string               `json:"description,omitempty"`
	Rules       entity.ProgramRules  `json:"rules"`
	Design      entity.ProgramDesign `json:"design"`
	CreatedAt   time.Time            `json:"created_at"`
}
