package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// ProgramUseCase aplica reglas de negocio para programas de lealtad.
type ProgramUseCase struct {
	repo repository.ProgramRepository
}

// NewProgramUseCase construye el caso de uso con el puerto de persistencia.
func NewProgramUseCase(repo repository.ProgramRepository) *ProgramUseCase {
	return &ProgramUseCase{repo: repo}
}

// Create crea un programa adicional para el tenant. Si no se dan reglas aplica
// las por defecto del tipo Puntos.
func (uc *ProgramUseCase) Create(tenantID string, in dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	if in.Name == "" || !entity.ValidProgramType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	program := &entity.Program{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        in.Name,
		Type:        in.Type,
		Status:      entity.ProgramActivo,
		Description: in.Description,
		Rules:       entity.DefaultRules(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Rules != nil {
		program.Rules = *in.Rules
	}
	if in.Design != nil {
		program.Design = *in.Design
	}
	if err := uc.repo.Create(program); err != nil {
		return nil, err
	}
	return entityToProgramResponse(program), nil
}

// GetByID obtiene un programa del tenant.
func (uc *ProgramUseCase) GetByID(tenantID, id string) (*dto.ProgramResponse, error) {
	program, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, nil
	}
	return entityToProgramResponse(program), nil
}

// ListByTenant lista los programas del tenant.
func (uc *ProgramUseCase) ListByTenant(tenantID string) ([]dto.ProgramResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProgramResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToProgramResponse(p))
	}
	return items, nil
}

// Update actualiza nombre, estado, descripción, reglas y diseño de un programa.
func (uc *ProgramUseCase) Update(tenantID, id string, in dto.UpdateProgramRequest) (*dto.ProgramResponse, error) {
	program, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		program.Name = in.Name
	}
	if in.Status != "" {
		program.Status = in.Status
	}
	if in.Description != "" {
		program.Description = in.Description
	}
	if in.Rules != nil {
		program.Rules = *in.Rules
	}
	if in.Design != nil {
		program.Design = *in.Design
	}
	program.UpdatedAt = time.Now()
	if err := uc.repo.Update(program); err != nil {
		return nil, err
	}
	return entityToProgramResponse(program), nil
}

// Delete elimina un programa del tenant.
func (uc *ProgramUseCase) Delete(tenantID, id string) error {
	program, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if program == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}

func entityToProgramResponse(p *entity.Program) *dto.ProgramResponse {
	if p == nil {
		return nil
	}
	return &dto.ProgramResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		Name:        p.Name,
		Type:        p.Type,
		Status:      p.Status,
		Members:     p.Members,
		Description: p.Description,
		Rules:       p.Rules,
		Design:      p.Design,
		CreatedAt:   p.CreatedAt,
	}
}
