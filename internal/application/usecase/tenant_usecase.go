package usecase

import (
	"time"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// TenantUseCase aplica reglas de negocio para tenants (perfil propio y super-admin).
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso con el puerto de persistencia.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// GetByID obtiene un tenant por ID. Retorna domain.ErrNotFound si no existe.
func (uc *TenantUseCase) GetByID(id string) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return entityToTenantResponse(tenant), nil
}

// Update actualiza nombre, logo y datos de facturación del tenant.
func (uc *TenantUseCase) Update(id string, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		tenant.Name = in.Name
	}
	if in.LogoURL != "" {
		tenant.LogoURL = in.LogoURL
	}
	if in.Billing != nil {
		tenant.Billing = *in.Billing
	}
	tenant.UpdatedAt = time.Now()
	if err := uc.repo.Update(tenant); err != nil {
		return nil, err
	}
	return entityToTenantResponse(tenant), nil
}

// List lista tenants con paginación (super-admin).
func (uc *TenantUseCase) List(limit, offset int) (*dto.TenantListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *entityToTenantResponse(t))
	}
	return &dto.TenantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia estado y/o plan de un tenant (super-admin). Valida los
// valores contra los enumerados del dominio.
func (uc *TenantUseCase) UpdateStatus(id string, in dto.UpdateTenantStatusRequest) error {
	if in.Status == "" && in.Plan == "" {
		return domain.ErrInvalidInput
	}
	if in.Status != "" && !entity.ValidTenantStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	if in.Plan != "" && !entity.ValidPlan(in.Plan) {
		return domain.ErrInvalidInput
	}
	tenant, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tenant == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, in.Status, in.Plan)
}

func entityToTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	return &dto.TenantResponse{
		ID:         t.ID,
		Name:       t.Name,
		OwnerEmail: t.OwnerEmail,
		Plan:       t.Plan,
		Status:     t.Status,
		TrialEnds:  t.TrialEnds,
		LogoURL:    t.LogoURL,
		Survey:     t.Survey,
		Billing:    t.Billing,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
