package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
	"github.com/jhoicas/fideliza-api/pkg/normalize"
)

// CustomerUseCase aplica reglas de negocio para clientes finales del tenant.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso con el puerto de persistencia.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente desde el panel del tenant (sin identidad asociada).
func (uc *CustomerUseCase) Create(tenantID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Cedula:    in.Cedula,
		Tier:      entity.TierBronce,
		Points:    0,
		Segment:   entity.SegmentNuevo,
		Joined:    now,
		Initials:  entity.Initials(in.Name),
		History:   []entity.HistoryEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return entityToCustomerResponse(customer), nil
}

// GetByID obtiene un cliente del tenant.
func (uc *CustomerUseCase) GetByID(tenantID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return entityToCustomerResponse(customer), nil
}

// ListByTenant lista clientes con paginación.
func (uc *CustomerUseCase) ListByTenant(tenantID string, limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search busca clientes por nombre, insensible a mayúsculas y tildes.
func (uc *CustomerUseCase) Search(tenantID, query string, limit int) ([]dto.CustomerResponse, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	list, err := uc.repo.SearchByName(tenantID, normalize.Fold(query), limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCustomerResponse(c))
	}
	return items, nil
}

// AdjustPoints acredita o debita puntos y anexa la entrada al historial.
// El saldo jamás queda negativo: el guard vive en el repositorio, que aplica el
// delta de forma atómica y devuelve el saldo resultante, así dos ajustes
// concurrentes no se pisan entre sí.
func (uc *CustomerUseCase) AdjustPoints(tenantID, id string, in dto.AdjustPointsRequest) (*dto.CustomerResponse, error) {
	if in.Points == 0 || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	entry := entity.HistoryEntry{
		ID:          uuid.New().String(),
		Date:        time.Now(),
		Description: in.Description,
		Points:      in.Points,
	}
	newPoints, err := uc.repo.AdjustPoints(tenantID, id, in.Points, entry)
	if err != nil {
		return nil, err
	}
	customer.Points = newPoints
	customer.History = append(customer.History, entry)
	return entityToCustomerResponse(customer), nil
}

// Delete elimina un cliente del tenant.
func (uc *CustomerUseCase) Delete(tenantID, id string) error {
	customer, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}

func entityToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	history := c.History
	if history == nil {
		history = []entity.HistoryEntry{}
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Tier:      c.Tier,
		Points:    c.Points,
		Segment:   c.Segment,
		Joined:    c.Joined,
		Initials:  c.Initials,
		History:   history,
		CreatedAt: c.CreatedAt,
	}
}
