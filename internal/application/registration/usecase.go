package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/ports"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
	"github.com/jhoicas/fideliza-api/pkg/logger"
)

// minPasswordLen longitud mínima de la contraseña del cliente final.
const minPasswordLen = 8

// TxRunner ejecuta la escritura del cliente y el incremento del contador de
// miembros del programa dentro de una misma transacción.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		programRepo repository.ProgramRepository,
	) error) error
}

// UseCase registro público de clientes finales contra un programa de un tenant.
//
// El flujo es bifásico: primero se crea la identidad en el servicio externo y
// después se escribe el perfil del cliente. Si la segunda fase falla queda una
// identidad sin perfil; esa brecha se registra pero no se compensa aquí (el
// origen no define recuperación para este caso).
type UseCase struct {
	tenantRepo  repository.TenantRepository
	programRepo repository.ProgramRepository
	identity    ports.IdentityService
	tx          TxRunner
	log         *logger.Logger
	now         func() time.Time
}

// NewUseCase construye el caso de uso de registro público.
func NewUseCase(
	tenantRepo repository.TenantRepository,
	programRepo repository.ProgramRepository,
	identity ports.IdentityService,
	tx TxRunner,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		tenantRepo:  tenantRepo,
		programRepo: programRepo,
		identity:    identity,
		tx:          tx,
		log:         log,
		now:         time.Now,
	}
}

// Register crea la identidad del cliente y su perfil bajo el tenant indicado.
// Devuelve domain.ErrEmailAlreadyExists si el email ya tiene cuenta y
// domain.ErrNotFound si el tenant o el programa no existen.
func (uc *UseCase) Register(ctx context.Context, tenantID, programID string, in dto.RegisterCustomerRequest) (*dto.RegisterCustomerResponse, error) {
	if in.Name == "" || in.Email == "" || len(in.Password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}

	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	program, err := uc.programRepo.GetByID(tenantID, programID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, domain.ErrNotFound
	}

	uid, err := uc.identity.CreateUser(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err // ErrEmailAlreadyExists pasa distinguible al handler
	}

	now := uc.now()
	customer := &entity.Customer{
		ID:        uid,
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

	err = uc.tx.RunRegistration(ctx, func(
		customerRepo repository.CustomerRepository,
		programRepo repository.ProgramRepository,
	) error {
		if err := customerRepo.Create(customer); err != nil {
			return err
		}
		return programRepo.IncrementMembers(tenantID, programID)
	})
	if err != nil {
		// Identidad creada sin perfil: brecha conocida del flujo bifásico.
		uc.log.Error().Err(err).Str("uid", uid).Str("tenant_id", tenantID).
			Msg("registro: identidad creada pero el perfil no se escribió")
		return nil, fmt.Errorf("escribir perfil del cliente: %w", err)
	}

	return &dto.RegisterCustomerResponse{UID: uid}, nil
}
