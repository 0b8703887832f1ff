package provisioning

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// Mode indica si el aprovisionamiento incluye datos de demostración.
// Reemplaza la lista de emails embebida en la lógica: quien invoca decide el
// modo a partir de configuración externa.
type Mode string

const (
	ModeStandard   Mode = "Standard"
	ModeDemoSeeded Mode = "DemoSeeded"
)

// ProvisionInput datos para crear el grafo inicial de un tenant.
// TenantID es el uid de la identidad del dueño.
type ProvisionInput struct {
	TenantID     string
	BusinessName string
	OwnerEmail   string
	Survey       entity.Survey
	Billing      entity.BillingInfo
	Mode         Mode
}

// GraphWriter construye el Tenant, su Program por defecto y su TenantUser Admin
// como una unidad atómica, más datos de demostración cuando Mode es DemoSeeded.
type GraphWriter struct {
	tx  TxRunner
	now func() time.Time
}

// NewGraphWriter construye el writer con el runner transaccional.
func NewGraphWriter(tx TxRunner) *GraphWriter {
	return &GraphWriter{tx: tx, now: time.Now}
}

// Provision escribe el grafo completo en una sola transacción, incluyendo el
// borrado del registro de staging. Si la transacción falla no queda nada
// parcial y el error se propaga al caller para que compense.
//
// Invariantes:
//   - trialEnds = createdAt + 14 días exactos.
//   - El programa por defecto acumula 10 puntos por 1 unidad de moneda.
//   - Las iniciales del Admin derivan del nombre del negocio.
func (w *GraphWriter) Provision(ctx context.Context, in ProvisionInput) error {
	if in.TenantID == "" || in.OwnerEmail == "" {
		return fmt.Errorf("provisioning: tenant id y owner email son requeridos")
	}
	name := in.BusinessName
	if name == "" {
		name = entity.DefaultBusinessName
	}

	now := w.now()
	tenant := &entity.Tenant{
		ID:         in.TenantID,
		Name:       name,
		OwnerEmail: in.OwnerEmail,
		Plan:       entity.PlanCrecimiento,
		Status:     entity.TenantPrueba,
		TrialEnds:  now.AddDate(0, 0, entity.TrialDays),
		Survey:     in.Survey,
		Billing:    in.Billing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	program := &entity.Program{
		ID:       uuid.New().String(),
		TenantID: in.TenantID,
		Name:     entity.DefaultProgramName,
		Type:     entity.ProgramPuntos,
		Status:   entity.ProgramActivo,
		Members:  0,
		Rules:    entity.DefaultRules(),
		Design: entity.ProgramDesign{
			LogoText:        name,
			BackgroundColor: "#1e293b",
			ForegroundColor: "#ffffff",
			LabelColor:      "#94a3b8",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	admin := &entity.TenantUser{
		ID:        in.TenantID, // la identidad dueña es el Admin
		TenantID:  in.TenantID,
		Name:      name,
		Email:     in.OwnerEmail,
		Role:      entity.RoleAdmin,
		Status:    entity.UserActivo,
		Initials:  entity.Initials(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return w.tx.RunProvisioning(ctx, func(
		tenantRepo repository.TenantRepository,
		programRepo repository.ProgramRepository,
		userRepo repository.TenantUserRepository,
		customerRepo repository.CustomerRepository,
		rewardRepo repository.RewardRepository,
		branchRepo repository.BranchRepository,
		stagingRepo repository.StagingSignupRepository,
	) error {
		if err := tenantRepo.Create(tenant); err != nil {
			return fmt.Errorf("crear tenant: %w", err)
		}
		if err := programRepo.Create(program); err != nil {
			return fmt.Errorf("crear programa por defecto: %w", err)
		}
		if err := userRepo.Create(admin); err != nil {
			return fmt.Errorf("crear usuario admin: %w", err)
		}
		if in.Mode == ModeDemoSeeded {
			if err := seedDemoData(in.TenantID, now, customerRepo, rewardRepo, userRepo, branchRepo); err != nil {
				return fmt.Errorf("sembrar datos demo: %w", err)
			}
		}
		if err := stagingRepo.Delete(in.TenantID); err != nil {
			return fmt.Errorf("eliminar staging: %w", err)
		}
		return nil
	})
}
