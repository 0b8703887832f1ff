package provisioning

import (
	"context"

	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye todos los
// repositorios del grafo de un tenant. El grafo completo (tenant, programa por
// defecto, usuario Admin, datos demo opcionales y el borrado del staging) se
// escribe como una sola unidad: o existe todo o no existe nada.
type TxRunner interface {
	RunProvisioning(ctx context.Context, fn func(
		tenantRepo repository.TenantRepository,
		programRepo repository.ProgramRepository,
		userRepo repository.TenantUserRepository,
		customerRepo repository.CustomerRepository,
		rewardRepo repository.RewardRepository,
		branchRepo repository.BranchRepository,
		stagingRepo repository.StagingSignupRepository,
	) error) error
}
