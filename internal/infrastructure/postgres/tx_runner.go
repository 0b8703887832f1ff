package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/fideliza-api/internal/application/provisioning"
	"github.com/jhoicas/fideliza-api/internal/application/registration"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// Ensure TxRunner implements provisioning.TxRunner and registration.TxRunner.
var _ provisioning.TxRunner = (*TxRunner)(nil)
var _ registration.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProvisioning inicia una transacción con todos los repos del grafo de un
// tenant y hace Commit o Rollback. Es el batch atómico del aprovisionamiento:
// ningún lector observa un tenant a medio crear.
func (r *TxRunner) RunProvisioning(ctx context.Context, fn func(
	tenantRepo repository.TenantRepository,
	programRepo repository.ProgramRepository,
	userRepo repository.TenantUserRepository,
	customerRepo repository.CustomerRepository,
	rewardRepo repository.RewardRepository,
	branchRepo repository.BranchRepository,
	stagingRepo repository.StagingSignupRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewTenantRepository(tx),
		NewProgramRepository(tx),
		NewTenantUserRepository(tx),
		NewCustomerRepository(tx),
		NewRewardRepository(tx),
		NewBranchRepository(tx),
		NewStagingSignupRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistration inicia una transacción con los repos del registro público
// (perfil del cliente + contador de miembros del programa).
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	programRepo repository.ProgramRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCustomerRepository(tx), NewProgramRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
