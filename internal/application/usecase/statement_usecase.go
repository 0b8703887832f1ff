package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// StatementPDFGenerator puerto del generador del estado de cuenta de puntos.
// La implementación (Maroto) vive en infrastructure.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, tenant *entity.Tenant, customer *entity.Customer) ([]byte, error)
}

// StatementUseCase genera el estado de cuenta de puntos de un cliente en PDF.
type StatementUseCase struct {
	tenantRepo   repository.TenantRepository
	customerRepo repository.CustomerRepository
	generator    StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso inyectando sus dependencias.
func NewStatementUseCase(
	tenantRepo repository.TenantRepository,
	customerRepo repository.CustomerRepository,
	generator StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{tenantRepo: tenantRepo, customerRepo: customerRepo, generator: generator}
}

// DownloadStatementPDF recupera tenant y cliente y genera el PDF con el saldo
// y el historial de puntos.
func (uc *StatementUseCase) DownloadStatementPDF(ctx context.Context, tenantID, customerID string) ([]byte, error) {
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(tenantID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateStatementPDF(ctx, tenant, customer)
	if err != nil {
		return nil, fmt.Errorf("generar estado de cuenta: %w", err)
	}
	return pdf, nil
}
