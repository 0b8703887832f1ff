package usecase

import (
	"time"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// StagingUseCase guarda el registro provisional del formulario de signup,
// keyed por el uid pre-creado de la identidad.
type StagingUseCase struct {
	repo repository.StagingSignupRepository
}

// NewStagingUseCase construye el caso de uso de staging.
func NewStagingUseCase(repo repository.StagingSignupRepository) *StagingUseCase {
	return &StagingUseCase{repo: repo}
}

// Create persiste el StagingSignup. Devuelve domain.ErrDuplicate si el uid ya
// tiene un registro pendiente.
func (uc *StagingUseCase) Create(in dto.StagingSignupRequest) error {
	if in.UID == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUID(in.UID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	return uc.repo.Create(&entity.StagingSignup{
		UID:            in.UID,
		BusinessName:   in.BusinessName,
		Industry:       in.Industry,
		BusinessSize:   in.BusinessSize,
		Goals:          in.Goals,
		BillingAddress: in.BillingAddress,
		City:           in.City,
		Country:        in.Country,
		TaxID:          in.TaxID,
		CreatedAt:      time.Now(),
	})
}
