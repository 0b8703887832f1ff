package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/ports"
	"github.com/jhoicas/fideliza-api/internal/domain"
)

// marketingTimeout límite duro para la llamada al modelo; la capa HTTP del
// adaptador tiene además su propio timeout de red.
const marketingTimeout = 15 * time.Second

// MarketingUseCase genera texto de marketing para campañas del programa de
// lealtad usando el puerto LLM.
type MarketingUseCase struct {
	llm ports.LLMService
}

// NewMarketingUseCase construye el caso de uso de marketing.
func NewMarketingUseCase(llm ports.LLMService) *MarketingUseCase {
	return &MarketingUseCase{llm: llm}
}

// GenerateCopy redacta asunto, cuerpo y mensaje push para la campaña.
func (uc *MarketingUseCase) GenerateCopy(ctx context.Context, in dto.MarketingCopyRequest) (*dto.MarketingCopyResponse, error) {
	if in.Goal == "" {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, marketingTimeout)
	defer cancel()
	return uc.llm.GenerateMarketingCopy(ctx, in)
}
