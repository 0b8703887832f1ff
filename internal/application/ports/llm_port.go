package ports

import (
	"context"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
)

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación solo
// conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateMarketingCopy redacta texto de marketing (asunto, cuerpo y mensaje
	// push) para una campaña del programa de lealtad del tenant.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateMarketingCopy(ctx context.Context, in dto.MarketingCopyRequest) (*dto.MarketingCopyResponse, error)
}
