package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/usecase"
)

// MarketingHandler maneja la generación de textos de campaña asistida por IA.
type MarketingHandler struct {
	uc *usecase.MarketingUseCase
}

// NewMarketingHandler construye el handler.
func NewMarketingHandler(uc *usecase.MarketingUseCase) *MarketingHandler {
	return &MarketingHandler{uc: uc}
}

// GenerateCopy godoc
// @Summary      Generar texto de campaña con IA
// @Description  Genera asunto, cuerpo de email y mensaje push para una campaña
//
//	de lealtad. Timeout interno de 15 s.
//
// @Tags         marketing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarketingCopyRequest  true  "goal (obligatorio), business_name, program_name, tone"
// @Success      200   {object}  dto.MarketingCopyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/marketing/generate-copy [post]
func (h *MarketingHandler) GenerateCopy(c *fiber.Ctx) error {
	if GetUserID(c) == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "token inválido",
		})
	}

	var req dto.MarketingCopyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
		})
	}

	result, err := h.uc.GenerateCopy(c.Context(), req)
	if err != nil {
		if isTimeout(err) {
			return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{
				Code: "TIMEOUT", Message: "el servicio de IA tardó demasiado; intenta de nuevo",
			})
		}
		if strings.Contains(err.Error(), "obligatorio") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: err.Error(),
			})
		}
		if strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "AI_UNAVAILABLE", Message: "el servicio de IA no está configurado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(result)
}

// isTimeout detecta errores de timeout/cancelación de contexto en el mensaje de error.
func isTimeout(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "cancelación")
}
