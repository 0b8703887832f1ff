package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/provisioning"
	"github.com/jhoicas/fideliza-api/internal/application/usecase"
	"github.com/jhoicas/fideliza-api/internal/domain"
)

// SignupHandler maneja el alta en staging y el webhook de identidad confirmada.
type SignupHandler struct {
	stagingUC *usecase.StagingUseCase
	trigger   *provisioning.Trigger
}

// NewSignupHandler construye el handler.
func NewSignupHandler(stagingUC *usecase.StagingUseCase, trigger *provisioning.Trigger) *SignupHandler {
	return &SignupHandler{stagingUC: stagingUC, trigger: trigger}
}

// CreateStaging godoc
// @Summary      Guardar datos del formulario de registro
// @Description  Persiste los datos del negocio keyed por el uid pre-creado en el
//
//	servicio de identidad, antes de confirmar el correo.
//
// @Tags         signup
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StagingSignupRequest  true  "uid y datos del negocio"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/signup/staging [post]
func (h *SignupHandler) CreateStaging(c *fiber.Ctx) error {
	var in dto.StagingSignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "uid es requerido"})
	}
	if err := h.stagingUC.Create(in); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un registro pendiente para ese uid"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusCreated)
}

// IdentityConfirmed godoc
// @Summary      Webhook: identidad confirmada
// @Description  Dispara el aprovisionamiento atómico del tenant. Responde 204
//
//	siempre que el payload sea válido; el resultado del
//	aprovisionamiento se registra en logs y métricas, no en la
//	respuesta (el emisor del webhook no reintenta por cuerpo).
//
// @Tags         signup
// @Accept       json
// @Param        body  body  dto.IdentityConfirmedEvent  true  "uid y email confirmados"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/provisioning/identity-confirmed [post]
func (h *SignupHandler) IdentityConfirmed(c *fiber.Ctx) error {
	var in dto.IdentityConfirmedEvent
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UID == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "uid y email son requeridos"})
	}
	h.trigger.HandleIdentityConfirmed(c.Context(), in.UID, in.Email)
	return c.SendStatus(fiber.StatusNoContent)
}
