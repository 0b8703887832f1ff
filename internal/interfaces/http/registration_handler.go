package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/registration"
	"github.com/jhoicas/fideliza-api/internal/domain"
)

// RegistrationHandler maneja el auto-registro público de clientes finales.
type RegistrationHandler struct {
	uc *registration.UseCase
}

// NewRegistrationHandler construye el handler.
func NewRegistrationHandler(uc *registration.UseCase) *RegistrationHandler {
	return &RegistrationHandler{uc: uc}
}

// Register godoc
// @Summary      Registro público de cliente final
// @Description  Crea la identidad del cliente y su perfil en el programa de
//
//	lealtad indicado por la URL.
//
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        tenantId   path  string  true  "ID del tenant"
// @Param        programId  path  string  true  "ID del programa"
// @Param        body  body  dto.RegisterCustomerRequest  true  "name, email, password"
// @Success      201   {object}  dto.RegisterCustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/public/tenants/{tenantId}/programs/{programId}/register [post]
func (h *RegistrationHandler) Register(c *fiber.Ctx) error {
	tenantID := c.Params("tenantId")
	programID := c.Params("programId")
	var in dto.RegisterCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), tenantID, programID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y password (mínimo 8 caracteres) son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el negocio o el programa no existe"})
		}
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
