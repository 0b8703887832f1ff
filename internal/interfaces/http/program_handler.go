package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/usecase"
	"github.com/jhoicas/fideliza-api/internal/domain"
)

// ProgramHandler maneja las peticiones HTTP de programas de lealtad (protegido).
type ProgramHandler struct {
	uc *usecase.ProgramUseCase
}

// NewProgramHandler construye el handler.
func NewProgramHandler(uc *usecase.ProgramUseCase) *ProgramHandler {
	return &ProgramHandler{uc: uc}
}

// Create godoc
// @Summary      Crear programa de lealtad
// @Tags         programs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProgramRequest  true  "Datos del programa"
// @Success      201   {object}  dto.ProgramResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/programs [post]
func (h *ProgramHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateProgramRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(tenantID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y type (Puntos, Sellos o Cashback) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener programa por ID
// @Tags         programs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del programa"
// @Success      200  {object}  dto.ProgramResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/programs/{id} [get]
func (h *ProgramHandler) GetByID(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	out, err := h.uc.GetByID(tenantID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "programa no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar programas del tenant
// @Tags         programs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProgramResponse
// @Router       /api/programs [get]
func (h *ProgramHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.ListByTenant(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar programa (reglas, diseño)
// @Tags         programs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del programa"
// @Param        body  body  dto.UpdateProgramRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProgramResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/programs/{id} [put]
func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	var in dto.UpdateProgramRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(tenantID, id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "programa no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar programa
// @Tags         programs
// @Security     Bearer
// @Param        id   path  string  true  "ID del programa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/programs/{id} [delete]
func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if err := h.uc.Delete(tenantID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "programa no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
