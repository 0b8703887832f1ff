package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/usecase"
	"github.com/jhoicas/fideliza-api/internal/domain"
)

// AdminHandler maneja la supervisión de plataforma (protegido por X-Admin-Key).
type AdminHandler struct {
	tenantUC *usecase.TenantUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(tenantUC *usecase.TenantUseCase) *AdminHandler {
	return &AdminHandler{tenantUC: tenantUC}
}

// ListTenants GET /api/admin/tenants?limit=20&offset=0
func (h *AdminHandler) ListTenants(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.tenantUC.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetTenant GET /api/admin/tenants/:id
func (h *AdminHandler) GetTenant(c *fiber.Ctx) error {
	out, err := h.tenantUC.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateTenantStatus PATCH /api/admin/tenants/:id/status
// Suspende, reactiva o cancela un tenant.
func (h *AdminHandler) UpdateTenantStatus(c *fiber.Ctx) error {
	var in dto.UpdateTenantStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.tenantUC.UpdateStatus(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido (Prueba, Activo, Cancelado o Suspendido)"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
