package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
)

// WebhookSecretMiddleware protege el webhook de identidad con un secreto
// compartido en el header X-Webhook-Secret. Comparación en tiempo constante.
func WebhookSecretMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "WEBHOOK_UNCONFIGURED", Message: "webhook de aprovisionamiento no configurado"})
		}
		got := c.Get("X-Webhook-Secret")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "secreto de webhook inválido"})
		}
		return c.Next()
	}
}

// AdminKeyMiddleware protege las rutas de supervisión de plataforma con una
// API key estática en el header X-Admin-Key.
func AdminKeyMiddleware(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "ADMIN_UNCONFIGURED", Message: "API key de administración no configurada"})
		}
		got := c.Get("X-Admin-Key")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "API key inválida"})
		}
		return c.Next()
	}
}
