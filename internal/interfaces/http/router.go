package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fideliza-api/internal/application/auth"
	"github.com/jhoicas/fideliza-api/internal/application/provisioning"
	"github.com/jhoicas/fideliza-api/internal/application/registration"
	"github.com/jhoicas/fideliza-api/internal/application/usecase"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	StagingUC      *usecase.StagingUseCase
	Trigger        *provisioning.Trigger
	RegistrationUC *registration.UseCase
	TenantUC       *usecase.TenantUseCase
	ProgramUC      *usecase.ProgramUseCase
	CustomerUC     *usecase.CustomerUseCase
	StatementUC    *usecase.StatementUseCase
	RewardUC       *usecase.RewardUseCase
	BranchUC       *usecase.BranchUseCase
	StaffUC        *usecase.StaffUseCase
	MarketingUC    *usecase.MarketingUseCase
	JWTSecret      string
	WebhookSecret  string
	AdminAPIKey    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api", MetricsMiddleware())

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Alta del negocio (público) y webhook de identidad (secreto compartido)
	signupHandler := NewSignupHandler(deps.StagingUC, deps.Trigger)
	api.Post("/signup/staging", signupHandler.CreateStaging)
	api.Post("/provisioning/identity-confirmed",
		WebhookSecretMiddleware(deps.WebhookSecret), signupHandler.IdentityConfirmed)

	// Registro público de clientes finales
	registrationHandler := NewRegistrationHandler(deps.RegistrationUC)
	api.Post("/public/tenants/:tenantId/programs/:programId/register", registrationHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tenant propio (protegido; actualizar solo Admin)
	tenantHandler := NewTenantHandler(deps.TenantUC)
	protected.Get("/tenant", tenantHandler.GetMe)
	protected.Put("/tenant", RequireRole(entity.RoleAdmin), tenantHandler.UpdateMe)

	// Programas (protegido; escribir Admin o Gerente)
	programs := protected.Group("/programs")
	programHandler := NewProgramHandler(deps.ProgramUC)
	programs.Get("/", programHandler.List)
	programs.Get("/:id", programHandler.GetByID)
	programs.Post("/", RequireRole(entity.RoleAdmin, entity.RoleGerente), programHandler.Create)
	programs.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleGerente), programHandler.Update)
	programs.Delete("/:id", RequireRole(entity.RoleAdmin), programHandler.Delete)

	// Clientes (protegido; cualquier rol del staff)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.StatementUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/search", customerHandler.Search)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/:id/points", customerHandler.AdjustPoints)
	customers.Get("/:id/statement.pdf", customerHandler.DownloadStatement)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleGerente), customerHandler.Delete)

	// Premios (protegido; escribir Admin o Gerente)
	rewards := protected.Group("/rewards")
	rewardHandler := NewRewardHandler(deps.RewardUC)
	rewards.Get("/", rewardHandler.List)
	rewards.Get("/:id", rewardHandler.GetByID)
	rewards.Post("/", RequireRole(entity.RoleAdmin, entity.RoleGerente), rewardHandler.Create)
	rewards.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleGerente), rewardHandler.Delete)

	// Sucursales (protegido; escribir Admin o Gerente)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Post("/", RequireRole(entity.RoleAdmin, entity.RoleGerente), branchHandler.Create)
	branches.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleGerente), branchHandler.Delete)

	// Staff (protegido, solo Admin)
	staff := protected.Group("/staff", RequireRole(entity.RoleAdmin))
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Get("/", staffHandler.List)
	staff.Post("/", staffHandler.Create)
	staff.Delete("/:id", staffHandler.Delete)

	// Marketing IA (protegido; Admin o Gerente)
	marketing := protected.Group("/marketing", RequireRole(entity.RoleAdmin, entity.RoleGerente))
	marketingHandler := NewMarketingHandler(deps.MarketingUC)
	marketing.Post("/generate-copy", marketingHandler.GenerateCopy)

	// Supervisión de plataforma (X-Admin-Key)
	admin := api.Group("/admin", AdminKeyMiddleware(deps.AdminAPIKey))
	adminHandler := NewAdminHandler(deps.TenantUC)
	admin.Get("/tenants", adminHandler.ListTenants)
	admin.Get("/tenants/:id", adminHandler.GetTenant)
	admin.Patch("/tenants/:id/status", adminHandler.UpdateTenantStatus)
}
