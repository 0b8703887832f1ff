package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/fideliza-api/internal/application/auth"
	"github.com/jhoicas/fideliza-api/internal/application/ports"
	"github.com/jhoicas/fideliza-api/internal/application/provisioning"
	"github.com/jhoicas/fideliza-api/internal/application/registration"
	"github.com/jhoicas/fideliza-api/internal/application/usecase"
	infraai "github.com/jhoicas/fideliza-api/internal/infrastructure/ai"
	infraidentity "github.com/jhoicas/fideliza-api/internal/infrastructure/identity"
	inframail "github.com/jhoicas/fideliza-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/fideliza-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fideliza-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fideliza-api/internal/interfaces/http"
	"github.com/jhoicas/fideliza-api/pkg/config"
	"github.com/jhoicas/fideliza-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	programRepo := postgres.NewProgramRepository(pool)
	userRepo := postgres.NewTenantUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	rewardRepo := postgres.NewRewardRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	stagingRepo := postgres.NewStagingSignupRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Servicio de identidad: externo por HTTP en staging/producción, almacén
	// local en PostgreSQL si IDENTITY_BASE_URL no está definido (development).
	var identitySvc ports.IdentityService
	if cfg.Identity.BaseURL != "" {
		identitySvc = infraidentity.NewHTTPClient(cfg.Identity.BaseURL, cfg.Identity.APIKey)
	} else {
		identitySvc = infraidentity.NewLocalStore(pool)
		log.Info().Msg("identidad: usando almacén local en PostgreSQL")
	}

	// Correo de bienvenida — opcional, nil si SMTP_HOST no está configurado.
	var mailer ports.MailSender
	if cfg.SMTP.Host != "" {
		mailer = inframail.NewGomailSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	}

	graphWriter := provisioning.NewGraphWriter(txRunner)
	trigger := provisioning.NewTrigger(
		stagingRepo, graphWriter, identitySvc, mailer,
		provisioning.TriggerConfig{IsDemoEmail: cfg.Provisioning.IsDemoEmail},
		log,
	)

	registrationUC := registration.NewUseCase(tenantRepo, programRepo, identitySvc, txRunner, log)
	stagingUC := usecase.NewStagingUseCase(stagingRepo)
	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	programUC := usecase.NewProgramUseCase(programRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	rewardUC := usecase.NewRewardUseCase(rewardRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	staffUC := usecase.NewStaffUseCase(userRepo, identitySvc)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	marketingUC := usecase.NewMarketingUseCase(anthropicSvc)

	// PDF: estado de cuenta de puntos del cliente
	statementGenerator := infrapdf.NewMarotoStatementGenerator()
	statementUC := usecase.NewStatementUseCase(tenantRepo, customerRepo, statementGenerator)

	authUC := auth.NewAuthUseCase(userRepo, identitySvc, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fideliza API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		StagingUC:      stagingUC,
		Trigger:        trigger,
		RegistrationUC: registrationUC,
		TenantUC:       tenantUC,
		ProgramUC:      programUC,
		CustomerUC:     customerUC,
		StatementUC:    statementUC,
		RewardUC:       rewardUC,
		BranchUC:       branchUC,
		StaffUC:        staffUC,
		MarketingUC:    marketingUC,
		JWTSecret:      cfg.JWT.Secret,
		WebhookSecret:  cfg.Provisioning.WebhookSecret,
		AdminAPIKey:    cfg.Admin.APIKey,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
