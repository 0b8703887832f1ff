package provisioning

import (
	"context"

	"github.com/jhoicas/fideliza-api/internal/application/ports"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
	"github.com/jhoicas/fideliza-api/pkg/logger"
)

// graphProvisioner es el contrato mínimo que el trigger necesita del writer.
// El uso de interfaz permite sustituirlo en tests.
type graphProvisioner interface {
	Provision(ctx context.Context, in ProvisionInput) error
}

// TriggerConfig opciones del trigger de aprovisionamiento.
type TriggerConfig struct {
	// IsDemoEmail decide si la cuenta recibe datos de demostración (ModeDemoSeeded).
	// Nil equivale a nunca. Viene de configuración externa, nunca de un literal.
	IsDemoEmail func(email string) bool
}

// Trigger reacciona a la confirmación de una identidad nueva y convierte su
// StagingSignup en el grafo completo de un tenant. Semántica fire-and-forget:
// no devuelve nada; los fallos se registran y se compensan eliminando la identidad.
type Trigger struct {
	staging  repository.StagingSignupRepository
	writer   graphProvisioner
	identity ports.IdentityService
	mailer   ports.MailSender // opcional; nil desactiva el correo de bienvenida
	cfg      TriggerConfig
	log      *logger.Logger
}

// NewTrigger construye el trigger de aprovisionamiento.
func NewTrigger(
	staging repository.StagingSignupRepository,
	writer graphProvisioner,
	identity ports.IdentityService,
	mailer ports.MailSender,
	cfg TriggerConfig,
	log *logger.Logger,
) *Trigger {
	return &Trigger{staging: staging, writer: writer, identity: identity, mailer: mailer, cfg: cfg, log: log}
}

// HandleIdentityConfirmed procesa una identidad confirmada {uid, email}.
//
//   - Sin StagingSignup: identidad huérfana. Se elimina la identidad, no se crea
//     tenant. Condición fatal, no reintentable.
//   - Con StagingSignup: se delega al writer; el registro de staging se elimina
//     dentro de la misma transacción que crea el grafo.
//   - Fallo del writer: compensación (se elimina la identidad recién creada) y el
//     staging queda intacto para inspección o reintento manual.
func (t *Trigger) HandleIdentityConfirmed(ctx context.Context, uid, email string) {
	if uid == "" {
		t.log.Error().Msg("provisioning: evento identity-confirmed sin uid")
		return
	}

	signup, err := t.staging.GetByUID(uid)
	if err != nil {
		// Fallo de lectura, no ausencia: no tocar la identidad, el proveedor puede reintentar.
		t.log.Error().Err(err).Str("uid", uid).Msg("provisioning: leer staging")
		return
	}
	if signup == nil {
		orphanedIdentities.Inc()
		t.log.Error().
			Err(domain.ErrOrphanedIdentity).
			Str("uid", uid).
			Str("email", email).
			Msg("provisioning: identidad sin staging, se elimina sin crear tenant")
		if derr := t.identity.DeleteUser(ctx, uid); derr != nil {
			t.log.Error().Err(derr).Str("uid", uid).Msg("provisioning: eliminar identidad huérfana")
		}
		return
	}

	name := signup.BusinessName
	if name == "" {
		name = entity.DefaultBusinessName
	}
	mode := ModeStandard
	if t.cfg.IsDemoEmail != nil && t.cfg.IsDemoEmail(email) {
		mode = ModeDemoSeeded
	}

	in := ProvisionInput{
		TenantID:     uid,
		BusinessName: name,
		OwnerEmail:   email,
		Survey: entity.Survey{
			Industry:     signup.Industry,
			BusinessSize: signup.BusinessSize,
			Goals:        signup.Goals,
		},
		Billing: entity.BillingInfo{
			Address: signup.BillingAddress,
			City:    signup.City,
			Country: signup.Country,
			TaxID:   signup.TaxID,
		},
		Mode: mode,
	}

	if err := t.writer.Provision(ctx, in); err != nil {
		provisioningFailures.Inc()
		t.log.Error().Err(err).Str("uid", uid).Str("email", email).
			Msg("provisioning: escritura del grafo fallida, compensando identidad")
		if derr := t.identity.DeleteUser(ctx, uid); derr != nil {
			t.log.Error().Err(derr).Str("uid", uid).
				Msg("provisioning: compensación fallida, identidad posiblemente huérfana")
		}
		return
	}

	tenantsProvisioned.Inc()
	t.log.Info().Str("uid", uid).Str("tenant", name).Str("mode", string(mode)).
		Msg("provisioning: tenant creado")

	if t.mailer != nil {
		if err := t.mailer.SendWelcome(email, name); err != nil {
			t.log.Warn().Err(err).Str("email", email).Msg("provisioning: correo de bienvenida")
		}
	}
}
