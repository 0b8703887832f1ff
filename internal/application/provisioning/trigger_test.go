package provisioning_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fideliza-api/internal/application/provisioning"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/pkg/logger"
)

// buildTrigger arma el trigger con el almacén y los fakes indicados.
func buildTrigger(store *memStore, fail failures, identity *fakeIdentity, mailer *fakeMailer, demoEmails ...string) *provisioning.Trigger {
	tx := &memTxRunner{store: store, fail: fail}
	writer := provisioning.NewGraphWriter(tx)
	cfg := provisioning.TriggerConfig{
		IsDemoEmail: func(email string) bool {
			for _, e := range demoEmails {
				if e == email {
					return true
				}
			}
			return false
		},
	}
	staging := &memStagingRepo{s: store, fail: fail}
	if mailer == nil {
		// nil explícito para no enviar un puntero tipado nulo por la interfaz
		return provisioning.NewTrigger(staging, writer, identity, nil, cfg, logger.NewNop())
	}
	return provisioning.NewTrigger(staging, writer, identity, mailer, cfg, logger.NewNop())
}

// Flujo completo: staging de "Café Luna" + identidad confirmada → grafo del
// tenant creado, staging consumido, identidad intacta y correo de bienvenida.
func TestTrigger_IdentidadConStaging_CreaTenant(t *testing.T) {
	const uid = "uid-cafe-luna"
	store := newMemStore()
	store.stagings[uid] = &entity.StagingSignup{
		UID:          uid,
		BusinessName: "Café Luna",
		Industry:     "Restaurantes y cafés",
		CreatedAt:    time.Now(),
	}
	identity := &fakeIdentity{}
	mailer := &fakeMailer{}
	trigger := buildTrigger(store, nil, identity, mailer)

	trigger.HandleIdentityConfirmed(context.Background(), uid, "dueno@cafeluna.co")

	tenant := store.tenants[uid]
	require.NotNil(t, tenant, "debe crearse el tenant")
	assert.Equal(t, "Café Luna", tenant.Name)
	assert.Equal(t, entity.PlanCrecimiento, tenant.Plan)
	assert.Equal(t, entity.TenantPrueba, tenant.Status)
	assert.Equal(t, "Restaurantes y cafés", tenant.Survey.Industry)

	require.Len(t, store.users, 1)
	assert.Equal(t, entity.RoleAdmin, store.users[0].Role)
	assert.Equal(t, "CL", store.users[0].Initials)

	assert.NotContains(t, store.stagings, uid, "el staging se consume")
	assert.Empty(t, identity.deleted, "la identidad no se toca en el camino feliz")
	assert.Equal(t, []string{"dueno@cafeluna.co"}, mailer.sent, "se envía el correo de bienvenida")
}

// Identidad confirmada sin staging: huérfana. Se elimina la identidad y no se
// crea ningún tenant.
func TestTrigger_IdentidadHuerfana_EliminaIdentidad(t *testing.T) {
	const uid = "uid-huerfano"
	store := newMemStore()
	identity := &fakeIdentity{}
	trigger := buildTrigger(store, nil, identity, nil)

	trigger.HandleIdentityConfirmed(context.Background(), uid, "alguien@example.com")

	assert.Empty(t, store.tenants, "no debe crearse tenant")
	assert.Equal(t, []string{uid}, identity.deleted, "la identidad huérfana se elimina")
}

// Fallo del writer: compensación. La identidad recién creada se elimina y el
// staging queda intacto para inspección o reintento manual.
func TestTrigger_FalloDelWriter_CompensaIdentidad(t *testing.T) {
	const uid = "uid-fallo-writer"
	store := newMemStore()
	store.stagings[uid] = &entity.StagingSignup{UID: uid, BusinessName: "Café Luna"}
	identity := &fakeIdentity{}
	trigger := buildTrigger(store, failures{"user.Create": errors.New("disco lleno")}, identity, nil)

	trigger.HandleIdentityConfirmed(context.Background(), uid, "dueno@cafeluna.co")

	assert.Empty(t, store.tenants, "la transacción se revierte completa")
	assert.Empty(t, store.programs)
	assert.Contains(t, store.stagings, uid, "el staging queda intacto tras el fallo")
	assert.Equal(t, []string{uid}, identity.deleted, "la identidad se elimina como compensación")
}

// Error leyendo staging (fallo de infraestructura, no ausencia): no se toca la
// identidad, el emisor del webhook puede reintentar.
func TestTrigger_ErrorDeLecturaDeStaging_NoTocaIdentidad(t *testing.T) {
	const uid = "uid-lectura"
	store := newMemStore()
	identity := &fakeIdentity{}
	trigger := buildTrigger(store, failures{"staging.GetByUID": errors.New("timeout")}, identity, nil)

	trigger.HandleIdentityConfirmed(context.Background(), uid, "dueno@cafeluna.co")

	assert.Empty(t, identity.deleted, "un fallo transitorio de lectura no debe eliminar la identidad")
	assert.Empty(t, store.tenants)
}

// Evento sin uid: se ignora por completo.
func TestTrigger_EventoSinUID_SeIgnora(t *testing.T) {
	store := newMemStore()
	identity := &fakeIdentity{}
	trigger := buildTrigger(store, nil, identity, nil)

	trigger.HandleIdentityConfirmed(context.Background(), "", "x@example.com")

	assert.Empty(t, store.tenants)
	assert.Empty(t, identity.deleted)
}

// Email en la lista demo → grafo sembrado con datos de demostración.
func TestTrigger_EmailDemo_SiembraDatos(t *testing.T) {
	const uid = "uid-demo"
	const email = "demo@fideliza.app"
	store := newMemStore()
	store.stagings[uid] = &entity.StagingSignup{UID: uid, BusinessName: "Demo Café"}
	identity := &fakeIdentity{}
	trigger := buildTrigger(store, nil, identity, nil, email)

	trigger.HandleIdentityConfirmed(context.Background(), uid, email)

	require.NotNil(t, store.tenants[uid])
	assert.NotEmpty(t, store.customers, "la cuenta demo recibe clientes de muestra")
	assert.NotEmpty(t, store.rewards)
	assert.NotEmpty(t, store.branches)
}

// Email fuera de la lista demo → ningún dato de muestra.
func TestTrigger_EmailNormal_SinDatosDemo(t *testing.T) {
	const uid = "uid-normal"
	store := newMemStore()
	store.stagings[uid] = &entity.StagingSignup{UID: uid, BusinessName: "Café Real"}
	identity := &fakeIdentity{}
	trigger := buildTrigger(store, nil, identity, nil, "demo@fideliza.app")

	trigger.HandleIdentityConfirmed(context.Background(), uid, "real@cafereal.co")

	require.NotNil(t, store.tenants[uid])
	assert.Empty(t, store.customers)
	assert.Empty(t, store.rewards)
}

// Reentrega del webhook después de aprovisionar: el staging ya fue consumido,
// por lo que el segundo evento cae en la ruta de identidad huérfana.
func TestTrigger_EventoDuplicado_RutaHuerfana(t *testing.T) {
	const uid = "uid-duplicado"
	store := newMemStore()
	store.stagings[uid] = &entity.StagingSignup{UID: uid, BusinessName: "Café Luna"}
	identity := &fakeIdentity{}
	trigger := buildTrigger(store, nil, identity, nil)

	trigger.HandleIdentityConfirmed(context.Background(), uid, "dueno@cafeluna.co")
	require.NotNil(t, store.tenants[uid])
	require.Empty(t, identity.deleted)

	trigger.HandleIdentityConfirmed(context.Background(), uid, "dueno@cafeluna.co")
	assert.Equal(t, []string{uid}, identity.deleted, "la reentrega se trata como identidad sin staging")
}

// Si falla la compensación la identidad queda huérfana; el trigger no entra en
// pánico y lo deja registrado.
func TestTrigger_CompensacionFallida_NoPanic(t *testing.T) {
	const uid = "uid-compensacion"
	store := newMemStore()
	store.stagings[uid] = &entity.StagingSignup{UID: uid, BusinessName: "Café Luna"}
	identity := &fakeIdentity{deleteErr: errors.New("identidad inaccesible")}
	trigger := buildTrigger(store, failures{"tenant.Create": errors.New("disco lleno")}, identity, nil)

	assert.NotPanics(t, func() {
		trigger.HandleIdentityConfirmed(context.Background(), uid, "dueno@cafeluna.co")
	})
	assert.Contains(t, store.stagings, uid)
}
