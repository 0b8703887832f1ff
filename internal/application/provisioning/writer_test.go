package provisioning_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fideliza-api/internal/application/provisioning"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
)

func standardInput(uid string) provisioning.ProvisionInput {
	return provisioning.ProvisionInput{
		TenantID:     uid,
		BusinessName: "Café Luna",
		OwnerEmail:   "dueno@cafeluna.co",
		Survey: entity.Survey{
			Industry:     "Restaurantes y cafés",
			BusinessSize: "1-5",
			Goals:        "retener clientes",
		},
		Billing: entity.BillingInfo{
			Address: "Cra 7 # 12-34",
			City:    "Bogotá",
			Country: "Colombia",
			TaxID:   "901234567",
		},
		Mode: provisioning.ModeStandard,
	}
}

// storeWithStaging prepara un almacén con el registro de staging del uid.
func storeWithStaging(uid string) *memStore {
	s := newMemStore()
	s.stagings[uid] = &entity.StagingSignup{
		UID:          uid,
		BusinessName: "Café Luna",
		CreatedAt:    time.Now(),
	}
	return s
}

// El grafo completo: tenant + programa por defecto + usuario Admin, y el
// staging consumido, todo en la misma transacción.
func TestProvision_CreaGrafoCompleto(t *testing.T) {
	const uid = "uid-cafe-luna"
	store := storeWithStaging(uid)
	w := provisioning.NewGraphWriter(&memTxRunner{store: store})

	err := w.Provision(context.Background(), standardInput(uid))
	require.NoError(t, err)

	// Tenant
	tenant := store.tenants[uid]
	require.NotNil(t, tenant, "el tenant debe existir con el uid de la identidad")
	assert.Equal(t, "Café Luna", tenant.Name)
	assert.Equal(t, "dueno@cafeluna.co", tenant.OwnerEmail)
	assert.Equal(t, entity.PlanCrecimiento, tenant.Plan, "el plan inicial es Crecimiento")
	assert.Equal(t, entity.TenantPrueba, tenant.Status, "el estado inicial es Prueba")
	assert.Equal(t, "Bogotá", tenant.Billing.City)
	assert.Equal(t, "Restaurantes y cafés", tenant.Survey.Industry)

	// Programa por defecto
	require.Len(t, store.programs, 1)
	program := store.programs[0]
	assert.Equal(t, entity.DefaultProgramName, program.Name)
	assert.Equal(t, entity.ProgramPuntos, program.Type)
	assert.Equal(t, entity.ProgramActivo, program.Status)
	assert.Equal(t, 0, program.Members)
	assert.Equal(t, 10, program.Rules.PointsPerAmount, "10 puntos por unidad de moneda")
	assert.True(t, program.Rules.AmountForPoints.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "Café Luna", program.Design.LogoText)

	// Usuario Admin
	require.Len(t, store.users, 1)
	admin := store.users[0]
	assert.Equal(t, uid, admin.ID, "el Admin reutiliza el uid de la identidad")
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, entity.UserActivo, admin.Status)
	assert.Equal(t, "CL", admin.Initials)

	// Staging consumido
	assert.NotContains(t, store.stagings, uid, "el staging se elimina en la misma transacción")

	// Sin datos demo en modo estándar
	assert.Empty(t, store.customers)
	assert.Empty(t, store.rewards)
	assert.Empty(t, store.branches)
}

// La ventana de prueba son exactamente 14 días desde la creación.
func TestProvision_VentanaDePrueba14Dias(t *testing.T) {
	const uid = "uid-trial"
	store := storeWithStaging(uid)
	w := provisioning.NewGraphWriter(&memTxRunner{store: store})

	require.NoError(t, w.Provision(context.Background(), standardInput(uid)))

	tenant := store.tenants[uid]
	require.NotNil(t, tenant)
	assert.True(t, tenant.TrialEnds.Equal(tenant.CreatedAt.AddDate(0, 0, 14)),
		"trial_ends debe ser created_at + 14 días exactos")
}

// Sin nombre de negocio se usa el nombre por defecto.
func TestProvision_NombreVacioUsaPorDefecto(t *testing.T) {
	const uid = "uid-sin-nombre"
	store := storeWithStaging(uid)
	w := provisioning.NewGraphWriter(&memTxRunner{store: store})

	in := standardInput(uid)
	in.BusinessName = ""
	require.NoError(t, w.Provision(context.Background(), in))

	tenant := store.tenants[uid]
	require.NotNil(t, tenant)
	assert.Equal(t, entity.DefaultBusinessName, tenant.Name)
	assert.Equal(t, "MN", store.users[0].Initials)
}

// ModeDemoSeeded siembra clientes, premios, usuarios extra y sucursales de muestra.
func TestProvision_ModoDemoSiembraDatos(t *testing.T) {
	const uid = "uid-demo"
	store := storeWithStaging(uid)
	w := provisioning.NewGraphWriter(&memTxRunner{store: store})

	in := standardInput(uid)
	in.Mode = provisioning.ModeDemoSeeded
	require.NoError(t, w.Provision(context.Background(), in))

	assert.NotEmpty(t, store.customers, "el modo demo siembra clientes")
	assert.NotEmpty(t, store.rewards, "el modo demo siembra premios")
	assert.NotEmpty(t, store.branches, "el modo demo siembra sucursales")
	assert.Greater(t, len(store.users), 1, "el modo demo siembra staff adicional al Admin")

	for _, c := range store.customers {
		assert.Equal(t, uid, c.TenantID, "los datos demo pertenecen al tenant nuevo")
	}
}

// Un fallo en cualquier punto de la transacción no deja escrituras parciales y
// conserva el staging para inspección.
func TestProvision_FalloEnMedioNoDejaNada(t *testing.T) {
	const uid = "uid-fallo"
	boom := errors.New("conexión perdida")

	for _, op := range []string{"tenant.Create", "program.Create", "user.Create", "staging.Delete"} {
		t.Run(op, func(t *testing.T) {
			store := storeWithStaging(uid)
			w := provisioning.NewGraphWriter(&memTxRunner{store: store, fail: failures{op: boom}})

			err := w.Provision(context.Background(), standardInput(uid))
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)

			assert.Empty(t, store.tenants, "rollback: sin tenant")
			assert.Empty(t, store.programs, "rollback: sin programa")
			assert.Empty(t, store.users, "rollback: sin usuarios")
			assert.Contains(t, store.stagings, uid, "rollback: el staging queda intacto")
		})
	}
}

// Entrada sin uid o sin email se rechaza antes de abrir transacción.
func TestProvision_EntradaInvalida(t *testing.T) {
	store := newMemStore()
	w := provisioning.NewGraphWriter(&memTxRunner{store: store})

	in := standardInput("")
	assert.Error(t, w.Provision(context.Background(), in))

	in = standardInput("uid-x")
	in.OwnerEmail = ""
	assert.Error(t, w.Provision(context.Background(), in))

	assert.Empty(t, store.tenants)
}

// Las iniciales derivan del nombre del negocio palabra por palabra.
func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Mi Café Favorito": "MCF",
		"Café Luna":        "CL",
		"panadería el sol": "PES",
		"Solo":             "S",
		"":                 "",
	}
	for name, want := range cases {
		assert.Equal(t, want, entity.Initials(name), "iniciales de %q", name)
	}
}
