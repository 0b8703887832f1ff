package registration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fideliza-api/internal/application/dto"
	"github.com/jhoicas/fideliza-api/internal/application/registration"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
	"github.com/jhoicas/fideliza-api/pkg/logger"
)

const (
	regTenantID  = "tn_cafe_luna"
	regProgramID = "pg_puntos"
)

// regStore estado compartido por los fakes del paquete: suficiente para
// observar qué escrituras llegaron a "commit".
type regStore struct {
	tenant    *entity.Tenant
	program   *entity.Program
	customers []*entity.Customer
	members   int
}

type regTenantRepo struct{ s *regStore }

func (r *regTenantRepo) Create(*entity.Tenant) error { return nil }
func (r *regTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	if r.s.tenant != nil && r.s.tenant.ID == id {
		return r.s.tenant, nil
	}
	return nil, nil
}
func (r *regTenantRepo) Update(*entity.Tenant) error             { return nil }
func (r *regTenantRepo) UpdateStatus(_, _, _ string) error       { return nil }
func (r *regTenantRepo) List(_, _ int) ([]*entity.Tenant, error) { return nil, nil }
func (r *regTenantRepo) Delete(string) error                     { return nil }

type regProgramRepo struct {
	s       *regStore
	failInc error
}

func (r *regProgramRepo) Create(*entity.Program) error { return nil }
func (r *regProgramRepo) GetByID(tenantID, id string) (*entity.Program, error) {
	if r.s.program != nil && r.s.program.TenantID == tenantID && r.s.program.ID == id {
		return r.s.program, nil
	}
	return nil, nil
}
func (r *regProgramRepo) ListByTenant(string) ([]*entity.Program, error) { return nil, nil }
func (r *regProgramRepo) Update(*entity.Program) error                   { return nil }
func (r *regProgramRepo) IncrementMembers(_, _ string) error {
	if r.failInc != nil {
		return r.failInc
	}
	r.s.members++
	return nil
}
func (r *regProgramRepo) Delete(_, _ string) error { return nil }

type regCustomerRepo struct {
	s          *regStore
	failCreate error
}

func (r *regCustomerRepo) Create(c *entity.Customer) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.s.customers = append(r.s.customers, c)
	return nil
}
func (r *regCustomerRepo) GetByID(_, _ string) (*entity.Customer, error) { return nil, nil }
func (r *regCustomerRepo) ListByTenant(_ string, _, _ int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *regCustomerRepo) SearchByName(_, _ string, _ int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *regCustomerRepo) Update(*entity.Customer) error { return nil }
func (r *regCustomerRepo) AdjustPoints(_, _ string, _ int, _ entity.HistoryEntry) (int, error) {
	return 0, nil
}
func (r *regCustomerRepo) Delete(_, _ string) error { return nil }

// regTxRunner ejecuta fn sobre copias y solo publica los cambios si fn
// retorna nil, imitando commit/rollback.
type regTxRunner struct {
	s          *regStore
	failCreate error
	failInc    error
}

func (t *regTxRunner) RunRegistration(_ context.Context, fn func(
	customerRepo repository.CustomerRepository,
	programRepo repository.ProgramRepository,
) error) error {
	clone := &regStore{
		tenant:    t.s.tenant,
		program:   t.s.program,
		customers: append([]*entity.Customer(nil), t.s.customers...),
		members:   t.s.members,
	}
	err := fn(&regCustomerRepo{s: clone, failCreate: t.failCreate}, &regProgramRepo{s: clone, failInc: t.failInc})
	if err != nil {
		return err
	}
	t.s.customers = clone.customers
	t.s.members = clone.members
	return nil
}

type regIdentity struct {
	existing map[string]bool
	created  []string
	deleted  []string
}

func (f *regIdentity) CreateUser(_ context.Context, email, _ string) (string, error) {
	if f.existing[email] {
		return "", domain.ErrEmailAlreadyExists
	}
	f.created = append(f.created, email)
	return "uid-" + email, nil
}
func (f *regIdentity) DeleteUser(_ context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	return nil
}
func (f *regIdentity) VerifyUser(_ context.Context, _, _ string) (string, error) {
	return "", domain.ErrUnauthorized
}

func seededStore() *regStore {
	return &regStore{
		tenant:  &entity.Tenant{ID: regTenantID, Name: "Café Luna", Status: entity.TenantPrueba},
		program: &entity.Program{ID: regProgramID, TenantID: regTenantID, Name: entity.DefaultProgramName, Members: 3},
		members: 3,
	}
}

func validRequest() dto.RegisterCustomerRequest {
	return dto.RegisterCustomerRequest{
		Name:     "María Pérez",
		Email:    "maria@example.com",
		Password: "secreta123",
		Phone:    "3001234567",
	}
}

func TestRegister_CreaClienteConValoresPorDefecto(t *testing.T) {
	store := seededStore()
	identity := &regIdentity{}
	uc := registration.NewUseCase(
		&regTenantRepo{s: store},
		&regProgramRepo{s: store},
		identity,
		&regTxRunner{s: store},
		logger.NewNop(),
	)

	resp, err := uc.Register(context.Background(), regTenantID, regProgramID, validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "uid-maria@example.com", resp.UID)

	require.Len(t, store.customers, 1)
	c := store.customers[0]
	assert.Equal(t, resp.UID, c.ID, "el perfil usa el uid de la identidad como ID")
	assert.Equal(t, regTenantID, c.TenantID)
	assert.Equal(t, "María Pérez", c.Name)
	assert.Equal(t, entity.TierBronce, c.Tier)
	assert.Equal(t, 0, c.Points)
	assert.Equal(t, entity.SegmentNuevo, c.Segment)
	assert.Equal(t, "MP", c.Initials)
	assert.NotNil(t, c.History)
	assert.Empty(t, c.History)
	assert.Equal(t, 4, store.members, "el contador de miembros del programa incrementa")
}

func TestRegister_EmailYaRegistrado_NoEscribeNada(t *testing.T) {
	store := seededStore()
	identity := &regIdentity{existing: map[string]bool{"maria@example.com": true}}
	uc := registration.NewUseCase(
		&regTenantRepo{s: store},
		&regProgramRepo{s: store},
		identity,
		&regTxRunner{s: store},
		logger.NewNop(),
	)

	_, err := uc.Register(context.Background(), regTenantID, regProgramID, validRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, store.customers)
	assert.Equal(t, 3, store.members)
}

func TestRegister_TenantInexistente_Retorna404(t *testing.T) {
	store := seededStore()
	uc := registration.NewUseCase(
		&regTenantRepo{s: store},
		&regProgramRepo{s: store},
		&regIdentity{},
		&regTxRunner{s: store},
		logger.NewNop(),
	)

	_, err := uc.Register(context.Background(), "tn_otro", regProgramID, validRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_ProgramaInexistente_Retorna404(t *testing.T) {
	store := seededStore()
	identity := &regIdentity{}
	uc := registration.NewUseCase(
		&regTenantRepo{s: store},
		&regProgramRepo{s: store},
		identity,
		&regTxRunner{s: store},
		logger.NewNop(),
	)

	_, err := uc.Register(context.Background(), regTenantID, "pg_otro", validRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, identity.created, "no se crea identidad si el programa no existe")
}

func TestRegister_EntradaInvalida(t *testing.T) {
	store := seededStore()
	uc := registration.NewUseCase(
		&regTenantRepo{s: store},
		&regProgramRepo{s: store},
		&regIdentity{},
		&regTxRunner{s: store},
		logger.NewNop(),
	)

	for _, in := range []dto.RegisterCustomerRequest{
		{Email: "a@b.co", Password: "secreta123"},
		{Name: "María", Password: "secreta123"},
		{Name: "María", Email: "a@b.co"},
		{Name: "María", Email: "a@b.co", Password: "corta"},
	} {
		_, err := uc.Register(context.Background(), regTenantID, regProgramID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegister_FalloDeTransaccion_NoDejaPerfilNiCompensa(t *testing.T) {
	boom := errors.New("boom")
	for name, runner := range map[string]*regTxRunner{
		"fallo al crear el perfil":    {failCreate: boom},
		"fallo al incrementar conteo": {failInc: boom},
	} {
		t.Run(name, func(t *testing.T) {
			store := seededStore()
			runner.s = store
			identity := &regIdentity{}
			uc := registration.NewUseCase(
				&regTenantRepo{s: store},
				&regProgramRepo{s: store},
				identity,
				runner,
				logger.NewNop(),
			)

			_, err := uc.Register(context.Background(), regTenantID, regProgramID, validRequest())
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)

			// Rollback completo del lado de datos.
			assert.Empty(t, store.customers)
			assert.Equal(t, 3, store.members)

			// La identidad queda creada: brecha conocida del flujo bifásico,
			// aquí no hay compensación.
			assert.Equal(t, []string{"maria@example.com"}, identity.created)
			assert.Empty(t, identity.deleted)
		})
	}
}
