package provisioning_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria del grafo del tenant. El TxRunner falso reproduce la
// semántica transaccional: las escrituras ocurren sobre una copia del almacén y
// solo se publican si la función termina sin error.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	tenants   map[string]*entity.Tenant
	programs  []*entity.Program
	users     []*entity.TenantUser
	customers []*entity.Customer
	rewards   []*entity.Reward
	branches  []*entity.Branch
	stagings  map[string]*entity.StagingSignup
}

func newMemStore() *memStore {
	return &memStore{
		tenants:  make(map[string]*entity.Tenant),
		stagings: make(map[string]*entity.StagingSignup),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.tenants {
		c.tenants[k] = v
	}
	for k, v := range s.stagings {
		c.stagings[k] = v
	}
	c.programs = append(c.programs, s.programs...)
	c.users = append(c.users, s.users...)
	c.customers = append(c.customers, s.customers...)
	c.rewards = append(c.rewards, s.rewards...)
	c.branches = append(c.branches, s.branches...)
	return c
}

func (s *memStore) replaceWith(o *memStore) {
	s.tenants = o.tenants
	s.stagings = o.stagings
	s.programs = o.programs
	s.users = o.users
	s.customers = o.customers
	s.rewards = o.rewards
	s.branches = o.branches
}

// failures permite inyectar un error en una operación concreta ("user.Create",
// "staging.Delete", ...).
type failures map[string]error

func (f failures) on(op string) error {
	if f == nil {
		return nil
	}
	return f[op]
}

// ── Repos falsos ──────────────────────────────────────────────────────────────

type memTenantRepo struct {
	s    *memStore
	fail failures
}

func (r *memTenantRepo) Create(t *entity.Tenant) error {
	if err := r.fail.on("tenant.Create"); err != nil {
		return err
	}
	r.s.tenants[t.ID] = t
	return nil
}
func (r *memTenantRepo) GetByID(id string) (*entity.Tenant, error) { return r.s.tenants[id], nil }
func (r *memTenantRepo) Update(t *entity.Tenant) error             { r.s.tenants[t.ID] = t; return nil }
func (r *memTenantRepo) UpdateStatus(id, status, plan string) error {
	t, ok := r.s.tenants[id]
	if !ok {
		return errors.New("tenant inexistente")
	}
	if status != "" {
		t.Status = status
	}
	if plan != "" {
		t.Plan = plan
	}
	return nil
}
func (r *memTenantRepo) List(limit, offset int) ([]*entity.Tenant, error) { return nil, nil }
func (r *memTenantRepo) Delete(id string) error                           { delete(r.s.tenants, id); return nil }

type memProgramRepo struct {
	s    *memStore
	fail failures
}

func (r *memProgramRepo) Create(p *entity.Program) error {
	if err := r.fail.on("program.Create"); err != nil {
		return err
	}
	r.s.programs = append(r.s.programs, p)
	return nil
}
func (r *memProgramRepo) GetByID(tenantID, id string) (*entity.Program, error) {
	for _, p := range r.s.programs {
		if p.TenantID == tenantID && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProgramRepo) ListByTenant(tenantID string) ([]*entity.Program, error) {
	var out []*entity.Program
	for _, p := range r.s.programs {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProgramRepo) Update(p *entity.Program) error { return nil }
func (r *memProgramRepo) IncrementMembers(tenantID, id string) error {
	for _, p := range r.s.programs {
		if p.TenantID == tenantID && p.ID == id {
			p.Members++
			return nil
		}
	}
	return errors.New("programa inexistente")
}
func (r *memProgramRepo) Delete(tenantID, id string) error { return nil }

type memUserRepo struct {
	s    *memStore
	fail failures
}

func (r *memUserRepo) Create(u *entity.TenantUser) error {
	if err := r.fail.on("user.Create"); err != nil {
		return err
	}
	r.s.users = append(r.s.users, u)
	return nil
}
func (r *memUserRepo) GetByID(tenantID, id string) (*entity.TenantUser, error) {
	for _, u := range r.s.users {
		if u.TenantID == tenantID && u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByUID(uid string) (*entity.TenantUser, error) {
	for _, u := range r.s.users {
		if u.ID == uid {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.TenantUser, error) {
	var out []*entity.TenantUser
	for _, u := range r.s.users {
		if u.TenantID == tenantID {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *memUserRepo) Update(u *entity.TenantUser) error                       { return nil }
func (r *memUserRepo) UpdateLastLogin(tenantID, id string, at time.Time) error { return nil }
func (r *memUserRepo) Delete(tenantID, id string) error                        { return nil }

type memCustomerRepo struct {
	s    *memStore
	fail failures
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	if err := r.fail.on("customer.Create"); err != nil {
		return err
	}
	r.s.customers = append(r.s.customers, c)
	return nil
}
func (r *memCustomerRepo) GetByID(tenantID, id string) (*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Customer, error) {
	return r.s.customers, nil
}
func (r *memCustomerRepo) SearchByName(tenantID, normalizedQuery string, limit int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *memCustomerRepo) Update(c *entity.Customer) error { return nil }
func (r *memCustomerRepo) AdjustPoints(tenantID, id string, delta int, entry entity.HistoryEntry) (int, error) {
	return 0, nil
}
func (r *memCustomerRepo) Delete(tenantID, id string) error { return nil }

type memRewardRepo struct {
	s    *memStore
	fail failures
}

func (r *memRewardRepo) Create(w *entity.Reward) error {
	if err := r.fail.on("reward.Create"); err != nil {
		return err
	}
	r.s.rewards = append(r.s.rewards, w)
	return nil
}
func (r *memRewardRepo) GetByID(tenantID, id string) (*entity.Reward, error) { return nil, nil }
func (r *memRewardRepo) ListByTenant(tenantID string) ([]*entity.Reward, error) {
	return r.s.rewards, nil
}
func (r *memRewardRepo) Update(w *entity.Reward) error    { return nil }
func (r *memRewardRepo) Delete(tenantID, id string) error { return nil }

type memBranchRepo struct {
	s    *memStore
	fail failures
}

func (r *memBranchRepo) Create(b *entity.Branch) error {
	if err := r.fail.on("branch.Create"); err != nil {
		return err
	}
	r.s.branches = append(r.s.branches, b)
	return nil
}
func (r *memBranchRepo) GetByID(tenantID, id string) (*entity.Branch, error) { return nil, nil }
func (r *memBranchRepo) ListByTenant(tenantID string) ([]*entity.Branch, error) {
	return r.s.branches, nil
}
func (r *memBranchRepo) Update(b *entity.Branch) error    { return nil }
func (r *memBranchRepo) Delete(tenantID, id string) error { return nil }

type memStagingRepo struct {
	s    *memStore
	fail failures
}

func (r *memStagingRepo) Create(sg *entity.StagingSignup) error {
	if err := r.fail.on("staging.Create"); err != nil {
		return err
	}
	r.s.stagings[sg.UID] = sg
	return nil
}
func (r *memStagingRepo) GetByUID(uid string) (*entity.StagingSignup, error) {
	if err := r.fail.on("staging.GetByUID"); err != nil {
		return nil, err
	}
	return r.s.stagings[uid], nil
}
func (r *memStagingRepo) Delete(uid string) error {
	if err := r.fail.on("staging.Delete"); err != nil {
		return err
	}
	delete(r.s.stagings, uid)
	return nil
}

// ── TxRunner falso con semántica commit/rollback ─────────────────────────────

type memTxRunner struct {
	store *memStore
	fail  failures
}

func (tx *memTxRunner) RunProvisioning(_ context.Context, fn func(
	repository.TenantRepository,
	repository.ProgramRepository,
	repository.TenantUserRepository,
	repository.CustomerRepository,
	repository.RewardRepository,
	repository.BranchRepository,
	repository.StagingSignupRepository,
) error) error {
	staged := tx.store.clone()
	err := fn(
		&memTenantRepo{s: staged, fail: tx.fail},
		&memProgramRepo{s: staged, fail: tx.fail},
		&memUserRepo{s: staged, fail: tx.fail},
		&memCustomerRepo{s: staged, fail: tx.fail},
		&memRewardRepo{s: staged, fail: tx.fail},
		&memBranchRepo{s: staged, fail: tx.fail},
		&memStagingRepo{s: staged, fail: tx.fail},
	)
	if err != nil {
		return err // rollback: el almacén original queda intacto
	}
	tx.store.replaceWith(staged)
	return nil
}

// ── Servicio de identidad falso ──────────────────────────────────────────────

type fakeIdentity struct {
	deleted   []string
	deleteErr error
}

func (f *fakeIdentity) CreateUser(_ context.Context, email, password string) (string, error) {
	return "uid-" + email, nil
}
func (f *fakeIdentity) DeleteUser(_ context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	return f.deleteErr
}
func (f *fakeIdentity) VerifyUser(_ context.Context, email, password string) (string, error) {
	return "", errors.New("no implementado")
}

// ── Mailer falso ─────────────────────────────────────────────────────────────

type fakeMailer struct {
	sent []string // destinatarios
}

func (f *fakeMailer) SendWelcome(to, businessName string) error {
	f.sent = append(f.sent, to)
	return nil
}
