package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

// Asegura que TenantRepo implementa repository.TenantRepository.
var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador de persistencia para tenants. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

const tenantColumns = `id, name, owner_email, plan, status, trial_ends, logo_url,
	industry, business_size, goals,
	billing_address, billing_city, billing_country, tax_id,
	created_at, updated_at`

// Create persiste un nuevo tenant.
func (r *TenantRepo) Create(t *entity.Tenant) error {
	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.OwnerEmail, t.Plan, t.Status, t.TrialEnds, t.LogoURL,
		t.Survey.Industry, t.Survey.BusinessSize, t.Survey.Goals,
		t.Billing.Address, t.Billing.City, t.Billing.Country, t.Billing.TaxID,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert tenant: ya existe un tenant para esa identidad: %w", err)
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	t, err := r.scanTenant(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return t, nil
}

// Update actualiza el perfil de un tenant.
func (r *TenantRepo) Update(t *entity.Tenant) error {
	query := `
		UPDATE tenants
		SET name = $2, logo_url = $3,
			billing_address = $4, billing_city = $5, billing_country = $6, tax_id = $7,
			updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.LogoURL,
		t.Billing.Address, t.Billing.City, t.Billing.Country, t.Billing.TaxID,
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

// UpdateStatus cambia estado y/o plan; cadena vacía conserva el valor actual.
func (r *TenantRepo) UpdateStatus(id, status, plan string) error {
	query := `
		UPDATE tenants
		SET status = COALESCE(NULLIF($2, ''), status),
			plan   = COALESCE(NULLIF($3, ''), plan),
			updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, plan)
	if err != nil {
		return fmt.Errorf("update tenant status: %w", err)
	}
	return nil
}

// List devuelve tenants con paginación (super-admin).
func (r *TenantRepo) List(limit, offset int) ([]*entity.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tenant
	for rows.Next() {
		t, err := r.scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Delete elimina un tenant por ID; las sub-entidades caen por ON DELETE CASCADE.
func (r *TenantRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	return nil
}

func (r *TenantRepo) scanTenant(row pgx.Row) (*entity.Tenant, error) {
	var t entity.Tenant
	err := row.Scan(
		&t.ID, &t.Name, &t.OwnerEmail, &t.Plan, &t.Status, &t.TrialEnds, &t.LogoURL,
		&t.Survey.Industry, &t.Survey.BusinessSize, &t.Survey.Goals,
		&t.Billing.Address, &t.Billing.City, &t.Billing.Country, &t.Billing.TaxID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
