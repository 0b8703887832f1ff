package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

var _ repository.TenantUserRepository = (*TenantUserRepo)(nil)

// TenantUserRepo implementación del puerto TenantUserRepository sobre PostgreSQL (usable con pool o tx).
type TenantUserRepo struct {
	q Querier
}

// NewTenantUserRepository construye el adaptador de persistencia para usuarios de staff. Pasar pool o tx (Querier).
func NewTenantUserRepository(q Querier) *TenantUserRepo {
	return &TenantUserRepo{q: q}
}

const tenantUserColumns = `id, tenant_id, name, email, role, status, last_login, initials, created_at, updated_at`

// Create persiste un nuevo usuario de staff.
func (r *TenantUserRepo) Create(u *entity.TenantUser) error {
	query := `
		INSERT INTO tenant_users (` + tenantUserColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.TenantID, u.Name, u.Email, u.Role, u.Status, u.LastLogin, u.Initials,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert tenant user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario del tenant.
func (r *TenantUserRepo) GetByID(tenantID, id string) (*entity.TenantUser, error) {
	query := `SELECT ` + tenantUserColumns + ` FROM tenant_users WHERE tenant_id = $1 AND id = $2`
	u, err := r.scanUser(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant user: %w", err)
	}
	return u, nil
}

// GetByUID busca el usuario por uid de identidad en todos los tenants (login).
func (r *TenantUserRepo) GetByUID(uid string) (*entity.TenantUser, error) {
	query := `SELECT ` + tenantUserColumns + ` FROM tenant_users WHERE id = $1 LIMIT 1`
	u, err := r.scanUser(r.q.QueryRow(context.Background(), query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant user by uid: %w", err)
	}
	return u, nil
}

// ListByTenant lista usuarios del tenant con paginación.
func (r *TenantUserRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.TenantUser, error) {
	query := `
		SELECT ` + tenantUserColumns + ` FROM tenant_users
		WHERE tenant_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tenant users: %w", err)
	}
	defer rows.Close()

	var list []*entity.TenantUser
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tenant user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario de staff.
func (r *TenantUserRepo) Update(u *entity.TenantUser) error {
	query := `
		UPDATE tenant_users SET name = $3, email = $4, role = $5, status = $6, initials = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		u.TenantID, u.ID, u.Name, u.Email, u.Role, u.Status, u.Initials, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tenant user: %w", err)
	}
	return nil
}

// UpdateLastLogin marca el instante del último login.
func (r *TenantUserRepo) UpdateLastLogin(tenantID, id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tenant_users SET last_login = $3 WHERE tenant_id = $1 AND id = $2`,
		tenantID, id, at,
	)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// Delete elimina un usuario del tenant.
func (r *TenantUserRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tenant_users WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete tenant user: %w", err)
	}
	return nil
}

func (r *TenantUserRepo) scanUser(row pgx.Row) (*entity.TenantUser, error) {
	var u entity.TenantUser
	err := row.Scan(
		&u.ID, &u.TenantID, &u.Name, &u.Email, &u.Role, &u.Status, &u.LastLogin, &u.Initials,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
