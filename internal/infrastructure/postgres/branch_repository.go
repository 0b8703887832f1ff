package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL (usable con pool o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador de persistencia para sucursales. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

const branchColumns = `id, tenant_id, name, address, city, phone, status, created_at, updated_at`

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(b *entity.Branch) error {
	query := `
		INSERT INTO branches (` + branchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.TenantID, b.Name, b.Address, b.City, b.Phone, b.Status,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal del tenant.
func (r *BranchRepo) GetByID(tenantID, id string) (*entity.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE tenant_id = $1 AND id = $2`
	var b entity.Branch
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&b.ID, &b.TenantID, &b.Name, &b.Address, &b.City, &b.Phone, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// ListByTenant lista las sucursales del tenant.
func (r *BranchRepo) ListByTenant(tenantID string) ([]*entity.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE tenant_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.TenantID, &b.Name, &b.Address, &b.City, &b.Phone, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update actualiza una sucursal existente.
func (r *BranchRepo) Update(b *entity.Branch) error {
	query := `
		UPDATE branches SET name = $3, address = $4, city = $5, phone = $6, status = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		b.TenantID, b.ID, b.Name, b.Address, b.City, b.Phone, b.Status, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}

// Delete elimina una sucursal del tenant.
func (r *BranchRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM branches WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	return nil
}
