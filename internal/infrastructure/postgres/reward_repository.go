package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

var _ repository.RewardRepository = (*RewardRepo)(nil)

// RewardRepo implementación del puerto RewardRepository sobre PostgreSQL (usable con pool o tx).
type RewardRepo struct {
	q Querier
}

// NewRewardRepository construye el adaptador de persistencia para recompensas. Pasar pool o tx (Querier).
func NewRewardRepository(q Querier) *RewardRepo {
	return &RewardRepo{q: q}
}

const rewardColumns = `id, tenant_id, name, description, points_cost, value, status, created_at, updated_at`

// Create persiste una nueva recompensa.
func (r *RewardRepo) Create(rw *entity.Reward) error {
	query := `
		INSERT INTO rewards (` + rewardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		rw.ID, rw.TenantID, rw.Name, rw.Description, rw.PointsCost, rw.Value, rw.Status,
		rw.CreatedAt, rw.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reward: %w", err)
	}
	return nil
}

// GetByID obtiene una recompensa del tenant.
func (r *RewardRepo) GetByID(tenantID, id string) (*entity.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE tenant_id = $1 AND id = $2`
	var rw entity.Reward
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&rw.ID, &rw.TenantID, &rw.Name, &rw.Description, &rw.PointsCost, &rw.Value, &rw.Status,
		&rw.CreatedAt, &rw.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reward: %w", err)
	}
	return &rw, nil
}

// ListByTenant lista las recompensas del tenant.
func (r *RewardRepo) ListByTenant(tenantID string) ([]*entity.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM rewards WHERE tenant_id = $1 ORDER BY points_cost`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	defer rows.Close()

	var list []*entity.Reward
	for rows.Next() {
		var rw entity.Reward
		if err := rows.Scan(&rw.ID, &rw.TenantID, &rw.Name, &rw.Description, &rw.PointsCost, &rw.Value, &rw.Status, &rw.CreatedAt, &rw.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		list = append(list, &rw)
	}
	return list, rows.Err()
}

// Update actualiza una recompensa existente.
func (r *RewardRepo) Update(rw *entity.Reward) error {
	query := `
		UPDATE rewards SET name = $3, description = $4, points_cost = $5, value = $6, status = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		rw.TenantID, rw.ID, rw.Name, rw.Description, rw.PointsCost, rw.Value, rw.Status, rw.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reward: %w", err)
	}
	return nil
}

// Delete elimina una recompensa del tenant.
func (r *RewardRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rewards WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete reward: %w", err)
	}
	return nil
}
