package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
)

var _ repository.ProgramRepository = (*ProgramRepo)(nil)

// ProgramRepo implementación del puerto ProgramRepository sobre PostgreSQL (usable con pool o tx).
type ProgramRepo struct {
	q Querier
}

// NewProgramRepository construye el adaptador de persistencia para programas. Pasar pool o tx (Querier).
func NewProgramRepository(q Querier) *ProgramRepo {
	return &ProgramRepo{q: q}
}

const programColumns = `id, tenant_id, name, type, status, members, description,
	points_per_amount, amount_for_points, stamps_count, cashback_percentage,
	logo_text, background_color, foreground_color, label_color,
	created_at, updated_at`

// Create persiste un nuevo programa.
func (r *ProgramRepo) Create(p *entity.Program) error {
	query := `
		INSERT INTO programs (` + programColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.TenantID, p.Name, p.Type, p.Status, p.Members, p.Description,
		p.Rules.PointsPerAmount, p.Rules.AmountForPoints, p.Rules.StampsCount, p.Rules.CashbackPercentage,
		p.Design.LogoText, p.Design.BackgroundColor, p.Design.ForegroundColor, p.Design.LabelColor,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert program: %w", err)
	}
	return nil
}

// GetByID obtiene un programa del tenant.
func (r *ProgramRepo) GetByID(tenantID, id string) (*entity.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE tenant_id = $1 AND id = $2`
	p, err := r.scanProgram(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get program: %w", err)
	}
	return p, nil
}

// ListByTenant lista los programas del tenant.
func (r *ProgramRepo) ListByTenant(tenantID string) ([]*entity.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE tenant_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	var list []*entity.Program
	for rows.Next() {
		p, err := r.scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un programa existente.
func (r *ProgramRepo) Update(p *entity.Program) error {
	query := `
		UPDATE programs
		SET name = $3, status = $4, description = $5,
			points_per_amount = $6, amount_for_points = $7, stamps_count = $8, cashback_percentage = $9,
			logo_text = $10, background_color = $11, foreground_color = $12, label_color = $13,
			updated_at = $14
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		p.TenantID, p.ID, p.Name, p.Status, p.Description,
		p.Rules.PointsPerAmount, p.Rules.AmountForPoints, p.Rules.StampsCount, p.Rules.CashbackPercentage,
		p.Design.LogoText, p.Design.BackgroundColor, p.Design.ForegroundColor, p.Design.LabelColor,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	return nil
}

// IncrementMembers suma uno al contador de miembros del programa.
func (r *ProgramRepo) IncrementMembers(tenantID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE programs SET members = members + 1, updated_at = now() WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	)
	if err != nil {
		return fmt.Errorf("increment members: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un programa del tenant.
func (r *ProgramRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM programs WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}

func (r *ProgramRepo) scanProgram(row pgx.Row) (*entity.Program, error) {
	var p entity.Program
	err := row.Scan(
		&p.ID, &p.TenantID, &p.Name, &p.Type, &p.Status, &p.Members, &p.Description,
		&p.Rules.PointsPerAmount, &p.Rules.AmountForPoints, &p.Rules.StampsCount, &p.Rules.CashbackPercentage,
		&p.Design.LogoText, &p.Design.BackgroundColor, &p.Design.ForegroundColor, &p.Design.LabelColor,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
