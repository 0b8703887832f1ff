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

var _ repository.StagingSignupRepository = (*StagingSignupRepo)(nil)

// StagingSignupRepo implementación del puerto StagingSignupRepository sobre PostgreSQL (usable con pool o tx).
type StagingSignupRepo struct {
	q Querier
}

// NewStagingSignupRepository construye el adaptador de persistencia para staging. Pasar pool o tx (Querier).
func NewStagingSignupRepository(q Querier) *StagingSignupRepo {
	return &StagingSignupRepo{q: q}
}

const stagingColumns = `uid, business_name, industry, business_size, goals,
	billing_address, city, country, tax_id, created_at`

// Create persiste el registro provisional del formulario de signup.
func (r *StagingSignupRepo) Create(s *entity.StagingSignup) error {
	query := `
		INSERT INTO staging_signups (` + stagingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.UID, s.BusinessName, s.Industry, s.BusinessSize, s.Goals,
		s.BillingAddress, s.City, s.Country, s.TaxID, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert staging signup: %w", err)
	}
	return nil
}

// GetByUID obtiene el registro provisional por uid; nil si no existe.
func (r *StagingSignupRepo) GetByUID(uid string) (*entity.StagingSignup, error) {
	query := `SELECT ` + stagingColumns + ` FROM staging_signups WHERE uid = $1`
	var s entity.StagingSignup
	err := r.q.QueryRow(context.Background(), query, uid).Scan(
		&s.UID, &s.BusinessName, &s.Industry, &s.BusinessSize, &s.Goals,
		&s.BillingAddress, &s.City, &s.Country, &s.TaxID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staging signup: %w", err)
	}
	return &s, nil
}

// Delete elimina el registro provisional (consumo único).
func (r *StagingSignupRepo) Delete(uid string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM staging_signups WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete staging signup: %w", err)
	}
	return nil
}
