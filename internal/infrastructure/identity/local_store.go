package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/fideliza-api/internal/application/ports"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var _ ports.IdentityService = (*LocalStore)(nil)

// LocalStore implementación de IdentityService sobre PostgreSQL con bcrypt.
// Se usa en development cuando IDENTITY_BASE_URL está vacío; el comportamiento
// observable (uid, ErrEmailAlreadyExists, ErrUnauthorized) es el mismo que el
// del proveedor hospedado.
type LocalStore struct {
	pool *pgxpool.Pool
}

// NewLocalStore construye el almacén local de identidades.
func NewLocalStore(pool *pgxpool.Pool) *LocalStore {
	return &LocalStore{pool: pool}
}

// CreateUser crea la cuenta local y devuelve su uid.
func (s *LocalStore) CreateUser(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("identity local: hashear password: %w", err)
	}
	uid := uuid.New().String()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO identity_accounts (uid, email, password_hash, created_at) VALUES ($1, $2, $3, now())`,
		uid, email, string(hash),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrEmailAlreadyExists
		}
		return "", fmt.Errorf("identity local: insert cuenta: %w", err)
	}
	return uid, nil
}

// DeleteUser elimina la cuenta local. Idempotente: no falla si ya no existe.
func (s *LocalStore) DeleteUser(ctx context.Context, uid string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM identity_accounts WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("identity local: delete cuenta: %w", err)
	}
	return nil
}

// VerifyUser valida email+password contra el hash almacenado.
func (s *LocalStore) VerifyUser(ctx context.Context, email, password string) (string, error) {
	var uid, hash string
	err := s.pool.QueryRow(ctx,
		`SELECT uid, password_hash FROM identity_accounts WHERE email = $1`, email,
	).Scan(&uid, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("identity local: buscar cuenta: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return uid, nil
}
