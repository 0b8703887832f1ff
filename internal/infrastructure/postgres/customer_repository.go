package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fideliza-api/internal/domain"
	"github.com/jhoicas/fideliza-api/internal/domain/entity"
	"github.com/jhoicas/fideliza-api/internal/domain/repository"
	"github.com/jhoicas/fideliza-api/pkg/normalize"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
// El historial de puntos se guarda como JSONB en la misma fila.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, tenant_id, name, email, phone, cedula, tier, points, segment,
	joined, initials, history, created_at, updated_at`

// Create persiste un nuevo cliente. name_normalized alimenta la búsqueda sin tildes.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, tenant_id, name, name_normalized, email, phone, cedula, tier, points, segment,
			joined, initials, history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	history := c.History
	if history == nil {
		history = []entity.HistoryEntry{}
	}
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.TenantID, c.Name, normalize.Fold(c.Name), c.Email, c.Phone, c.Cedula,
		c.Tier, c.Points, c.Segment, c.Joined, c.Initials, history,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente del tenant.
func (r *CustomerRepo) GetByID(tenantID, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 AND id = $2`
	c, err := r.scanCustomer(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListByTenant lista clientes del tenant con paginación.
func (r *CustomerRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + ` FROM customers
		WHERE tenant_id = $1 ORDER BY joined DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// SearchByName busca por prefijo o fragmento del nombre normalizado.
func (r *CustomerRepo) SearchByName(tenantID, normalizedQuery string, limit int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + ` FROM customers
		WHERE tenant_id = $1 AND name_normalized LIKE '%' || $2 || '%'
		ORDER BY name LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, normalizedQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// Update actualiza los datos de perfil de un cliente.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $3, name_normalized = $4, email = $5, phone = $6, cedula = $7,
			tier = $8, segment = $9, initials = $10, updated_at = $11
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		c.TenantID, c.ID, c.Name, normalize.Fold(c.Name), c.Email, c.Phone, c.Cedula,
		c.Tier, c.Segment, c.Initials, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// AdjustPoints aplica el delta y anexa la entrada al historial JSONB en una
// sola sentencia. El guard `points + delta >= 0` vive en el UPDATE: dos ajustes
// concurrentes nunca pierden un delta ni dejan el saldo negativo.
func (r *CustomerRepo) AdjustPoints(tenantID, id string, delta int, entry entity.HistoryEntry) (int, error) {
	query := `
		UPDATE customers
		SET points = points + $3, history = history || $4::jsonb, updated_at = now()
		WHERE tenant_id = $1 AND id = $2 AND points + $3 >= 0
		RETURNING points`
	var newPoints int
	err := r.q.QueryRow(context.Background(), query, tenantID, id, delta, []entity.HistoryEntry{entry}).Scan(&newPoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// El guard rechazó el débito o el cliente no existe; distinguir.
			var exists bool
			if chkErr := r.q.QueryRow(context.Background(),
				`SELECT true FROM customers WHERE tenant_id = $1 AND id = $2`, tenantID, id,
			).Scan(&exists); chkErr == nil {
				return 0, domain.ErrConflict
			}
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("adjust points: %w", err)
	}
	return newPoints, nil
}

// Delete elimina un cliente del tenant.
func (r *CustomerRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) collect(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Email, &c.Phone, &c.Cedula, &c.Tier, &c.Points, &c.Segment,
		&c.Joined, &c.Initials, &c.History, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
