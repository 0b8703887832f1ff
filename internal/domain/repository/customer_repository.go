package repository

import "github.com/jhoicas/fideliza-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(tenantID, id string) (*entity.Customer, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Customer, error)
	// SearchByName busca por nombre normalizado (sin acentos, case-insensitive).
	SearchByName(tenantID, normalizedQuery string, limit int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// AdjustPoints aplica el delta sobre el saldo y anexa la entrada al
	// historial JSONB de forma atómica. Devuelve el saldo resultante;
	// domain.ErrConflict si el débito dejaría el saldo negativo.
	AdjustPoints(tenantID, id string, delta int, entry entity.HistoryEntry) (int, error)
	Delete(tenantID, id string) error
}
