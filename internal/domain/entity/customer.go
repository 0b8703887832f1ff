package entity

import "time"

// Valores por defecto y segmentos de un cliente final.
const (
	TierBronce = "Bronce"
	TierPlata  = "Plata"
	TierOro    = "Oro"

	SegmentNuevo     = "Nuevo miembro"
	SegmentFrecuente = "Frecuente"
	SegmentVIP       = "VIP"
)

// HistoryEntry un movimiento de puntos en la cuenta de un cliente.
type HistoryEntry struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
}

// Customer representa un cliente final de un Tenant.
// El ID es el uid de su identidad cuando se auto-registró; el historial se
// persiste como JSONB junto al cliente.
type Customer struct {
	ID        string
	TenantID  string
	Name      string
	Email     string
	Phone     string
	Cedula    string
	Tier      string
	Points    int
	Segment   string
	Joined    time.Time
	Initials  string
	History   []HistoryEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}
