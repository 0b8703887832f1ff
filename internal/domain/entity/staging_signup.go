package entity

import "time"

// DefaultBusinessName nombre usado cuando el formulario no capturó el nombre del negocio.
const DefaultBusinessName = "Mi Negocio"

// StagingSignup registro transitorio del formulario de registro, creado por el
// cliente antes de confirmar la identidad y keyed por el uid pre-creado.
// Se consume exactamente una vez durante el aprovisionamiento y se elimina en la
// misma transacción que crea el grafo del tenant.
type StagingSignup struct {
	UID            string
	BusinessName   string
	Industry       string
	BusinessSize   string
	Goals          string
	BillingAddress string
	City           string
	Country        string
	TaxID          string
	CreatedAt      time.Time
}
