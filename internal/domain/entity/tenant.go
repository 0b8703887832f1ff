package entity

import (
	"strings"
	"time"
	"unicode"
)

// Planes comerciales disponibles.
const (
	PlanEsencial    = "Esencial"
	PlanCrecimiento = "Crecimiento"
	PlanEmpresarial = "Empresarial"
)

// Estados del ciclo de vida de un tenant.
const (
	TenantPrueba     = "Prueba"
	TenantActivo     = "Activo"
	TenantCancelado  = "Cancelado"
	TenantSuspendido = "Suspendido"
)

// TrialDays duración del periodo de prueba en días.
const TrialDays = 14

// Survey respuestas del cuestionario de onboarding del negocio.
type Survey struct {
	Industry     string
	BusinessSize string
	Goals        string
}

// BillingInfo datos de facturación del negocio.
type BillingInfo struct {
	Address string
	City    string
	Country string
	TaxID   string
}

// Tenant representa un negocio inscrito en la plataforma. Su ID es el uid de
// la identidad del dueño, lo que garantiza un tenant por identidad.
type Tenant struct {
	ID         string
	Name       string
	OwnerEmail string
	Plan       string
	Status     string
	TrialEnds  time.Time
	LogoURL    string
	Survey     Survey
	Billing    BillingInfo
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidPlan informa si el plan es uno de los comerciales conocidos.
func ValidPlan(p string) bool {
	switch p {
	case PlanEsencial, PlanCrecimiento, PlanEmpresarial:
		return true
	}
	return false
}

// ValidTenantStatus informa si el estado pertenece al ciclo de vida del tenant.
func ValidTenantStatus(s string) bool {
	switch s {
	case TenantPrueba, TenantActivo, TenantCancelado, TenantSuspendido:
		return true
	}
	return false
}

// Initials deriva las iniciales de un nombre: primera letra de cada palabra,
// en mayúsculas. "Mi Café Favorito" → "MCF".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}
