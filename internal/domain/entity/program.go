package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de programa de lealtad.
const (
	ProgramPuntos   = "Puntos"
	ProgramSellos   = "Sellos"
	ProgramCashback = "Cashback"
)

// Estados de un programa.
const (
	ProgramActivo   = "Activo"
	ProgramInactivo = "Inactivo"
)

// Valores por defecto del programa creado durante el aprovisionamiento.
const (
	DefaultProgramName     = "Programa de Puntos"
	DefaultPointsPerAmount = 10
)

// ProgramRules reglas de acumulación. Solo aplican los campos del tipo de
// programa correspondiente; los demás quedan en cero.
type ProgramRules struct {
	PointsPerAmount    int             // Puntos: puntos otorgados por AmountForPoints
	AmountForPoints    decimal.Decimal // Puntos: unidad de moneda que genera puntos
	StampsCount        int             // Sellos: sellos para completar la tarjeta
	CashbackPercentage decimal.Decimal // Cashback: porcentaje devuelto
}

// ProgramDesign apariencia de la tarjeta digital del programa.
type ProgramDesign struct {
	LogoText        string
	BackgroundColor string
	ForegroundColor string
	LabelColor      string
}

// Program representa un programa de lealtad de un Tenant.
type Program struct {
	ID          string
	TenantID    string
	Name        string
	Type        string
	Status      string
	Members     int
	Description string
	Rules       ProgramRules
	Design      ProgramDesign
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultRules reglas del programa por defecto: 10 puntos por unidad de moneda.
func DefaultRules() ProgramRules {
	return ProgramRules{
		PointsPerAmount: DefaultPointsPerAmount,
		AmountForPoints: decimal.NewFromInt(1),
	}
}

// ValidProgramType informa si el tipo de programa es conocido.
func ValidProgramType(t string) bool {
	switch t {
	case ProgramPuntos, ProgramSellos, ProgramCashback:
		return true
	}
	return false
}
