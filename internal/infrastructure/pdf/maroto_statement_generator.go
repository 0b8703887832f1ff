// Package pdf genera el estado de cuenta de puntos de un cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  "Estado de cuenta" + Fecha  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + nivel + miembro desde                    │
//	│  SALDO: puntos actuales en grande                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Descripción | Puntos                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda del programa                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/fideliza-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray    = &props.Color{Red: 148, Green: 163, Blue: 184}
	colorGreen   = &props.Color{Red: 22, Green: 163, Blue: 74}
	colorRed     = &props.Color{Red: 220, Green: 38, Blue: 38}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa usecase.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	tenant *entity.Tenant,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta de Puntos", true).
		WithAuthor(tenant.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(tenant))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(balanceRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Historial de movimientos
	m.AddRows(tableHeaderRow())
	for _, r := range historyRows(customer.History) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(tenant))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y título + fecha (der).
func headerRow(tenant *entity.Tenant) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(tenant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Programa de lealtad", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA DE PUNTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Corte: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Nivel: %s   |   Miembro desde: %s   |   Email: %s",
				customer.Tier,
				customer.Joined.Format("02/01/2006"),
				nonEmpty(customer.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// balanceRow: saldo actual en grande.
func balanceRow(customer *entity.Customer) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("SALDO ACTUAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 2, Align: align.Center,
			}),
			text.New(fmt.Sprintf("%d puntos", customer.Points), props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 7, Align: align.Center,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Descripción", 7, align.Left),
		h("Puntos", 3, align.Right),
	)
}

// historyRows: una fila por movimiento, más reciente primero.
func historyRows(history []entity.HistoryEntry) []core.Row {
	if len(history) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{
				Size: 8, Color: colorGray, Top: 2, Align: align.Center,
			}),
		))}
	}

	result := make([]core.Row, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		e := history[i]
		pointsColor := colorGreen
		pointsLabel := fmt.Sprintf("+%d", e.Points)
		if e.Points < 0 {
			pointsColor = colorRed
			pointsLabel = fmt.Sprintf("%d", e.Points)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				e.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(7).Add(text.New(
				e.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				pointsLabel,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: pointsColor},
			)),
		))
	}
	return result
}

// footerRow: leyenda del programa.
func footerRow(tenant *entity.Tenant) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Documento informativo emitido por %s. Los puntos no son canjeables por dinero "+
				"y están sujetos a los términos del programa de lealtad.", tenant.Name),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
