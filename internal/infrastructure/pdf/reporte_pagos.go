// Package pdf genera el reporte imprimible de pagos consolidados.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Demanda | Creador | Pagos | Total | Último pago      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: demandas con pagos / pagos / total recaudado       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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
	"github.com/shopspring/decimal"

	"github.com/necesito-esto/admin-api/internal/application/dto"
	"github.com/necesito-esto/admin-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReportePagos implementa usecase.GeneradorReportePagos usando Maroto v2.
type ReportePagos struct{}

var _ usecase.GeneradorReportePagos = (*ReportePagos)(nil)

// NewReportePagos construye el generador.
func NewReportePagos() *ReportePagos { return &ReportePagos{} }

// Generar genera el PDF del consolidado y devuelve sus bytes.
func (g *ReportePagos) Generar(filas []dto.PagoConsolidadoDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de pagos consolidados", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(filas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(filas))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Necesito Esto!", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de pagos consolidados por demanda", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Demanda", 4, align.Left),
		h("Creador", 3, align.Left),
		h("Pagos", 1, align.Center),
		h("Total", 2, align.Right),
		h("Último pago", 2, align.Right),
	)
}

func tableRows(filas []dto.PagoConsolidadoDTO) []core.Row {
	result := make([]core.Row, 0, len(filas))
	for _, f := range filas {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				fmt.Sprintf("#%d  %s", f.DemandaID, f.TituloDemanda),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				f.Creador,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", f.CantidadPagos),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+f.TotalPagado.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				f.UltimoPago.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: conteos globales y total recaudado.
func totalsRow(filas []dto.PagoConsolidadoDTO) core.Row {
	totalPagos := 0
	total := decimal.Zero
	for _, f := range filas {
		totalPagos += f.CantidadPagos
		total = total.Add(f.TotalPagado)
	}

	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Demandas con pagos:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			}),
			text.New("Pagos registrados:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5,
			}),
			text.New("TOTAL RECAUDADO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 10,
			}),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("%d", len(filas)), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			}),
			text.New(fmt.Sprintf("%d", totalPagos), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 5,
			}),
			text.New("$"+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 10,
			}),
		),
	)
}
