// Package pdf implementa la generación del informe financiero mensual en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe  │  Período (YYYY-MM)           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ventas netas / Costo neto / Utilidad neta          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Ventas | Costo | Utilidad (solo días con     │
//	│         movimiento)                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
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

	appfinance "github.com/jhoicas/Farmacia-api/internal/application/finance"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa finance.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ appfinance.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMonthlyReport genera el PDF del informe mensual y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReport(report *appfinance.MonthlyReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe Financiero Mensual", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Monthly))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDailyRows(report.Dailies) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del informe (izq) y período (der).
func headerRow(report *appfinance.MonthlyReport) core.Row {
	period := fmt.Sprintf("%04d-%02d", report.Year, int(report.Month))
	return row.New(16).Add(
		col.New(8).Add(
			text.New("INFORME FINANCIERO MENSUAL", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ventas netas de devoluciones, a precio vigente de catálogo", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: bloque de totales netos del mes.
func summaryRow(monthly *entity.FinanceStat) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 8,
			}),
		)
	}
	return row.New(18).Add(
		cell("VENTAS NETAS", "$"+monthly.TotalSales.StringFixed(2)),
		cell("COSTO NETO", "$"+monthly.TotalCost.StringFixed(2)),
		cell("UTILIDAD NETA", "$"+monthly.TotalProfit.StringFixed(2)),
	)
}

// tableHeaderRow: cabecera de la tabla de cierres diarios.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Ventas", 3, align.Right),
		h("Costo", 3, align.Right),
		h("Utilidad", 3, align.Right),
	)
}

// tableDailyRows: una fila por cierre diario con movimiento.
func tableDailyRows(dailies []*entity.FinanceStat) []core.Row {
	result := make([]core.Row, 0, len(dailies))
	for _, d := range dailies {
		if d.TotalSales.IsZero() && d.TotalCost.IsZero() {
			continue
		}
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(
				d.StatDate.Format("2006-01-02"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				"$"+d.TotalSales.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+d.TotalCost.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+d.TotalProfit.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// footerRow: fecha de generación del documento.
func footerRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(
			"Generado el "+time.Now().Format("2006-01-02 15:04")+". "+
				"Los cierres se recalculan desde los eventos registrados.",
			props.Text{Size: 6.5, Color: colorGray, Top: 1},
		),
	))
}
