// Package pdf genera el reporte de salud de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS: Total | Bajo | Crítico | Sano | Servicios        │
//	│  BANNER: alerta crítica (solo si hay ítems críticos)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Nombre | Categoría | Cant. | Mín. | Estado | %│
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	appstock "github.com/jhoicas/stockmonitor/internal/application/stock"
	domstock "github.com/jhoicas/stockmonitor/internal/domain/stock"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorCritical = &props.Color{Red: 192, Green: 0, Blue: 0}
	colorLow      = &props.Color{Red: 200, Green: 120, Blue: 0}
	colorGood     = &props.Color{Red: 0, Green: 128, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReport implementa stock.PDFGenerator usando Maroto v2.
type MarotoStockReport struct {
	title string
}

// NewMarotoStockReport construye el generador. title encabeza el documento.
func NewMarotoStockReport(title string) *MarotoStockReport {
	if title == "" {
		title = "Stock Monitor"
	}
	return &MarotoStockReport{title: title}
}

var _ appstock.PDFGenerator = (*MarotoStockReport)(nil)

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(_ context.Context, report appstock.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title+" - Stock Report", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statCardsRow(report.Stats))
	if alert := report.Stats.Alert(); alert != "" {
		m.AddRows(alertRow(alert))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Rows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoStockReport) headerRow(report appstock.Report) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Stock health report", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generated: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// statCardsRow: una tarjeta por contador del dashboard.
func statCardsRow(s domstock.Stats) core.Row {
	card := func(label string, value int, c *props.Color) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(value), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: c, Top: 5,
			}),
		)
	}
	return row.New(16).Add(
		card("TOTAL", s.Total, colorPrimary),
		card("LOW", s.Low, colorLow),
		card("CRITICAL", s.Critical, colorCritical),
		card("HEALTHY", s.Healthy, colorGood),
		card("SERVICES", s.Services, colorPrimary),
		card("UNKNOWN", s.Unknown, colorGray),
	)
}

func alertRow(msg string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(msg, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorCritical, Top: 2,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("SKU", 2, align.Left),
		h("Name", 3, align.Left),
		h("Category", 2, align.Left),
		h("Qty", 1, align.Right),
		h("Min", 1, align.Right),
		h("Status", 2, align.Center),
		h("%", 1, align.Right),
	)
}

// tableRows: una fila por ítem; el estado se colorea según la severidad.
func tableRows(rows []appstock.ReportRow) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		it, c := r.Item, r.Classification
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		out = append(out, row.New(6).Add(
			cell(it.SKU, 2, align.Left),
			cell(it.Name, 3, align.Left),
			cell(it.Category, 2, align.Left),
			cell(optional(it.Quantity), 1, align.Right),
			cell(optional(it.MinLevel), 1, align.Right),
			col.New(2).Add(text.New(string(c.Status), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: severityColor(c.Severity),
			})),
			cell(percentage(c), 1, align.Right),
		))
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

func severityColor(s domstock.Severity) *props.Color {
	switch s {
	case domstock.SeverityCritical:
		return colorCritical
	case domstock.SeverityLow:
		return colorLow
	case domstock.SeverityGood:
		return colorGood
	}
	return colorGray
}

func optional(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func percentage(c domstock.Classification) string {
	if !c.Computable {
		return "-"
	}
	return strconv.FormatFloat(c.Percentage, 'f', 0, 64) + "%"
}
