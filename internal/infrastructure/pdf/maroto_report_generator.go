// Package pdf implementa la generación del documento paginado de reportes
// (producción, tareas, inventario) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: tipo de reporte + rango de fechas                   │
//	│  RESUMEN: totales del corte (entradas, cantidades, etc.)     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: cabecera + una fila por registro                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/tu-usuario/dwoms-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.DocumentGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.DocumentGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(_ context.Context, doc reports.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(doc.Title))
	m.AddRows(summaryRow(doc.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))
	m.AddRows(tableHeaderRow(doc.Headers))
	for _, r := range tableRows(doc) {
		m.AddRows(r)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// summaryRow: totales del corte en una sola línea gris bajo el título.
func summaryRow(summary []string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(strings.Join(summary, "   |   "), props.Text{
				Size: 9, Color: colorGray, Top: 1,
			}),
		),
	)
}

// columnSizes reparte la grilla de 12 entre n columnas; las primeras
// absorben el resto de la división.
func columnSizes(n int) []int {
	if n <= 0 {
		return nil
	}
	base := 12 / n
	rem := 12 % n
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

func tableHeaderRow(headers []string) core.Row {
	sizes := columnSizes(len(headers))
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		cols = append(cols, col.New(sizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableRows(doc reports.Document) []core.Row {
	sizes := columnSizes(len(doc.Headers))
	result := make([]core.Row, 0, len(doc.Rows))
	for _, cells := range doc.Rows {
		cols := make([]core.Col, 0, len(cells))
		for i, cell := range cells {
			if i >= len(sizes) {
				break
			}
			cols = append(cols, col.New(sizes[i]).Add(text.New(cell, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}
