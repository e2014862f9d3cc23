// Package pdf implementa el reporte imprimible del corte de stock de
// bobinas de spreader.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + ventana apertura/cierre                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Bin | Grupo | Peso | Calidad | Apert | Prod |       │
//	│         Salidas | Cierre | MT                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: bobinas al cierre / MT al cierre                  │
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

	"github.com/sidheshsarda/mis/internal/application/batching"
	"github.com/sidheshsarda/mis/internal/application/dto"
)

var _ batching.SnapshotPDFGenerator = (*MarotoSnapshotGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSnapshotGenerator implementa batching.SnapshotPDFGenerator usando Maroto v2.
type MarotoSnapshotGenerator struct{}

// NewMarotoSnapshotGenerator construye el generador.
func NewMarotoSnapshotGenerator() *MarotoSnapshotGenerator { return &MarotoSnapshotGenerator{} }

// GenerateSnapshotPDF genera el PDF del corte y devuelve sus bytes.
func (g *MarotoSnapshotGenerator) GenerateSnapshotPDF(_ context.Context, snapshot *dto.SnapshotResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Roll Stock Snapshot", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(snapshot))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range snapshot.Rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(snapshot))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y ventana apertura/cierre (der).
func headerRow(snapshot *dto.SnapshotResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("ROLL STOCK SNAPSHOT — SPREADER", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Apertura: "+snapshot.Opening, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Cierre: "+snapshot.Closing, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de corte.
func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		header(1, "Bin"),
		header(1, "Grupo"),
		header(2, "Peso (kg)"),
		header(1, "Calidad"),
		header(1, "Apert."),
		header(2, "Producción"),
		header(1, "Salidas"),
		header(1, "Cierre"),
		header(2, "MT"),
	)
}

// tableDetailRow: una fila del corte.
func tableDetailRow(r dto.SnapshotRowDTO) core.Row {
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8}))
	}
	return row.New(5).Add(
		cell(1, strconv.Itoa(r.BinNo)),
		cell(1, strconv.FormatInt(r.EntryGroupID, 10)),
		cell(2, r.WeightPerRoll.String()),
		cell(1, strconv.Itoa(r.JuteQualityID)),
		cell(1, strconv.Itoa(r.OpeningRolls)),
		cell(2, strconv.Itoa(r.ProducedRolls)),
		cell(1, strconv.Itoa(r.IssuedRolls)),
		cell(1, strconv.Itoa(r.ClosingRolls)),
		cell(2, r.ClosingMT.String()),
	)
}

// totalsRow: totales de bobinas y MT al cierre.
func totalsRow(snapshot *dto.SnapshotResponse) core.Row {
	return row.New(9).Add(
		col.New(7),
		col.New(3).Add(
			text.New("TOTAL CIERRE", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
		col.New(2).Add(
			text.New(fmt.Sprintf("%d bobinas", snapshot.TotalClosing), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
			}),
			text.New(snapshot.TotalMT.String()+" MT", props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}
