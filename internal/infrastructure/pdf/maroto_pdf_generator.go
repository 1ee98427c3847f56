// Package pdf genera el informe imprimible del listado de vendedores.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación │ Total de vendedores  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | NIF | Fecha nac. | Sexo | Sueldo base  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Suma de sueldos base                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
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

	"github.com/jhoicas/vendedores-api/internal/application/usecase"
	"github.com/jhoicas/vendedores-api/internal/domain/entity"
)

var _ usecase.VendedorReportGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var sexLabels = map[string]string{
	entity.SexMale:   "Masculino",
	entity.SexFemale: "Femenino",
	entity.SexOther:  "Otro",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.VendedorReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	appName string
}

// NewMarotoPDFGenerator construye el generador. appName aparece como autor del documento.
func NewMarotoPDFGenerator(appName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{appName: appName}
}

// GenerateVendedoresPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateVendedoresPDF(
	_ context.Context,
	vendedores []*entity.Vendedor,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Listado de vendedores", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(vendedores), generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(vendedores) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay vendedores registrados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(tableDetailRows(vendedores)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(vendedores))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(total int, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("LISTADO DE VENDEDORES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Total: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 5,
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
		h("ID", 1, align.Center),
		h("Nombre", 4, align.Left),
		h("NIF", 2, align.Left),
		h("Fecha nac.", 2, align.Center),
		h("Sexo", 1, align.Center),
		h("Sueldo base", 2, align.Right),
	)
}

// tableDetailRows: una fila por vendedor, en el orden recibido.
func tableDetailRows(vendedores []*entity.Vendedor) []core.Row {
	result := make([]core.Row, 0, len(vendedores))
	for _, v := range vendedores {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.FormatInt(v.ID, 10),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(v.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(v.NIF,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(v.BirthDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(sexLabel(v.Sex),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(v.BaseSalary),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(vendedores []*entity.Vendedor) core.Row {
	sum := decimal.Zero
	for _, v := range vendedores {
		sum = sum.Add(v.BaseSalary)
	}
	return row.New(10).Add(
		col.New(8).Add(text.New("Suma de sueldos base:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 2,
		})),
		col.New(4).Add(text.New(formatMoney(sum), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sexLabel(s string) string {
	if l, ok := sexLabels[s]; ok {
		return l
	}
	return s
}

// formatMoney formato europeo con dos decimales.
// Ej: 1500.5 → "1.500,50", 1000000 → "1.000.000,00"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
