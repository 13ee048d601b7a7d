// Package pdf genera la lista de precios imprimible del catálogo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                │  Fecha + N° de productos   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Descripción | Stock | Rating | Precio     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: unidades en stock + leyenda de precios              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/auraskin-api/internal/application/ports"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

var _ ports.CatalogPDFGenerator = (*CatalogPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 156, Green: 84, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const descriptionMaxRunes = 90

// CatalogPDFGenerator implementa ports.CatalogPDFGenerator usando Maroto v2.
type CatalogPDFGenerator struct{}

// NewCatalogPDFGenerator construye el generador.
func NewCatalogPDFGenerator() *CatalogPDFGenerator { return &CatalogPDFGenerator{} }

// GenerateCatalogPDF genera el PDF y devuelve sus bytes.
func (g *CatalogPDFGenerator) GenerateCatalogPDF(
	ctx context.Context,
	title string,
	generatedAt time.Time,
	products []entity.Product,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, generatedAt, len(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(products) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("El catálogo no tiene productos.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range productRows(products) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(products))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha + cantidad de productos (der).
func headerRow(title string, generatedAt time.Time, count int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Lista de precios", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d productos", count), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
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
		h("Producto", 3, align.Left),
		h("Descripción", 5, align.Left),
		h("Stock", 1, align.Center),
		h("Rating", 1, align.Center),
		h("Precio", 2, align.Right),
	)
}

// productRows: una fila por producto; la descripción se recorta para mantener la altura fija.
func productRows(products []entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		p.Normalize()
		result = append(result, row.New(9).Add(
			col.New(3).Add(text.New(p.Name, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(5).Add(text.New(truncate(p.Description, descriptionMaxRunes), props.Text{
				Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
			})),
			col.New(1).Add(text.New(strconv.Itoa(p.Stock), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(1).Add(text.New(formatRating(p.Rating, p.Reviews), props.Text{
				Size: 7, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(p.PriceDisplay, props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func footerRow(products []entity.Product) core.Row {
	units := 0
	for _, p := range products {
		if p.Stock > 0 {
			units += p.Stock
		}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Unidades en stock: %d", units), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Precios en Rupiah (IDR), sujetos a cambio sin previo aviso.", props.Text{
				Size: 7, Color: colorGray, Top: 8,
			}),
		),
	)
}

func formatRating(rating float64, reviews int) string {
	if reviews == 0 && rating == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f (%d)", rating, reviews)
}

// truncate corta s a n runas agregando "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
