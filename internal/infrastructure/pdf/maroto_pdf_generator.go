// Package pdf genera el catálogo imprimible de una tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │ Fecha + cantidad de productos │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA                                                   │
//	│  TABLA: Producto | Talla | Color | Precio                    │
//	│  ... una sección por categoría ...                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: URL pública de la API + QR                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/application/ports"
)

var _ ports.CatalogRenderer = (*MarotoCatalogGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 24, Green: 24, Blue: 27}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAccent  = &props.Color{Red: 180, Green: 83, Blue: 9}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCatalogGenerator implementa ports.CatalogRenderer usando Maroto v2.
type MarotoCatalogGenerator struct {
	printer *message.Printer
}

// NewMarotoCatalogGenerator construye el generador. lang define el formato de los precios (es, en...).
func NewMarotoCatalogGenerator(lang string) *MarotoCatalogGenerator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Spanish
	}
	return &MarotoCatalogGenerator{printer: message.NewPrinter(tag)}
}

// RenderCatalog genera el PDF y devuelve sus bytes.
func (g *MarotoCatalogGenerator) RenderCatalog(_ context.Context, doc dto.CatalogDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo "+doc.StoreName, true).
		WithAuthor(doc.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(doc.Sections) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("La tienda no tiene productos publicados.", props.Text{Size: 10, Top: 4, Color: colorGray}),
		)))
	}
	for _, section := range doc.Sections {
		m.AddRows(sectionRows(section, g.price)...)
	}

	if doc.PublicURL != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(footerRow(doc.PublicURL))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar catálogo: %w", err)
	}
	return out.GetBytes(), nil
}

// price formatea con separadores del idioma y dos decimales: 1234567.5 -> "$1.234.567,50" (es).
func (g *MarotoCatalogGenerator) price(d decimal.Decimal) string {
	return "$" + g.printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(doc dto.CatalogDocument) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(doc.StoreName, props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
			text.New("Catálogo de productos", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(doc.GeneratedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d productos", doc.ProductCount()), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

func sectionRows(section dto.CatalogSection, price func(decimal.Decimal) string) []core.Row {
	title := section.Category
	if title == "" {
		title = "Sin categoría"
	}
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 4,
		}))),
		tableHeaderRow(),
	}
	for _, item := range section.Items {
		name := item.Name
		nameProps := props.Text{Size: 9, Top: 1, Left: 1}
		if item.Featured {
			name = "* " + name
			nameProps.Color = colorAccent
			nameProps.Style = fontstyle.Bold
		}
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(name, nameProps)),
			col.New(2).Add(text.New(nonEmpty(item.Size, "-"), props.Text{Size: 9, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(nonEmpty(item.Color, "-"), props.Text{Size: 9, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(price(item.Price), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 6, align.Left),
		h("Talla", 2, align.Center),
		h("Color", 2, align.Center),
		h("Precio", 2, align.Right),
	)
}

func footerRow(publicURL string) core.Row {
	return row.New(30).Add(
		col.New(9).Add(
			text.New("API pública de la tienda", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 4,
			}),
			text.New(publicURL, props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(3).Add(code.NewQr(publicURL, props.Rect{Percent: 95, Center: true})),
	)
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
