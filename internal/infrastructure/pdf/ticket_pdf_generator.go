// Package pdf genera el comprobante imprimible de un ticket.
//
// Layout de la página A5:
//
//	┌────────────────────────────────────────────┐
//	│  Supermercado + dirección │ N° ticket+fecha │
//	│  ────────────────────────────────────────  │
//	│  TABLA: # | Producto | Precio               │
//	│  ────────────────────────────────────────  │
//	│  Descuento                                  │
//	│  QR con la referencia del ticket            │
//	└────────────────────────────────────────────┘
package pdf

import (
	"context"
	"errors"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/ticket-logger-api/internal/application/usecase"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.TicketPDFGenerator = (*TicketPDFGenerator)(nil)

// TicketPDFGenerator implementa usecase.TicketPDFGenerator con Maroto v2.
type TicketPDFGenerator struct{}

// NewTicketPDFGenerator construye el generador.
func NewTicketPDFGenerator() *TicketPDFGenerator { return &TicketPDFGenerator{} }

// GenerateTicketPDF genera el comprobante. El total no se imprime porque el ticket aún no lo calcula.
func (g *TicketPDFGenerator) GenerateTicketPDF(ctx context.Context, t *entity.Ticket) ([]byte, error) {
	if t == nil {
		return nil, errors.New("pdf: ticket nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Ticket %d", t.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(productRows(t.Products)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(t))
	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(30).Add(
		col.New(4).Add(code.NewQr("ticket:"+strconv.FormatInt(t.ID, 10), props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(text.New("Conserve este comprobante.", props.Text{Size: 8, Top: 10, Left: 3, Color: colorGray})),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(t *entity.Ticket) core.Row {
	store, address := "—", "—"
	if loc := t.Location; loc != nil {
		address = nonEmpty(loc.Address, "—")
		if loc.City != "" {
			address += ", " + loc.City
		}
		if loc.Supermarket != nil {
			store = nonEmpty(loc.Supermarket.Name, "—")
		}
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(store, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1}),
			text.New(address, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("TICKET N° %d", t.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+t.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto", 8, align.Left),
		h("Precio", 3, align.Right),
	)
}

func productRows(products []*entity.Product) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for i, p := range products {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(8).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(formatMoney(p.Price.StringFixed(2)), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Sin productos", props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	return rows
}

func summaryRow(t *entity.Ticket) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(label("Descuento:")),
		col.New(3).Add(text.New(t.Discount.StringFixed(2)+" %", props.Text{Size: 9, Align: align.Right})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en la parte entera y coma decimal.
// Ej: "25000.50" → "25.000,50"
func formatMoney(s string) string {
	intPart, frac := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i+1:]
			break
		}
	}
	sign := ""
	if len(intPart) > 0 && intPart[0] == '-' {
		sign, intPart = "-", intPart[1:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := sign + string(buf)
	if frac != "" {
		out += "," + frac
	}
	return out
}
