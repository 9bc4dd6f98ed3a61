// Package pdf implementa la representación gráfica de una factura de pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: FACTURA N° + fecha de emisión                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + email + dirección                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cantidad | Precio unitario | Importe      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/CalinaBorzan/Orders-Management/internal/application/billing"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoBillGenerator implementa billing.BillPDFGenerator usando Maroto v2.
type MarotoBillGenerator struct{}

var _ billing.BillPDFGenerator = (*MarotoBillGenerator)(nil)

// NewMarotoBillGenerator construye el generador.
func NewMarotoBillGenerator() *MarotoBillGenerator {
	return &MarotoBillGenerator{}
}

// GenerateBillPDF genera el PDF de la factura y devuelve sus bytes.
func (g *MarotoBillGenerator) GenerateBillPDF(
	_ context.Context,
	bill *entity.Bill,
	order *entity.Order,
	client *entity.Client,
	product *entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Factura %d", bill.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(order, product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(bill))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: número de factura (izq) y fecha de emisión (der).
func headerRow(bill *entity.Bill) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(fmt.Sprintf("FACTURA N° %d", bill.ID), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
			text.New(fmt.Sprintf("Pedido N° %d", bill.OrderID), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+bill.Date.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente facturado.
func clientRow(client *entity.Client) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s   |   %s   |   %s",
				client.FirstName, client.LastName, client.Email, client.Address,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(6).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Cantidad", alignRight(header))),
		col.New(2).Add(text.New("P. Unit", alignRight(header))),
		col.New(2).Add(text.New("Importe", alignRight(header))),
	)
}

func detailRow(order *entity.Order, product *entity.Product) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	importe := product.Price.Mul(decimal.NewFromInt(int64(order.Quantity)))
	return row.New(6).Add(
		col.New(6).Add(text.New(product.Name, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", order.Quantity), alignRight(cell))),
		col.New(2).Add(text.New(product.Price.StringFixed(2), alignRight(cell))),
		col.New(2).Add(text.New(importe.StringFixed(2), alignRight(cell))),
	)
}

func totalRow(bill *entity.Bill) core.Row {
	return row.New(9).Add(
		col.New(8),
		col.New(4).Add(
			text.New("TOTAL A PAGAR: "+bill.Amount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func alignRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}
