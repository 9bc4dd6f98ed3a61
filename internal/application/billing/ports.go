package billing

import (
	"context"

	"github.com/CalinaBorzan/Orders-Management/internal/domain/entity"
)

// BillPDFGenerator puerto de render: produce la representación en PDF de
// una factura con los datos del pedido, el cliente y el producto asociados.
type BillPDFGenerator interface {
	GenerateBillPDF(
		ctx context.Context,
		bill *entity.Bill,
		order *entity.Order,
		client *entity.Client,
		product *entity.Product,
	) ([]byte, error)
}
