package billing

import (
	"context"

	"github.com/CalinaBorzan/Orders-Management/internal/domain"
	"github.com/CalinaBorzan/Orders-Management/internal/domain/repository"
)

// PDFUseCase arma el PDF de una factura: resuelve la factura, su pedido y
// las entidades referenciadas, y delega el render al generador.
type PDFUseCase struct {
	bills    repository.BillRepository
	orders   repository.OrderRepository
	clients  repository.ClientRepository
	products repository.ProductRepository
	pdf      BillPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	bills repository.BillRepository,
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	pdf BillPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		bills:    bills,
		orders:   orders,
		clients:  clients,
		products: products,
		pdf:      pdf,
	}
}

// GenerateBillPDF genera el PDF de la factura indicada y devuelve sus bytes.
// La factura siempre tiene exactamente un pedido asociado (se crean juntos);
// cliente y producto existen mientras el pedido los referencie (claves
// foráneas sin borrado en cascada).
func (uc *PDFUseCase) GenerateBillPDF(ctx context.Context, billID int64) ([]byte, error) {
	bill, err := uc.bills.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}

	order, err := uc.orders.FindByID(ctx, bill.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	client, err := uc.clients.FindByID(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}
	product, err := uc.products.FindByID(ctx, order.ProductID)
	if err != nil {
		return nil, err
	}
	if client == nil || product == nil {
		return nil, domain.ErrNotFound
	}

	return uc.pdf.GenerateBillPDF(ctx, bill, order, client, product)
}
