package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/CalinaBorzan/Orders-Management/internal/application/billing"
	"github.com/CalinaBorzan/Orders-Management/internal/application/dto"
	"github.com/CalinaBorzan/Orders-Management/internal/application/orders"
)

// BillHandler maneja las peticiones HTTP de facturas (solo lectura: las
// facturas nacen con el pedido y nunca se modifican).
type BillHandler struct {
	uc  *orders.OrderUseCase
	pdf *billing.PDFUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(uc *orders.OrderUseCase, pdf *billing.PDFUseCase) *BillHandler {
	return &BillHandler{uc: uc, pdf: pdf}
}

// List GET /api/bills
func (h *BillHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListAllBills(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// DownloadPDF GET /api/bills/:id/pdf
func (h *BillHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	doc, err := h.pdf.GenerateBillPDF(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="factura-%d.pdf"`, id))
	return c.Send(doc)
}
