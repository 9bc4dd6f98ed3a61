package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CalinaBorzan/Orders-Management/internal/application/billing"
	"github.com/CalinaBorzan/Orders-Management/internal/application/orders"
	"github.com/CalinaBorzan/Orders-Management/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC  *usecase.ClientUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *orders.OrderUseCase
	BillPDF   *billing.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Orders (crear y consultar; nunca editar ni borrar)
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)

	// Bills (solo lectura + PDF)
	bills := api.Group("/bills")
	billHandler := NewBillHandler(deps.OrderUC, deps.BillPDF)
	bills.Get("/", billHandler.List)
	bills.Get("/:id/pdf", billHandler.DownloadPDF)
}
