package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/CalinaBorzan/Orders-Management/internal/application/billing"
	"github.com/CalinaBorzan/Orders-Management/internal/application/orders"
	"github.com/CalinaBorzan/Orders-Management/internal/application/usecase"
	infrapdf "github.com/CalinaBorzan/Orders-Management/internal/infrastructure/pdf"
	"github.com/CalinaBorzan/Orders-Management/internal/infrastructure/postgres"
	httpRouter "github.com/CalinaBorzan/Orders-Management/internal/interfaces/http"
	"github.com/CalinaBorzan/Orders-Management/pkg/config"
	"github.com/CalinaBorzan/Orders-Management/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := orders.NewOrderUseCase(txRunner, clientRepo, productRepo, orderRepo, billRepo)

	pdfGenerator := infrapdf.NewMarotoBillGenerator()
	billPDFUC := billing.NewPDFUseCase(billRepo, orderRepo, clientRepo, productRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:  clientUC,
		ProductUC: productUC,
		OrderUC:   orderUC,
		BillPDF:   billPDFUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
