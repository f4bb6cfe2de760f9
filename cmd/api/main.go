package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dareyes/inventario-pyme/internal/application/analytics"
	"github.com/dareyes/inventario-pyme/internal/application/inventory"
	"github.com/dareyes/inventario-pyme/internal/application/requirement"
	"github.com/dareyes/inventario-pyme/internal/application/usecase"
	"github.com/dareyes/inventario-pyme/internal/infrastructure/postgres"
	"github.com/dareyes/inventario-pyme/internal/infrastructure/telemetry"
	httpRouter "github.com/dareyes/inventario-pyme/internal/interfaces/http"
	"github.com/dareyes/inventario-pyme/pkg/config"
	"github.com/dareyes/inventario-pyme/pkg/logger"
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

	tracing, err := telemetry.Init(ctx, cfg.Telemetry, cfg.App.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("inicialización de trazas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	requirementRepo := postgres.NewRequirementRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, movementRepo)
	requirementUC := requirement.NewUseCase(txRunner, requirementRepo, productRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo, registerMovementUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.TraceMiddleware(cfg.App.Name))
	app.Use(httpRouter.LogMiddleware(log))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		CategoryUC:       categoryUC,
		SupplierUC:       supplierUC,
		RegisterMovement: registerMovementUC,
		RequirementUC:    requirementUC,
		DashboardUC:      dashboardUC,
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
	if err := tracing.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del exportador de trazas")
	}

	log.Info().Msg("aplicación detenida")
}
