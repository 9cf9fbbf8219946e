package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Inventario-local/internal/application/inventory"
	"github.com/jhoicas/Inventario-local/internal/application/session"
	"github.com/jhoicas/Inventario-local/internal/application/usecase"
	"github.com/jhoicas/Inventario-local/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/Inventario-local/internal/interfaces/http"
	"github.com/jhoicas/Inventario-local/pkg/config"
	"github.com/jhoicas/Inventario-local/pkg/logger"
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
		Str("data_dir", cfg.Storage.DataDir).
		Msg("iniciando aplicación")

	manager := sqlite.NewStoreManager(cfg.Storage.DataDir)
	defer manager.Disconnect()

	categoryRepo := sqlite.NewCategoryRepository(manager)
	productRepo := sqlite.NewProductRepository(manager)
	movementRepo := sqlite.NewMovementRepository(manager)
	txRunner := sqlite.NewTxRunner(manager)

	sessionUC := session.NewSessionUseCase(manager, manager.DataDir())
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, movementRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, productRepo)

	// Reconexión automática al último almacén usado en la sesión anterior.
	if name, err := sessionUC.Reconnect(); err != nil {
		log.Warn().Err(err).Msg("no se pudo reconectar al último almacén")
	} else if name != "" {
		log.Info().Str("store", name).Msg("almacén reconectado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:  sessionUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		MovementUC: movementUC,
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
