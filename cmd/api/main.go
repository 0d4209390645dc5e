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
	"github.com/tu-usuario/dwoms-api/internal/application/analytics"
	"github.com/tu-usuario/dwoms-api/internal/application/auth"
	"github.com/tu-usuario/dwoms-api/internal/application/inventory"
	"github.com/tu-usuario/dwoms-api/internal/application/production"
	"github.com/tu-usuario/dwoms-api/internal/application/reports"
	"github.com/tu-usuario/dwoms-api/internal/application/tasks"
	"github.com/tu-usuario/dwoms-api/internal/application/users"
	"github.com/tu-usuario/dwoms-api/internal/infrastructure/kvstore"
	infrapdf "github.com/tu-usuario/dwoms-api/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/dwoms-api/internal/interfaces/http"
	"github.com/tu-usuario/dwoms-api/pkg/config"
	"github.com/tu-usuario/dwoms-api/pkg/logger"
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

	store, err := kvstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir almacén de colecciones")
	}
	defer store.Close()

	userRepo := kvstore.NewUserRepository(store)
	sessionRepo := kvstore.NewSessionRepository(store)
	productionRepo := kvstore.NewProductionRepository(store)
	taskRepo := kvstore.NewTaskRepository(store)
	inventoryRepo := kvstore.NewInventoryRepository(store)

	authUC := auth.NewUseCase(userRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.Options{
		DemoMode:   cfg.Auth.DemoMode,
		LoginDelay: time.Duration(cfg.Auth.LoginDelayMS) * time.Millisecond,
	})
	userUC := users.NewUseCase(userRepo)
	productionUC := production.NewUseCase(productionRepo, userRepo)
	taskUC := tasks.NewUseCase(taskRepo, userRepo)
	inventoryUC := inventory.NewUseCase(inventoryRepo)

	// PDF: representación paginada de los reportes exportables
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewUseCase(productionRepo, taskRepo, inventoryRepo, pdfGenerator)
	dashboardUC := analytics.NewDashboardUseCase(productionRepo, taskRepo, inventoryRepo)

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
		Title:    "DWOMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		ProductionUC: productionUC,
		TaskUC:       taskUC,
		InventoryUC:  inventoryUC,
		ReportUC:     reportUC,
		DashboardUC:  dashboardUC,
		Sessions:     sessionRepo,
		JWTSecret:    cfg.JWT.Secret,
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
