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

	appanalytics "github.com/jhoicas/gestion-pro/internal/application/analytics"
	"github.com/jhoicas/gestion-pro/internal/application/auth"
	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/application/usecase"
	infraai "github.com/jhoicas/gestion-pro/internal/infrastructure/ai"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/gestion-pro/internal/infrastructure/pdf"
	infras3 "github.com/jhoicas/gestion-pro/internal/infrastructure/s3"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/gestion-pro/internal/interfaces/http"
	"github.com/jhoicas/gestion-pro/pkg/config"
	"github.com/jhoicas/gestion-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("session", cfg.Session.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	repo, closeStores, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer closeStores()

	initial, err := state.Bootstrap(ctx, repo, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("carga inicial de datos")
	}
	store := state.New(initial)
	defer store.Close()
	log.Info().
		Int("products", len(initial.Products)).
		Int("sales", len(initial.Sales)).
		Msg("datos cargados")

	m := metrics.New()

	activityUC := usecase.NewActivityUseCase(store, repo, time.Now, log.Component("activity"))
	productUC := usecase.NewProductUseCase(store, repo, activityUC, time.Now)
	saleUC := usecase.NewSaleUseCase(store, repo, activityUC, m, time.Now, log.Component("sales"))
	settingsUC := usecase.NewSettingsUseCase(store, repo, activityUC, time.Now)
	dashboardUC := appanalytics.NewDashboardUseCase(store, time.Now)
	reportsUC := appanalytics.NewReportsUseCase(store)

	llm := infraai.NewFromConfig(cfg.AI)
	if llm == nil {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("sin API key de IA: se usarán recomendaciones por defecto")
	}
	insightUC := usecase.NewInsightUseCase(store, llm, m, cfg.AI.Timeout(), log.Component("insights"))

	// Subida a S3 opcional: sin bucket las exportaciones solo se descargan.
	var uploader ports.ExportUploader
	if cfg.Export.Enabled() {
		u, err := infras3.New(ctx, cfg.Export)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		uploader = u
	}
	exportUC := usecase.NewExportUseCase(store, uploader, time.Now)

	authUC := auth.NewAuthUseCase(repo, repo, activityUC, m, auth.Options{
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		LoginDelay:    cfg.Auth.LoginDelay(),
		SessionExpiry: cfg.Session.Expiry(),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.AI.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", m.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		SaleUC:      saleUC,
		SettingsUC:  settingsUC,
		ExportUC:    exportUC,
		InsightUC:   insightUC,
		ActivityUC:  activityUC,
		DashboardUC: dashboardUC,
		ReportsUC:   reportsUC,
		Receipts:    infrapdf.NewMarotoReceiptGenerator(),
		ShopName:    cfg.App.Name,
		JWTSecret:   cfg.JWT.Secret,
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
