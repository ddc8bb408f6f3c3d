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

	"github.com/necesito-esto/admin-api/internal/application/auth"
	"github.com/necesito-esto/admin-api/internal/application/correo"
	"github.com/necesito-esto/admin-api/internal/application/estadisticas"
	"github.com/necesito-esto/admin-api/internal/application/usecase"
	infraemail "github.com/necesito-esto/admin-api/internal/infrastructure/email"
	infrapdf "github.com/necesito-esto/admin-api/internal/infrastructure/pdf"
	"github.com/necesito-esto/admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/necesito-esto/admin-api/internal/interfaces/http"
	"github.com/necesito-esto/admin-api/pkg/config"
	"github.com/necesito-esto/admin-api/pkg/logger"
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

	demandaRepo := postgres.NewDemandaRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	identityRepo := postgres.NewIdentityRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	taxonomiaRepo := postgres.NewTaxonomiaRepository(pool)
	estadisticasRepo := postgres.NewEstadisticasRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sender := infraemail.NewSendgridSender(cfg.Mail)
	notificador := correo.NewNotificador(sender)
	bulkDispatcher := correo.NewBulkDispatcher(correo.BulkConfig{
		TamanoLote:       cfg.Bulk.TamanoLote,
		TasaPorSegundo:   cfg.Bulk.TasaPorSegundo,
		Rafaga:           cfg.Bulk.Rafaga,
		MaxDestinatarios: cfg.Bulk.MaxDestinatarios,
		Timeout:          time.Duration(cfg.Bulk.TimeoutSegundos) * time.Second,
	}, profileRepo, sender, log)

	reportePagos := infrapdf.NewReportePagos()

	authUC := auth.NewUseCase(identityRepo, profileRepo, cfg.JWT, log)
	demandaUC := usecase.NewDemandaUseCase(demandaRepo, notificador, log)
	usuarioUC := usecase.NewUsuarioUseCase(profileRepo, taxonomiaRepo, txRunner, notificador, log)
	pagoUC := usecase.NewPagoUseCase(pagoRepo, demandaRepo, reportePagos)
	taxonomiaUC := usecase.NewTaxonomiaUseCase(taxonomiaRepo)
	estadisticasUC := estadisticas.NewSnapshotUseCase(estadisticasRepo)

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
		Title:    "Necesito Esto! Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		DemandaUC:      demandaUC,
		UsuarioUC:      usuarioUC,
		PagoUC:         pagoUC,
		TaxonomiaUC:    taxonomiaUC,
		EstadisticasUC: estadisticasUC,
		Notificador:    notificador,
		BulkDispatcher: bulkDispatcher,
		JWTSecret:      cfg.JWT.Secret,
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
