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
	"github.com/shopspring/decimal"

	"github.com/sidheshsarda/mis/internal/application/auth"
	"github.com/sidheshsarda/mis/internal/application/batching"
	"github.com/sidheshsarda/mis/internal/application/planning"
	"github.com/sidheshsarda/mis/internal/application/usecase"
	infrapdf "github.com/sidheshsarda/mis/internal/infrastructure/pdf"
	"github.com/sidheshsarda/mis/internal/infrastructure/postgres"
	httpRouter "github.com/sidheshsarda/mis/internal/interfaces/http"
	"github.com/sidheshsarda/mis/pkg/config"
	"github.com/sidheshsarda/mis/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	binRepo := postgres.NewBinRepository(pool)
	prodRepo := postgres.NewProductionEntryRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	refRepo := postgres.NewReferenceRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := batching.NewLedgerUseCase(txRunner, binRepo, prodRepo, stockRepo)
	snapshotUC := batching.NewSnapshotUseCase(snapshotRepo)
	planning.DefaultRollWeightKG = decimal.NewFromInt(int64(cfg.Mill.DefaultRollWeightKG))
	issueRequiredUC := planning.NewIssueRequiredUseCase(planRepo, refRepo, snapshotRepo, cfg.Mill.SnapshotHour)
	referenceUC := usecase.NewReferenceUseCase(binRepo, refRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: reporte imprimible del corte de stock
	snapshotPDF := infrapdf.NewMarotoSnapshotGenerator()

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
		Title:    "Mill Spreader Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:      ledgerUC,
		SnapshotUC:    snapshotUC,
		SnapshotPDF:   snapshotPDF,
		IssueRequired: issueRequiredUC,
		ReferenceUC:   referenceUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
