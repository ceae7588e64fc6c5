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
	"github.com/jhoicas/esign-api/internal/application/auth"
	"github.com/jhoicas/esign-api/internal/application/signing"
	"github.com/jhoicas/esign-api/internal/application/usecase"
	"github.com/jhoicas/esign-api/internal/infrastructure/postgres"
	"github.com/jhoicas/esign-api/internal/infrastructure/zapsign"
	httpRouter "github.com/jhoicas/esign-api/internal/interfaces/http"
	"github.com/jhoicas/esign-api/pkg/config"
	"github.com/jhoicas/esign-api/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	signerRepo := postgres.NewSignerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cliente del proveedor de firma electrónica (ZapSign).
	gateway := zapsign.NewClient(cfg.ZapSign)

	authUC := auth.NewAuthUseCase(companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)

	// Orquestación: persistencia local → registro en el proveedor →
	// conciliación transaccional del documento y sus firmantes.
	createDocumentUC := signing.NewCreateDocumentUseCase(documentRepo, signerRepo, gateway, txRunner, log)
	documentUC := signing.NewDocumentUseCase(documentRepo, signerRepo, log)
	signerUC := signing.NewSignerUseCase(signerRepo, documentRepo, log)

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
		Title:    "eSign API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		CompanyUC:        companyUC,
		CreateDocumentUC: createDocumentUC,
		DocumentUC:       documentUC,
		SignerUC:         signerUC,
		JWTSecret:        cfg.JWT.Secret,
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
