package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/vendedores-api/docs"
	"github.com/jhoicas/vendedores-api/internal/application/usecase"
	"github.com/jhoicas/vendedores-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/vendedores-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vendedores-api/internal/infrastructure/postgres"
	"github.com/jhoicas/vendedores-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/vendedores-api/internal/interfaces/http"
	"github.com/jhoicas/vendedores-api/pkg/config"
	"github.com/jhoicas/vendedores-api/pkg/logger"
)

// @title			Vendedores API
// @version		1.0
// @description	Gestión de vendedores: alta, consulta, edición, baja y listado paginado.
// @BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	goose.SetLogger(log)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		repo     repository.VendedorRepository
		txRunner usecase.VendedorTxRunner
	)
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		var db *sql.DB
		db, err = sqlite.Open(ctx, cfg.DB.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DB.SQLitePath).Msg("apertura de SQLite")
		}
		defer db.Close()
		repo = sqlite.NewVendedorRepository(db)
		txRunner = sqlite.NewTxRunner(db)
	default:
		if cfg.DB.AutoMigrate {
			if err := postgres.RunMigrations(ctx, cfg.DB); err != nil {
				log.Fatal().Err(err).Msg("migraciones PostgreSQL")
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo = postgres.NewVendedorRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	vendedorUC := usecase.NewVendedorUseCase(repo, txRunner, usecase.PageConfig{
		DefaultPerPage: cfg.Pagination.DefaultPerPage,
		MaxPerPage:     cfg.Pagination.MaxPerPage,
	})
	reportUC := usecase.NewReportUseCase(repo, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))

	app := httpRouter.NewApp(httpRouter.AppConfig{Name: cfg.App.Name}, log)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "./docs/swagger.json",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Vendedores API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if err := httpRouter.Router(app, httpRouter.RouterDeps{
		VendedorUC: vendedorUC,
		ReportUC:   reportUC,
		Log:        log,
	}); err != nil {
		log.Fatal().Err(err).Msg("registro de rutas")
	}

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
