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
	"github.com/jhoicas/churn-predictor/docs"
	"github.com/jhoicas/churn-predictor/internal/application/usecase"
	"github.com/jhoicas/churn-predictor/internal/infrastructure/content"
	"github.com/jhoicas/churn-predictor/internal/infrastructure/metrics"
	"github.com/jhoicas/churn-predictor/internal/infrastructure/model"
	infrapdf "github.com/jhoicas/churn-predictor/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/churn-predictor/internal/interfaces/http"
	"github.com/jhoicas/churn-predictor/pkg/config"
	"github.com/jhoicas/churn-predictor/pkg/logger"
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
		Msg("iniciando aplicación")

	// El modelo se carga una sola vez; sin él no hay servicio.
	network, err := model.LoadFile(cfg.Model.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Model.Path).Msg("cargar modelo")
	}
	log.Info().Str("model", network.Name()).Str("path", cfg.Model.Path).Msg("modelo cargado")

	pages, err := content.Load(cfg.Content.Lang, cfg.Content.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar contenido")
	}

	prom := metrics.NewPrometheus(true)
	predictionUC := usecase.NewPredictionUseCase(network, prom, log, cfg.Content.Lang)
	reportUC := usecase.NewReportUseCase(predictionUC, infrapdf.NewMarotoReportGenerator(cfg.Content.Lang))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerFile != "" {
		if _, err := os.Stat(cfg.HTTP.SwaggerFile); err != nil {
			log.Warn().Err(err).Msg("swagger deshabilitado")
		} else {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerFile,
				Path:     "docs",
				Title:    docs.SwaggerInfo.Title,
			}))
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:      cfg.App.Name,
		Lang:         cfg.Content.Lang,
		PredictionUC: predictionUC,
		ReportUC:     reportUC,
		Content:      pages,
		Metrics:      prom.Handler(),
		Log:          log,
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
