package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/churn-predictor/internal/application/usecase"
	"github.com/jhoicas/churn-predictor/internal/infrastructure/content"
	"github.com/jhoicas/churn-predictor/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName      string
	Lang         string
	PredictionUC *usecase.PredictionUseCase
	ReportUC     *usecase.ReportUseCase
	Content      *content.Library
	Metrics      nethttp.Handler // nil desactiva /metrics
	Log          *logger.Logger
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": deps.AppName,
			"model":   deps.PredictionUC.ModelName(),
		})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	// Formulario HTML
	formHandler := NewFormHandler(deps.PredictionUC, deps.ReportUC, deps.Content, deps.Lang)
	app.Get("/", formHandler.Index)
	app.Post("/predict", formHandler.Submit)
	app.Post("/predict/report", formHandler.Report)

	// API JSON
	api := app.Group("/api")
	predictionHandler := NewPredictionHandler(deps.PredictionUC)
	api.Post("/predictions", predictionHandler.Create)
	api.Get("/options", predictionHandler.Options)
}
