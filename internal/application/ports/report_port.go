package ports

import (
	"context"
	"time"

	"github.com/jhoicas/churn-predictor/internal/application/dto"
	"github.com/jhoicas/churn-predictor/internal/domain/churn"
	"github.com/jhoicas/churn-predictor/internal/domain/entity"
)

// PredictionReport datos necesarios para el reporte imprimible de una predicción.
type PredictionReport struct {
	Record      entity.CustomerRecord
	Vector      churn.FeatureVector
	Response    *dto.PredictionResponse
	GeneratedAt time.Time
}

// ReportGenerator puerto de salida para generar el PDF del resultado.
type ReportGenerator interface {
	GeneratePredictionReport(ctx context.Context, report PredictionReport) ([]byte, error)
}
