package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/churn-predictor/internal/application/dto"
	"github.com/jhoicas/churn-predictor/internal/application/ports"
)

// ReportUseCase predice y genera el PDF imprimible del resultado.
type ReportUseCase struct {
	predictions *PredictionUseCase
	generator   ports.ReportGenerator
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(predictions *PredictionUseCase, generator ports.ReportGenerator) *ReportUseCase {
	return &ReportUseCase{predictions: predictions, generator: generator, now: time.Now}
}

// Generate ejecuta la predicción y devuelve el PDF junto con la respuesta.
func (uc *ReportUseCase) Generate(ctx context.Context, req dto.PredictionRequest) ([]byte, *dto.PredictionResponse, error) {
	record, err := RecordFromRequest(req)
	if err != nil {
		uc.predictions.observeError("validation")
		return nil, nil, err
	}
	result, err := uc.predictions.PredictRecord(ctx, record)
	if err != nil {
		return nil, nil, err
	}
	resp := uc.predictions.Response(result)

	pdfBytes, err := uc.generator.GeneratePredictionReport(ctx, ports.PredictionReport{
		Record:      record,
		Vector:      result.Vector,
		Response:    resp,
		GeneratedAt: uc.now(),
	})
	if err != nil {
		uc.predictions.observeError("report")
		return nil, nil, fmt.Errorf("generar reporte: %w", err)
	}

	uc.predictions.log.Info().
		Str("prediction_id", resp.ID).
		Int("bytes", len(pdfBytes)).
		Msg("reporte PDF generado")

	return pdfBytes, resp, nil
}
