package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/churn-predictor/internal/application/dto"
	"github.com/jhoicas/churn-predictor/internal/application/ports"
	"github.com/jhoicas/churn-predictor/internal/domain"
	"github.com/jhoicas/churn-predictor/internal/domain/churn"
	"github.com/jhoicas/churn-predictor/internal/domain/entity"
	"github.com/jhoicas/churn-predictor/pkg/format"
	"github.com/jhoicas/churn-predictor/pkg/logger"
)

// PredictionUseCase orquesta una predicción: formulario → vector → modelo → decisión.
//
// El clasificador se inyecta ya cargado y es de solo lectura; el caso de uso no
// guarda estado entre llamadas, así que una única instancia atiende todas las peticiones.
type PredictionUseCase struct {
	classifier ports.ChurnClassifier
	metrics    ports.PredictionMetrics
	log        *logger.Logger
	fmt        format.Formatter
	now        func() time.Time
}

// NewPredictionUseCase construye el caso de uso. metrics puede ser nil.
func NewPredictionUseCase(
	classifier ports.ChurnClassifier,
	metrics ports.PredictionMetrics,
	log *logger.Logger,
	lang string,
) *PredictionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PredictionUseCase{
		classifier: classifier,
		metrics:    metrics,
		log:        log.Component("prediction"),
		fmt:        format.New(lang),
		now:        time.Now,
	}
}

// ModelName nombre del artefacto cargado.
func (uc *PredictionUseCase) ModelName() string {
	return uc.classifier.Name()
}

// Predict valida la petición, ejecuta la predicción y arma la respuesta.
func (uc *PredictionUseCase) Predict(ctx context.Context, req dto.PredictionRequest) (*dto.PredictionResponse, error) {
	record, err := RecordFromRequest(req)
	if err != nil {
		uc.observeError("validation")
		return nil, err
	}

	result, err := uc.PredictRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	resp := uc.Response(result)
	if req.IncludeFeatures {
		resp.Features = result.Vector.Slice()
	}

	uc.log.Info().
		Str("prediction_id", resp.ID).
		Float64("probability", resp.Probability).
		Bool("high_risk", resp.HighRisk).
		Msg("predicción de churn")

	return resp, nil
}

// PredictRecord codifica el registro e invoca al clasificador una sola vez.
func (uc *PredictionUseCase) PredictRecord(ctx context.Context, record entity.CustomerRecord) (*churn.Result, error) {
	if err := record.Validate(); err != nil {
		uc.observeError("validation")
		return nil, err
	}

	vector := churn.Encode(record)

	start := uc.now()
	probability, err := uc.classifier.Predict(ctx, vector.Slice())
	elapsed := uc.now().Sub(start)
	if err != nil {
		uc.observeError("inference")
		uc.log.Error().Err(err).Str("model", uc.classifier.Name()).Msg("inferencia fallida")
		if errors.Is(err, domain.ErrInference) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInference, err)
	}

	decision := churn.Decide(probability)
	if uc.metrics != nil {
		uc.metrics.ObservePrediction(decision.HighRisk, probability, elapsed)
	}

	uc.log.Debug().
		Floats64("features", vector.Slice()).
		Dur("inference", elapsed).
		Msg("vector codificado")

	return &churn.Result{Vector: vector, Decision: decision}, nil
}

// Response convierte el resultado del dominio al DTO de salida.
func (uc *PredictionUseCase) Response(result *churn.Result) *dto.PredictionResponse {
	d := result.Decision
	return &dto.PredictionResponse{
		ID:             uuid.New().String(),
		Probability:    d.Probability,
		Confidence:     d.Confidence,
		ConfidenceText: uc.fmt.Percent(d.Confidence),
		HighRisk:       d.HighRisk,
		Label:          d.Label,
		Recommendation: d.Recommendation,
		Outcome:        d.Outcome,
		Model:          uc.classifier.Name(),
	}
}

func (uc *PredictionUseCase) observeError(reason string) {
	if uc.metrics != nil {
		uc.metrics.ObserveError(reason)
	}
}

// RecordFromRequest traduce los textos de los widgets a las enumeraciones del dominio.
func RecordFromRequest(req dto.PredictionRequest) (entity.CustomerRecord, error) {
	var (
		r   entity.CustomerRecord
		err error
	)

	if r.Gender, err = entity.ParseGender(req.Gender); err != nil {
		return r, err
	}
	switch req.SeniorCitizen {
	case 0, 1:
		r.SeniorCitizen = req.SeniorCitizen == 1
	default:
		return r, fmt.Errorf("%w: senior_citizen debe ser 0 o 1", domain.ErrInvalidInput)
	}
	if r.Partner, err = entity.ParseYesNo("partner", req.Partner); err != nil {
		return r, err
	}
	if r.Dependents, err = entity.ParseYesNo("dependents", req.Dependents); err != nil {
		return r, err
	}
	if r.PhoneService, err = entity.ParseYesNo("phone_service", req.PhoneService); err != nil {
		return r, err
	}
	if r.MultipleLines, err = entity.ParseMultipleLines(req.MultipleLines); err != nil {
		return r, err
	}
	if r.InternetService, err = entity.ParseInternetService(req.InternetService); err != nil {
		return r, err
	}

	addons := []struct {
		field string
		value string
		dst   *entity.InternetAddon
	}{
		{"online_security", req.OnlineSecurity, &r.OnlineSecurity},
		{"online_backup", req.OnlineBackup, &r.OnlineBackup},
		{"device_protection", req.DeviceProtection, &r.DeviceProtection},
		{"tech_support", req.TechSupport, &r.TechSupport},
		{"streaming_tv", req.StreamingTV, &r.StreamingTV},
		{"streaming_movies", req.StreamingMovies, &r.StreamingMovies},
	}
	for _, a := range addons {
		if *a.dst, err = entity.ParseInternetAddon(a.field, a.value); err != nil {
			return r, err
		}
	}

	if r.Contract, err = entity.ParseContract(req.Contract); err != nil {
		return r, err
	}
	if r.PaymentMethod, err = entity.ParsePaymentMethod(req.PaymentMethod); err != nil {
		return r, err
	}

	r.TenureMonths = req.TenureMonths
	r.PaperlessBilling = req.PaperlessBilling
	// decimal.NewFromFloat entra en pánico con NaN e Inf
	if !isFinite(req.MonthlyCharges) {
		return r, fmt.Errorf("%w: monthly_charges debe ser un número finito", domain.ErrInvalidInput)
	}
	if !isFinite(req.TotalCharges) {
		return r, fmt.Errorf("%w: total_charges debe ser un número finito", domain.ErrInvalidInput)
	}
	// Los sliders avanzan de 0.01 en 0.01
	r.MonthlyCharges = decimal.NewFromFloat(req.MonthlyCharges).Round(2)
	r.TotalCharges = decimal.NewFromFloat(req.TotalCharges).Round(2)

	return r, r.Validate()
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// RequestFromRecord operación inversa (valores iniciales del formulario).
func RequestFromRecord(r entity.CustomerRecord) dto.PredictionRequest {
	senior := 0
	if r.SeniorCitizen {
		senior = 1
	}
	return dto.PredictionRequest{
		Gender:           r.Gender.String(),
		SeniorCitizen:    senior,
		Partner:          r.Partner.String(),
		Dependents:       r.Dependents.String(),
		TenureMonths:     r.TenureMonths,
		PhoneService:     r.PhoneService.String(),
		MultipleLines:    r.MultipleLines.String(),
		InternetService:  r.InternetService.String(),
		OnlineSecurity:   r.OnlineSecurity.String(),
		OnlineBackup:     r.OnlineBackup.String(),
		DeviceProtection: r.DeviceProtection.String(),
		TechSupport:      r.TechSupport.String(),
		StreamingTV:      r.StreamingTV.String(),
		StreamingMovies:  r.StreamingMovies.String(),
		Contract:         r.Contract.String(),
		PaperlessBilling: r.PaperlessBilling,
		PaymentMethod:    r.PaymentMethod.String(),
		MonthlyCharges:   r.MonthlyCharges.InexactFloat64(),
		TotalCharges:     r.TotalCharges.InexactFloat64(),
	}
}
