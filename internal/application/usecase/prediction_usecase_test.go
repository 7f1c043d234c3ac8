package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/churn-predictor/internal/application/dto"
	"github.com/jhoicas/churn-predictor/internal/application/usecase"
	"github.com/jhoicas/churn-predictor/internal/domain"
	"github.com/jhoicas/churn-predictor/internal/domain/churn"
	"github.com/jhoicas/churn-predictor/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// stubClassifier devuelve una probabilidad fija y guarda el último vector recibido.
type stubClassifier struct {
	probability float64
	err         error
	calls       int
	last        []float64
}

func (s *stubClassifier) Predict(_ context.Context, features []float64) (float64, error) {
	s.calls++
	s.last = features
	return s.probability, s.err
}

func (s *stubClassifier) Name() string { return "stub" }

type recordedMetrics struct {
	high, low int
	errors    []string
}

func (m *recordedMetrics) ObservePrediction(highRisk bool, _ float64, _ time.Duration) {
	if highRisk {
		m.high++
	} else {
		m.low++
	}
}

func (m *recordedMetrics) ObserveError(reason string) { m.errors = append(m.errors, reason) }

func validRequest() dto.PredictionRequest {
	return dto.PredictionRequest{
		Gender:           "Male",
		SeniorCitizen:    0,
		Partner:          "No",
		Dependents:       "No",
		TenureMonths:     12,
		PhoneService:     "Yes",
		MultipleLines:    "No",
		InternetService:  "Fiber optic",
		OnlineSecurity:   "No",
		OnlineBackup:     "Yes",
		DeviceProtection: "No",
		TechSupport:      "No",
		StreamingTV:      "Yes",
		StreamingMovies:  "No internet service",
		Contract:         "Month-to-month",
		PaperlessBilling: true,
		PaymentMethod:    "Electronic check",
		MonthlyCharges:   60.0,
		TotalCharges:     720.0,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Predict
// ──────────────────────────────────────────────────────────────────────────────

func TestPredict_AltoRiesgo(t *testing.T) {
	clf := &stubClassifier{probability: 0.7241}
	m := &recordedMetrics{}
	uc := usecase.NewPredictionUseCase(clf, m, nil, "en")

	resp, err := uc.Predict(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, clf.calls, "una sola llamada al modelo por petición")
	assert.Len(t, clf.last, churn.VectorSize)
	assert.True(t, resp.HighRisk)
	assert.Equal(t, churn.LabelHighRisk, resp.Label)
	assert.Equal(t, churn.RecommendationHighRisk, resp.Recommendation)
	assert.Equal(t, "leave", resp.Outcome)
	assert.Equal(t, "72.41%", resp.ConfidenceText)
	assert.Equal(t, "stub", resp.Model)
	assert.Nil(t, resp.Features)
	_, err = uuid.Parse(resp.ID)
	assert.NoError(t, err, "el id debe ser un UUID")
	assert.Equal(t, 1, m.high)
}

func TestPredict_UmbralExactoEsAltoRiesgo(t *testing.T) {
	uc := usecase.NewPredictionUseCase(&stubClassifier{probability: 0.5}, nil, nil, "en")

	resp, err := uc.Predict(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.HighRisk)
	assert.Equal(t, "50.00%", resp.ConfidenceText)
}

func TestPredict_BajoRiesgoConfianzaComplementaria(t *testing.T) {
	uc := usecase.NewPredictionUseCase(&stubClassifier{probability: 0.25}, nil, nil, "en")

	resp, err := uc.Predict(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.HighRisk)
	assert.InDelta(t, 0.75, resp.Confidence, 1e-12)
	assert.Equal(t, "75.00%", resp.ConfidenceText)
	assert.Equal(t, "stay", resp.Outcome)
}

func TestPredict_VectorEnviadoAlModelo(t *testing.T) {
	clf := &stubClassifier{probability: 0.1}
	uc := usecase.NewPredictionUseCase(clf, nil, nil, "en")

	req := validRequest()
	req.IncludeFeatures = true
	resp, err := uc.Predict(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, clf.last, resp.Features)
	assert.Equal(t, 12.0/72.0, clf.last[4])
	assert.Equal(t, 60.0/118.0, clf.last[14])
	assert.Equal(t, 720.0/8684.0, clf.last[15])
	assert.Equal(t, 0.0, clf.last[12], "streaming_movies=No internet service codifica 0")
	assert.Equal(t, 1.0, clf.last[17], "fiber optic")
	assert.Equal(t, 1.0, clf.last[24], "electronic check")
}

func TestPredict_ValorFueraDeDominio(t *testing.T) {
	clf := &stubClassifier{probability: 0.9}
	m := &recordedMetrics{}
	uc := usecase.NewPredictionUseCase(clf, m, nil, "en")

	req := validRequest()
	req.PaymentMethod = "Bitcoin"
	_, err := uc.Predict(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, clf.calls, "no se invoca el modelo con entrada inválida")
	assert.Equal(t, []string{"validation"}, m.errors)
}

func TestPredict_RangosNumericos(t *testing.T) {
	uc := usecase.NewPredictionUseCase(&stubClassifier{}, nil, nil, "en")

	req := validRequest()
	req.TenureMonths = 80
	_, err := uc.Predict(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = validRequest()
	req.SeniorCitizen = 2
	_, err = uc.Predict(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = validRequest()
	req.TotalCharges = 9000
	_, err = uc.Predict(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPredict_CargosNoFinitos(t *testing.T) {
	cases := map[string]func(r *dto.PredictionRequest){
		"monthly NaN":  func(r *dto.PredictionRequest) { r.MonthlyCharges = math.NaN() },
		"monthly +Inf": func(r *dto.PredictionRequest) { r.MonthlyCharges = math.Inf(1) },
		"total -Inf":   func(r *dto.PredictionRequest) { r.TotalCharges = math.Inf(-1) },
		"total NaN":    func(r *dto.PredictionRequest) { r.TotalCharges = math.NaN() },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			clf := &stubClassifier{probability: 0.9}
			uc := usecase.NewPredictionUseCase(clf, nil, nil, "en")

			req := validRequest()
			mutate(&req)
			var err error
			require.NotPanics(t, func() { _, err = uc.Predict(context.Background(), req) })
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, clf.calls)
		})
	}
}

func TestPredict_FalloDelModelo(t *testing.T) {
	m := &recordedMetrics{}
	uc := usecase.NewPredictionUseCase(&stubClassifier{err: errors.New("tensor roto")}, m, nil, "en")

	_, err := uc.Predict(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInference)
	assert.Contains(t, err.Error(), "tensor roto")
	assert.Equal(t, []string{"inference"}, m.errors)
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión petición ↔ registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordFromRequest_IdaYVuelta(t *testing.T) {
	def := entity.DefaultCustomerRecord()
	req := usecase.RequestFromRecord(def)

	got, err := usecase.RecordFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, churn.Encode(def), churn.Encode(got))
	assert.Equal(t, "No phone service", req.MultipleLines)
	assert.Equal(t, 60.0, req.MonthlyCharges)
}

func TestRecordFromRequest_RedondeaCentavos(t *testing.T) {
	req := validRequest()
	req.MonthlyCharges = 59.994

	r, err := usecase.RecordFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "59.99", r.MonthlyCharges.StringFixed(2))
}
