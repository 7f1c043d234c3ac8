// Package metrics expone las métricas de predicción en formato Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/churn-predictor/internal/application/ports"
)

var _ ports.PredictionMetrics = (*Prometheus)(nil)

const namespace = "churn"

// Prometheus registro propio (no el global) con las métricas del predictor.
type Prometheus struct {
	registry    *prometheus.Registry
	predictions *prometheus.CounterVec
	errors      *prometheus.CounterVec
	inference   prometheus.Histogram
	probability prometheus.Histogram
}

// NewPrometheus crea y registra las métricas. Con withRuntime se añaden los
// colectores de proceso y runtime de Go.
func NewPrometheus(withRuntime bool) *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Predicciones servidas por nivel de riesgo.",
		}, []string{"risk"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_errors_total",
			Help:      "Predicciones fallidas por motivo.",
		}, []string{"reason"}),
		inference: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inference_duration_seconds",
			Help:      "Duración de la llamada al clasificador.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		}),
		probability: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "probability",
			Help:      "Distribución de la probabilidad de churn devuelta por el modelo.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 9),
		}),
	}

	p.registry.MustRegister(p.predictions, p.errors, p.inference, p.probability)
	if withRuntime {
		p.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return p
}

// ObservePrediction registra una predicción exitosa.
func (p *Prometheus) ObservePrediction(highRisk bool, probability float64, inference time.Duration) {
	risk := "low"
	if highRisk {
		risk = "high"
	}
	p.predictions.WithLabelValues(risk).Inc()
	p.inference.Observe(inference.Seconds())
	p.probability.Observe(probability)
}

// ObserveError registra una predicción fallida.
func (p *Prometheus) ObserveError(reason string) {
	p.errors.WithLabelValues(reason).Inc()
}

// Handler devuelve el handler HTTP de exposición (/metrics).
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry acceso al registro (tests).
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
