package ports

import "time"

// PredictionMetrics puerto de salida para instrumentar las predicciones.
type PredictionMetrics interface {
	ObservePrediction(highRisk bool, probability float64, inference time.Duration)
	ObserveError(reason string)
}
