package churn

// RiskThreshold probabilidad a partir de la cual (inclusive) el cliente es de alto riesgo.
const RiskThreshold = 0.50

// Textos fijos del resultado.
const (
	LabelHighRisk = "High Risk of Churn"
	LabelLowRisk  = "Low Risk of Churn"

	RecommendationHighRisk = "Consider offering a retention incentive or support call."
	RecommendationLowRisk  = "No immediate action needed; keep up the great service!"

	OutcomeLeave = "leave"
	OutcomeStay  = "stay"
)

// Decision resultado cualitativo derivado de la probabilidad del modelo.
type Decision struct {
	Probability    float64
	HighRisk       bool
	Confidence     float64 // probabilidad del desenlace predicho
	Label          string
	Recommendation string
	Outcome        string // "leave" | "stay"
}

// Decide aplica el umbral y arma las etiquetas. El empate exacto en 0.50 es alto riesgo.
func Decide(probability float64) Decision {
	if probability >= RiskThreshold {
		return Decision{
			Probability:    probability,
			HighRisk:       true,
			Confidence:     probability,
			Label:          LabelHighRisk,
			Recommendation: RecommendationHighRisk,
			Outcome:        OutcomeLeave,
		}
	}
	return Decision{
		Probability:    probability,
		HighRisk:       false,
		Confidence:     1 - probability,
		Label:          LabelLowRisk,
		Recommendation: RecommendationLowRisk,
		Outcome:        OutcomeStay,
	}
}

// Result una predicción completa: vector enviado, probabilidad y decisión.
type Result struct {
	Vector   FeatureVector
	Decision Decision
}
