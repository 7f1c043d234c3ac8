package dto

// PredictionRequest respuestas del formulario (JSON en /api/predictions, urlencoded en /predict).
// Los campos categóricos usan el texto exacto de las opciones del widget.
type PredictionRequest struct {
	Gender           string  `json:"gender" form:"gender" example:"Female"`
	SeniorCitizen    int     `json:"senior_citizen" form:"senior_citizen" example:"0"` // 0 | 1
	Partner          string  `json:"partner" form:"partner" example:"Yes"`
	Dependents       string  `json:"dependents" form:"dependents" example:"No"`
	TenureMonths     int     `json:"tenure" form:"tenure" example:"12"`
	PhoneService     string  `json:"phone_service" form:"phone_service" example:"Yes"`
	MultipleLines    string  `json:"multiple_lines" form:"multiple_lines" example:"No"`
	InternetService  string  `json:"internet_service" form:"internet_service" example:"Fiber optic"`
	OnlineSecurity   string  `json:"online_security" form:"online_security" example:"No"`
	OnlineBackup     string  `json:"online_backup" form:"online_backup" example:"Yes"`
	DeviceProtection string  `json:"device_protection" form:"device_protection" example:"No"`
	TechSupport      string  `json:"tech_support" form:"tech_support" example:"No"`
	StreamingTV      string  `json:"streaming_tv" form:"streaming_tv" example:"Yes"`
	StreamingMovies  string  `json:"streaming_movies" form:"streaming_movies" example:"Yes"`
	Contract         string  `json:"contract" form:"contract" example:"Month-to-month"`
	PaperlessBilling bool    `json:"paperless_billing" form:"paperless_billing" example:"true"`
	PaymentMethod    string  `json:"payment_method" form:"payment_method" example:"Electronic check"`
	MonthlyCharges   float64 `json:"monthly_charges" form:"monthly_charges" example:"60.00"`
	TotalCharges     float64 `json:"total_charges" form:"total_charges" example:"720.50"`

	// IncludeFeatures devuelve el vector codificado en la respuesta (depuración).
	IncludeFeatures bool `json:"include_features,omitempty" form:"-"`
}

// PredictionResponse resultado de una predicción.
type PredictionResponse struct {
	ID             string    `json:"id"`
	Probability    float64   `json:"probability"`
	Confidence     float64   `json:"confidence"`
	ConfidenceText string    `json:"confidence_text"` // ej. "72.41%"
	HighRisk       bool      `json:"high_risk"`
	Label          string    `json:"label"`
	Recommendation string    `json:"recommendation"`
	Outcome        string    `json:"outcome"` // leave | stay
	Model          string    `json:"model"`
	Features       []float64 `json:"features,omitempty"`
}

// OptionsResponse dominios cerrados de cada widget y rangos numéricos.
type OptionsResponse struct {
	Categorical map[string][]string     `json:"categorical"`
	Numeric     map[string]NumericRange `json:"numeric"`
	Features    []string                `json:"features"` // orden del vector
}

// NumericRange rango y paso de un slider.
type NumericRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}
