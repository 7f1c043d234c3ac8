package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/churn-predictor/internal/domain"
)

// Rangos de los campos numéricos (los mismos que limitan los sliders del formulario).
const (
	MaxTenureMonths = 72
	MaxMonthly      = 118
	MaxTotal        = 8684
)

// CustomerRecord respuestas del formulario para una única predicción.
// Objeto de valor: no se persiste ni se comparte entre peticiones.
type CustomerRecord struct {
	Gender           Gender
	SeniorCitizen    bool
	Partner          YesNo
	Dependents       YesNo
	TenureMonths     int
	PhoneService     YesNo
	MultipleLines    MultipleLines
	InternetService  InternetService
	OnlineSecurity   InternetAddon
	OnlineBackup     InternetAddon
	DeviceProtection InternetAddon
	TechSupport      InternetAddon
	StreamingTV      InternetAddon
	StreamingMovies  InternetAddon
	Contract         Contract
	PaperlessBilling bool
	PaymentMethod    PaymentMethod
	MonthlyCharges   decimal.Decimal // USD
	TotalCharges     decimal.Decimal // USD
}

// DefaultCustomerRecord valores iniciales de los widgets del formulario.
func DefaultCustomerRecord() CustomerRecord {
	return CustomerRecord{
		Gender:           GenderFemale,
		Partner:          Yes,
		Dependents:       Yes,
		TenureMonths:     12,
		PhoneService:     Yes,
		MultipleLines:    MultipleLinesNoPhoneService,
		InternetService:  InternetDSL,
		Contract:         ContractMonthToMonth,
		PaperlessBilling: true,
		PaymentMethod:    PaymentBankTransfer,
		MonthlyCharges:   decimal.NewFromInt(60),
		TotalCharges:     decimal.Zero,
	}
}

// Validate comprueba que cada campo esté dentro del dominio de su widget.
func (r CustomerRecord) Validate() error {
	if !inDomain(r.Gender, Genders) ||
		!inDomain(r.Partner, YesNoOptions) ||
		!inDomain(r.Dependents, YesNoOptions) ||
		!inDomain(r.PhoneService, YesNoOptions) ||
		!inDomain(r.MultipleLines, MultipleLinesOptions) ||
		!inDomain(r.InternetService, InternetServices) ||
		!inDomain(r.Contract, Contracts) ||
		!inDomain(r.PaymentMethod, PaymentMethods) {
		return fmt.Errorf("%w: opción categórica fuera de dominio", domain.ErrInvalidInput)
	}
	for _, a := range r.Addons() {
		if !inDomain(a, InternetAddonOptions) {
			return fmt.Errorf("%w: servicio adicional fuera de dominio", domain.ErrInvalidInput)
		}
	}
	if r.TenureMonths < 0 || r.TenureMonths > MaxTenureMonths {
		return fmt.Errorf("%w: tenure debe estar entre 0 y %d meses", domain.ErrInvalidInput, MaxTenureMonths)
	}
	if r.MonthlyCharges.IsNegative() || r.MonthlyCharges.GreaterThan(decimal.NewFromInt(MaxMonthly)) {
		return fmt.Errorf("%w: monthly_charges debe estar entre 0 y %d", domain.ErrInvalidInput, MaxMonthly)
	}
	if r.TotalCharges.IsNegative() || r.TotalCharges.GreaterThan(decimal.NewFromInt(MaxTotal)) {
		return fmt.Errorf("%w: total_charges debe estar entre 0 y %d", domain.ErrInvalidInput, MaxTotal)
	}
	return nil
}

func inDomain[T comparable](v T, options []T) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// Addons devuelve los seis servicios adicionales de internet en el orden del vector.
func (r CustomerRecord) Addons() [6]InternetAddon {
	return [6]InternetAddon{
		r.OnlineSecurity,
		r.OnlineBackup,
		r.DeviceProtection,
		r.TechSupport,
		r.StreamingTV,
		r.StreamingMovies,
	}
}
