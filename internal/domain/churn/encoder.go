// Package churn contiene la codificación de características y la regla de
// decisión del predictor de abandono (churn). Todo es puro y determinista:
// no hay estado oculto y el mismo CustomerRecord produce siempre el mismo vector.
package churn

import (
	"github.com/jhoicas/churn-predictor/internal/domain/entity"
)

// VectorSize longitud fija del vector que espera el clasificador.
const VectorSize = 26

// Divisores de escalado (máximos de los sliders del formulario).
const (
	tenureScale  = 72.0
	monthlyScale = 118.0
	totalScale   = 8684.0
)

// Posiciones de los grupos one-hot dentro del vector (base 0).
const (
	internetOffset = 16
	contractOffset = 19
	paymentOffset  = 22
)

// FeatureVector vector de características en el orden exacto del modelo.
type FeatureVector [VectorSize]float64

// Slice devuelve una copia como slice (para serializar o pasar al clasificador).
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, VectorSize)
	copy(out, v[:])
	return out
}

// FeatureNames nombre de cada posición del vector, en el mismo orden.
var FeatureNames = [VectorSize]string{
	"gender",
	"senior_citizen",
	"partner",
	"dependents",
	"tenure_scaled",
	"phone_service",
	"multiple_lines",
	"online_security",
	"online_backup",
	"device_protection",
	"tech_support",
	"streaming_tv",
	"streaming_movies",
	"paperless_billing",
	"monthly_charges_scaled",
	"total_charges_scaled",
	"internet_dsl",
	"internet_fiber_optic",
	"internet_no",
	"contract_month_to_month",
	"contract_one_year",
	"contract_two_year",
	"payment_bank_transfer",
	"payment_credit_card",
	"payment_electronic_check",
	"payment_mailed_check",
}

// Encode convierte el registro del cliente en el vector de 26 posiciones.
//
// Las respuestas "No internet service" y "No phone service" se codifican igual
// que "No" (0). El modelo se entrenó así; distinguirlas cambiaría sus predicciones.
//
// Precondición: r.Validate() == nil. Una enumeración fuera de dominio provoca panic;
// los llamadores validan antes de codificar.
func Encode(r entity.CustomerRecord) FeatureVector {
	var v FeatureVector

	v[0] = encodeGender(r.Gender)
	v[1] = boolFeature(r.SeniorCitizen)
	v[2] = encodeYesNo(r.Partner)
	v[3] = encodeYesNo(r.Dependents)
	v[4] = float64(r.TenureMonths) / tenureScale
	v[5] = encodeYesNo(r.PhoneService)
	v[6] = encodeMultipleLines(r.MultipleLines)
	for i, addon := range r.Addons() {
		v[7+i] = encodeAddon(addon)
	}
	v[13] = boolFeature(r.PaperlessBilling)
	v[14] = r.MonthlyCharges.InexactFloat64() / monthlyScale
	v[15] = r.TotalCharges.InexactFloat64() / totalScale

	v[internetOffset+internetIndex(r.InternetService)] = 1
	v[contractOffset+contractIndex(r.Contract)] = 1
	v[paymentOffset+paymentIndex(r.PaymentMethod)] = 1

	return v
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func encodeGender(g entity.Gender) float64 {
	switch g {
	case entity.GenderFemale:
		return 1
	case entity.GenderMale:
		return 0
	}
	return 0
}

func encodeYesNo(y entity.YesNo) float64 {
	switch y {
	case entity.Yes:
		return 1
	case entity.No:
		return 0
	}
	return 0
}

func encodeMultipleLines(m entity.MultipleLines) float64 {
	switch m {
	case entity.MultipleLinesYes:
		return 1
	case entity.MultipleLinesNo, entity.MultipleLinesNoPhoneService:
		return 0
	}
	return 0
}

func encodeAddon(a entity.InternetAddon) float64 {
	switch a {
	case entity.AddonYes:
		return 1
	case entity.AddonNo, entity.AddonNoInternetService:
		return 0
	}
	return 0
}

func internetIndex(s entity.InternetService) int {
	switch s {
	case entity.InternetDSL:
		return 0
	case entity.InternetFiberOptic:
		return 1
	case entity.InternetNone:
		return 2
	}
	panic("churn: internet service fuera de dominio")
}

func contractIndex(c entity.Contract) int {
	switch c {
	case entity.ContractMonthToMonth:
		return 0
	case entity.ContractOneYear:
		return 1
	case entity.ContractTwoYear:
		return 2
	}
	panic("churn: contrato fuera de dominio")
}

func paymentIndex(p entity.PaymentMethod) int {
	switch p {
	case entity.PaymentBankTransfer:
		return 0
	case entity.PaymentCreditCard:
		return 1
	case entity.PaymentElectronicCheck:
		return 2
	case entity.PaymentMailedCheck:
		return 3
	}
	panic("churn: medio de pago fuera de dominio")
}
