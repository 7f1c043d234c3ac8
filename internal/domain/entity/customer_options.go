package entity

import (
	"fmt"

	"github.com/jhoicas/churn-predictor/internal/domain"
)

// ── Dominios cerrados de los widgets ──────────────────────────────────────────
//
// Cada enumeración se serializa con el texto exacto del widget del formulario.
// El orden de declaración es el orden de las opciones en pantalla y, para los
// campos one-hot, el orden de las columnas del vector de características.

// Gender sexo del cliente.
type Gender int

const (
	GenderFemale Gender = iota
	GenderMale
)

// Genders opciones en orden de pantalla.
var Genders = []Gender{GenderFemale, GenderMale}

func (g Gender) String() string {
	switch g {
	case GenderFemale:
		return "Female"
	case GenderMale:
		return "Male"
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// ParseGender convierte el texto del widget.
func ParseGender(s string) (Gender, error) {
	return parseOption("gender", s, Genders)
}

// YesNo respuesta binaria (partner, dependents, phone service).
type YesNo int

const (
	Yes YesNo = iota
	No
)

// YesNoOptions opciones en orden de pantalla.
var YesNoOptions = []YesNo{Yes, No}

func (y YesNo) String() string {
	switch y {
	case Yes:
		return "Yes"
	case No:
		return "No"
	}
	return fmt.Sprintf("YesNo(%d)", int(y))
}

// ParseYesNo convierte el texto del widget.
func ParseYesNo(field, s string) (YesNo, error) {
	return parseOption(field, s, YesNoOptions)
}

// MultipleLines líneas telefónicas múltiples.
type MultipleLines int

const (
	MultipleLinesNoPhoneService MultipleLines = iota
	MultipleLinesNo
	MultipleLinesYes
)

// MultipleLinesOptions opciones en orden de pantalla.
var MultipleLinesOptions = []MultipleLines{MultipleLinesNoPhoneService, MultipleLinesNo, MultipleLinesYes}

func (m MultipleLines) String() string {
	switch m {
	case MultipleLinesNoPhoneService:
		return "No phone service"
	case MultipleLinesNo:
		return "No"
	case MultipleLinesYes:
		return "Yes"
	}
	return fmt.Sprintf("MultipleLines(%d)", int(m))
}

// ParseMultipleLines convierte el texto del widget.
func ParseMultipleLines(s string) (MultipleLines, error) {
	return parseOption("multiple_lines", s, MultipleLinesOptions)
}

// InternetService tipo de conexión. El orden es el del grupo one-hot 17–19.
type InternetService int

const (
	InternetDSL InternetService = iota
	InternetFiberOptic
	InternetNone
)

// InternetServices opciones en orden one-hot.
var InternetServices = []InternetService{InternetDSL, InternetFiberOptic, InternetNone}

func (i InternetService) String() string {
	switch i {
	case InternetDSL:
		return "DSL"
	case InternetFiberOptic:
		return "Fiber optic"
	case InternetNone:
		return "No"
	}
	return fmt.Sprintf("InternetService(%d)", int(i))
}

// ParseInternetService convierte el texto del widget.
func ParseInternetService(s string) (InternetService, error) {
	return parseOption("internet_service", s, InternetServices)
}

// InternetAddon servicio adicional de internet (security, backup, etc.).
type InternetAddon int

const (
	AddonNo InternetAddon = iota
	AddonYes
	AddonNoInternetService
)

// InternetAddonOptions opciones en orden de pantalla.
var InternetAddonOptions = []InternetAddon{AddonNo, AddonYes, AddonNoInternetService}

func (a InternetAddon) String() string {
	switch a {
	case AddonNo:
		return "No"
	case AddonYes:
		return "Yes"
	case AddonNoInternetService:
		return "No internet service"
	}
	return fmt.Sprintf("InternetAddon(%d)", int(a))
}

// ParseInternetAddon convierte el texto del widget.
func ParseInternetAddon(field, s string) (InternetAddon, error) {
	return parseOption(field, s, InternetAddonOptions)
}

// Contract tipo de contrato. El orden es el del grupo one-hot 20–22.
type Contract int

const (
	ContractMonthToMonth Contract = iota
	ContractOneYear
	ContractTwoYear
)

// Contracts opciones en orden one-hot.
var Contracts = []Contract{ContractMonthToMonth, ContractOneYear, ContractTwoYear}

func (c Contract) String() string {
	switch c {
	case ContractMonthToMonth:
		return "Month-to-month"
	case ContractOneYear:
		return "One year"
	case ContractTwoYear:
		return "Two year"
	}
	return fmt.Sprintf("Contract(%d)", int(c))
}

// ParseContract convierte el texto del widget.
func ParseContract(s string) (Contract, error) {
	return parseOption("contract", s, Contracts)
}

// PaymentMethod medio de pago. El orden es el del grupo one-hot 23–26.
type PaymentMethod int

const (
	PaymentBankTransfer PaymentMethod = iota
	PaymentCreditCard
	PaymentElectronicCheck
	PaymentMailedCheck
)

// PaymentMethods opciones en orden one-hot.
var PaymentMethods = []PaymentMethod{PaymentBankTransfer, PaymentCreditCard, PaymentElectronicCheck, PaymentMailedCheck}

func (p PaymentMethod) String() string {
	switch p {
	case PaymentBankTransfer:
		return "Bank transfer (automatic)"
	case PaymentCreditCard:
		return "Credit card (automatic)"
	case PaymentElectronicCheck:
		return "Electronic check"
	case PaymentMailedCheck:
		return "Mailed check"
	}
	return fmt.Sprintf("PaymentMethod(%d)", int(p))
}

// ParsePaymentMethod convierte el texto del widget.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	return parseOption("payment_method", s, PaymentMethods)
}

// parseOption busca el texto exacto entre las opciones del widget.
func parseOption[T fmt.Stringer](field, s string, options []T) (T, error) {
	for _, o := range options {
		if o.String() == s {
			return o, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s no admite el valor %q", domain.ErrInvalidInput, field, s)
}

// OptionStrings devuelve los textos de las opciones en orden (para widgets y /api/options).
func OptionStrings[T fmt.Stringer](options []T) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.String())
	}
	return out
}
