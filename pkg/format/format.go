// Package format da formato legible a probabilidades e importes según el idioma.
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter envuelve un message.Printer para un idioma concreto.
type Formatter struct {
	p *message.Printer
}

// New crea un formateador para la etiqueta BCP 47 indicada ("en", "es", ...).
// Etiquetas inválidas caen a inglés.
func New(lang string) Formatter {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return Formatter{p: message.NewPrinter(tag)}
}

// Percent formatea una fracción como porcentaje con dos decimales: 0.72413 → "72.41%".
func (f Formatter) Percent(fraction float64) string {
	return f.p.Sprintf("%.2f%%", fraction*100)
}

// USD formatea un importe con separador de miles y dos decimales: 8684 → "$8,684.00".
func (f Formatter) USD(amount decimal.Decimal) string {
	return f.p.Sprintf("$%.2f", amount.Round(2).InexactFloat64())
}

// Number formatea un float con la cantidad de decimales indicada.
func (f Formatter) Number(v float64, decimals int) string {
	return f.p.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}
