package http

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/churn-predictor/internal/application/dto"
	"github.com/jhoicas/churn-predictor/internal/domain/entity"
	"github.com/jhoicas/churn-predictor/internal/infrastructure/content"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.New("_root").Funcs(template.FuncMap{
	"field": func(name, current string, options []string) selectField {
		return selectField{Name: name, Current: current, Options: options}
	},
}).ParseFS(templateFS, "templates/*.tmpl"))

// Colores del recuadro de resultado.
const (
	colorHighRisk template.CSS = "#E74C3C"
	colorLowRisk  template.CSS = "#27AE60"
)

type selectField struct {
	Name    string
	Current string
	Options []string
}

// formOptions opciones de cada widget, en el orden en que se muestran.
type formOptions struct {
	Genders          []string
	YesNo            []string
	MultipleLines    []string
	InternetServices []string
	Addons           []string
	Contracts        []string
	PaymentMethods   []string
	MaxTenure        int
	MaxMonthly       int
	MaxTotal         int
}

func newFormOptions() formOptions {
	return formOptions{
		Genders:          entity.OptionStrings(entity.Genders),
		YesNo:            entity.OptionStrings(entity.YesNoOptions),
		MultipleLines:    entity.OptionStrings(entity.MultipleLinesOptions),
		InternetServices: entity.OptionStrings(entity.InternetServices),
		Addons:           entity.OptionStrings(entity.InternetAddonOptions),
		Contracts:        entity.OptionStrings(entity.Contracts),
		PaymentMethods:   entity.OptionStrings(entity.PaymentMethods),
		MaxTenure:        entity.MaxTenureMonths,
		MaxMonthly:       entity.MaxMonthly,
		MaxTotal:         entity.MaxTotal,
	}
}

type resultView struct {
	Response *dto.PredictionResponse
	Color    template.CSS
}

func newResultView(resp *dto.PredictionResponse) *resultView {
	color := colorLowRisk
	if resp.HighRisk {
		color = colorHighRisk
	}
	return &resultView{Response: resp, Color: color}
}

// pageView datos de la plantilla "base".
type pageView struct {
	Lang    string
	Model   string
	Header  []content.Page
	Footer  []content.Page
	Form    dto.PredictionRequest
	Options formOptions
	Result  *resultView
	Error   string
}

func renderPage(c *fiber.Ctx, status int, view pageView) error {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "base", view); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
