// Package pdf genera el reporte imprimible de una predicción de churn.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + modelo       │  ID de predicción + fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADO: etiqueta de riesgo, frase de confianza,          │
//	│             recomendación (recuadro rojo o verde)            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS DEL CLIENTE: campo | valor                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VECTOR: posición | característica | valor                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/churn-predictor/internal/application/ports"
	"github.com/jhoicas/churn-predictor/internal/domain/churn"
	"github.com/jhoicas/churn-predictor/internal/domain/entity"
	"github.com/jhoicas/churn-predictor/pkg/format"
)

var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 31, Green: 97, Blue: 141} // #1F618D
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHighRisk = &props.Color{Red: 231, Green: 76, Blue: 60}   // #E74C3C
	colorLowRisk  = &props.Color{Red: 39, Green: 174, Blue: 96}   // #27AE60
	colorText     = &props.Color{Red: 44, Green: 62, Blue: 80}    // #2C3E50
	colorStripe   = &props.Color{Red: 235, Green: 245, Blue: 251} // #EBF5FB
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	fmt format.Formatter
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(lang string) *MarotoReportGenerator {
	return &MarotoReportGenerator{fmt: format.New(lang)}
}

// GeneratePredictionReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GeneratePredictionReport(
	_ context.Context,
	report ports.PredictionReport,
) ([]byte, error) {
	if report.Response == nil {
		return nil, fmt.Errorf("pdf: reporte sin resultado")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Customer Churn Prediction", true).
		WithAuthor(report.Response.Model, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(3))
	m.AddRows(resultRows(report)...)
	m.AddRows(row.New(4))

	m.AddRows(sectionTitle("CUSTOMER DETAILS"))
	m.AddRows(g.customerRows(report.Record)...)
	m.AddRows(row.New(4))

	m.AddRows(sectionTitle("FEATURE VECTOR SENT TO THE MODEL"))
	m.AddRows(g.vectorRows(report.Vector)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + modelo (izq) e ID + fecha (der).
func headerRow(report ports.PredictionReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Customer Churn Prediction", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Model: "+report.Response.Model, props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PREDICTION", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Response.ID, props.Text{
				Size: 7, Align: align.Right, Top: 6,
			}),
			text.New(report.GeneratedAt.Format("2006-01-02 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// resultRows: recuadro del resultado con el color del nivel de riesgo.
func resultRows(report ports.PredictionReport) []core.Row {
	resp := report.Response
	accent := colorLowRisk
	if resp.HighRisk {
		accent = colorHighRisk
	}
	box := &props.Cell{
		BorderType:      border.Full,
		BorderColor:     accent,
		BorderThickness: 0.8,
	}

	return []core.Row{
		row.New(11).Add(col.New(12).Add(
			text.New(resp.Label, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: accent, Top: 3, Left: 4,
			}),
		)).WithStyle(box),
		row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("There's a %s chance this customer will %s.", resp.ConfidenceText, resp.Outcome), props.Text{
				Size: 11, Color: colorText, Top: 1, Left: 4,
			}),
		)).WithStyle(box),
		row.New(8).Add(col.New(12).Add(
			text.New("Recommendation: "+resp.Recommendation, props.Text{
				Size: 9, Color: colorText, Top: 1, Left: 4,
			}),
		)).WithStyle(box),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	))
}

// customerRows: una fila por campo del formulario, en dos columnas.
func (g *MarotoReportGenerator) customerRows(r entity.CustomerRecord) []core.Row {
	senior := "No"
	if r.SeniorCitizen {
		senior = "Yes"
	}
	paperless := "No"
	if r.PaperlessBilling {
		paperless = "Yes"
	}
	fields := [][2]string{
		{"Gender", r.Gender.String()},
		{"Senior citizen", senior},
		{"Partner", r.Partner.String()},
		{"Dependents", r.Dependents.String()},
		{"Tenure (months)", strconv.Itoa(r.TenureMonths)},
		{"Phone service", r.PhoneService.String()},
		{"Multiple lines", r.MultipleLines.String()},
		{"Internet service", r.InternetService.String()},
		{"Online security", r.OnlineSecurity.String()},
		{"Online backup", r.OnlineBackup.String()},
		{"Device protection", r.DeviceProtection.String()},
		{"Tech support", r.TechSupport.String()},
		{"Streaming TV", r.StreamingTV.String()},
		{"Streaming movies", r.StreamingMovies.String()},
		{"Contract", r.Contract.String()},
		{"Paperless billing", paperless},
		{"Payment method", r.PaymentMethod.String()},
		{"Monthly charges", g.fmt.USD(r.MonthlyCharges)},
		{"Total charges", g.fmt.USD(r.TotalCharges)},
	}

	rows := make([]core.Row, 0, (len(fields)+1)/2)
	for i := 0; i < len(fields); i += 2 {
		cols := []core.Col{fieldCol(fields[i])}
		if i+1 < len(fields) {
			cols = append(cols, fieldCol(fields[i+1]))
		} else {
			cols = append(cols, col.New(6))
		}
		r := row.New(6).Add(cols...)
		if (i/2)%2 == 0 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	return rows
}

func fieldCol(f [2]string) core.Col {
	return col.New(6).Add(
		text.New(f[0]+":", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 2}),
		text.New(f[1], props.Text{Size: 8, Top: 1, Left: 34}),
	)
}

// vectorRows: posición, nombre y valor de cada característica.
func (g *MarotoReportGenerator) vectorRows(v churn.FeatureVector) []core.Row {
	rows := make([]core.Row, 0, churn.VectorSize+1)
	rows = append(rows, row.New(6).Add(
		col.New(1).Add(text.New("#", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1})),
		col.New(7).Add(text.New("Feature", props.Text{Style: fontstyle.Bold, Size: 7, Top: 1, Left: 1})),
		col.New(4).Add(text.New("Value", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right, Top: 1, Right: 1})),
	).WithStyle(&props.Cell{BackgroundColor: colorStripe}))

	for i, x := range v {
		rows = append(rows, row.New(4.5).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 7, Align: align.Center, Top: 0.5})),
			col.New(7).Add(text.New(churn.FeatureNames[i], props.Text{Size: 7, Top: 0.5, Left: 1})),
			col.New(4).Add(text.New(g.fmt.Number(x, 6), props.Text{Size: 7, Align: align.Right, Top: 0.5, Right: 1})),
		))
	}
	return rows
}
