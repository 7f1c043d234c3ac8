package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/churn-predictor/internal/application/dto"
	"github.com/jhoicas/churn-predictor/internal/application/usecase"
	"github.com/jhoicas/churn-predictor/internal/domain/entity"
	"github.com/jhoicas/churn-predictor/internal/infrastructure/content"
)

// FormHandler sirve el formulario HTML y el resultado de la predicción.
type FormHandler struct {
	predictions *usecase.PredictionUseCase
	reports     *usecase.ReportUseCase
	pages       *content.Library
	lang        string
	options     formOptions
}

// NewFormHandler construye el handler. pages puede ser nil.
func NewFormHandler(predictions *usecase.PredictionUseCase, reports *usecase.ReportUseCase, pages *content.Library, lang string) *FormHandler {
	return &FormHandler{
		predictions: predictions,
		reports:     reports,
		pages:       pages,
		lang:        lang,
		options:     newFormOptions(),
	}
}

// Index muestra el formulario con los valores por defecto.
// GET /
func (h *FormHandler) Index(c *fiber.Ctx) error {
	return renderPage(c, fiber.StatusOK, h.view(usecase.RequestFromRecord(entity.DefaultCustomerRecord())))
}

// Submit predice y vuelve a pintar la página con el resultado.
// POST /predict
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	in, ok := h.parseForm(c)
	if !ok {
		view := h.view(in)
		view.Error = "The form could not be read. Please check the values and try again."
		return renderPage(c, fiber.StatusBadRequest, view)
	}

	view := h.view(in)
	resp, err := h.predictions.Predict(c.UserContext(), in)
	if err != nil {
		status, _ := errorStatus(err)
		view.Error = userMessage(err)
		return renderPage(c, status, view)
	}
	view.Result = newResultView(resp)
	return renderPage(c, fiber.StatusOK, view)
}

// Report devuelve el resultado como PDF descargable.
// POST /predict/report
func (h *FormHandler) Report(c *fiber.Ctx) error {
	in, ok := h.parseForm(c)
	if !ok {
		view := h.view(in)
		view.Error = "The form could not be read. Please check the values and try again."
		return renderPage(c, fiber.StatusBadRequest, view)
	}

	pdfBytes, resp, err := h.reports.Generate(c.UserContext(), in)
	if err != nil {
		status, _ := errorStatus(err)
		view := h.view(in)
		view.Error = userMessage(err)
		return renderPage(c, status, view)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="churn-prediction-%s.pdf"`, resp.ID))
	return c.Status(fiber.StatusOK).Send(pdfBytes)
}

// parseForm lee el formulario urlencoded. Un checkbox sin marcar no se envía.
// Si algún campo no se puede convertir, se devuelven los que sí se leyeron.
func (h *FormHandler) parseForm(c *fiber.Ctx) (dto.PredictionRequest, bool) {
	var in dto.PredictionRequest
	if err := c.BodyParser(&in); err != nil {
		return in, false
	}
	return in, true
}

func (h *FormHandler) view(form dto.PredictionRequest) pageView {
	return pageView{
		Lang:    h.lang,
		Model:   h.predictions.ModelName(),
		Header:  h.pages.Pages(content.PlacementHeader),
		Footer:  h.pages.Pages(content.PlacementFooter),
		Form:    form,
		Options: h.options,
	}
}

func userMessage(err error) string {
	status, _ := errorStatus(err)
	switch status {
	case fiber.StatusBadRequest:
		return "Invalid input: " + err.Error()
	case fiber.StatusBadGateway:
		return "The prediction could not be computed. Please try again."
	default:
		return "Unexpected error while processing the request."
	}
}
