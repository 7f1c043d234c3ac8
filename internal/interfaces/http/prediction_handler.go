package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/churn-predictor/internal/application/dto"
	"github.com/jhoicas/churn-predictor/internal/application/usecase"
	"github.com/jhoicas/churn-predictor/internal/domain/churn"
	"github.com/jhoicas/churn-predictor/internal/domain/entity"
)

// PredictionHandler expone la predicción como API JSON.
type PredictionHandler struct {
	uc *usecase.PredictionUseCase
}

// NewPredictionHandler construye el handler.
func NewPredictionHandler(uc *usecase.PredictionUseCase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// Create godoc
// @Summary      Predecir churn de un cliente
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PredictionRequest  true  "Atributos del cliente"
// @Success      200   {object}  dto.PredictionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/predictions [post]
func (h *PredictionHandler) Create(c *fiber.Ctx) error {
	var in dto.PredictionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Predict(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Options godoc
// @Summary      Opciones de cada campo del formulario
// @Tags         predictions
// @Produce      json
// @Success      200  {object}  dto.OptionsResponse
// @Router       /api/options [get]
func (h *PredictionHandler) Options(c *fiber.Ctx) error {
	return c.JSON(optionsResponse())
}

func optionsResponse() dto.OptionsResponse {
	def := entity.DefaultCustomerRecord()
	addons := entity.OptionStrings(entity.InternetAddonOptions)
	yesNo := entity.OptionStrings(entity.YesNoOptions)

	return dto.OptionsResponse{
		Categorical: map[string][]string{
			"gender":            entity.OptionStrings(entity.Genders),
			"senior_citizen":    {"0", "1"},
			"partner":           yesNo,
			"dependents":        yesNo,
			"phone_service":     yesNo,
			"multiple_lines":    entity.OptionStrings(entity.MultipleLinesOptions),
			"internet_service":  entity.OptionStrings(entity.InternetServices),
			"online_security":   addons,
			"online_backup":     addons,
			"device_protection": addons,
			"tech_support":      addons,
			"streaming_tv":      addons,
			"streaming_movies":  addons,
			"contract":          entity.OptionStrings(entity.Contracts),
			"payment_method":    entity.OptionStrings(entity.PaymentMethods),
		},
		Numeric: map[string]dto.NumericRange{
			"tenure": {
				Min: 0, Max: entity.MaxTenureMonths, Step: 1,
				Default: float64(def.TenureMonths),
			},
			"monthly_charges": {
				Min: 0, Max: entity.MaxMonthly, Step: 0.01,
				Default: def.MonthlyCharges.InexactFloat64(),
			},
			"total_charges": {
				Min: 0, Max: entity.MaxTotal, Step: 0.01,
				Default: def.TotalCharges.InexactFloat64(),
			},
		},
		Features: churn.FeatureNames[:],
	}
}
