package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/sidheshsarda/mis/internal/application/dto"
	"github.com/sidheshsarda/mis/internal/application/planning"
	"github.com/sidheshsarda/mis/internal/domain"
)

// PlanningHandler maneja la proyección de salida requerida por calidad.
type PlanningHandler struct {
	uc *planning.IssueRequiredUseCase
}

// NewPlanningHandler construye el handler de planificación.
func NewPlanningHandler(uc *planning.IssueRequiredUseCase) *PlanningHandler {
	return &PlanningHandler{uc: uc}
}

// issueRequiredRequest body para POST /api/planning/issue-required.
// expected_kg permite sobreescribir la producción esperada por tipo de hilado.
type issueRequiredRequest struct {
	PlanDate     string                  `json:"plan_date"`
	RollWeightKG decimal.Decimal         `json:"roll_weight_kg"`
	ExpectedKG   map[int]decimal.Decimal `json:"expected_kg"`
}

// IssueRequired godoc
// @Summary      Proyección de salida de yute requerida por calidad
// @Tags         planning
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  issueRequiredRequest  true  "plan_date (YYYY-MM-DD), roll_weight_kg opcional, expected_kg opcional por yarn_type_id"
// @Success      200   {object}  dto.IssueRequiredResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/planning/issue-required [post]
func (h *PlanningHandler) IssueRequired(c *fiber.Ctx) error {
	var in issueRequiredRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	planDate, err := time.Parse("2006-01-02", in.PlanDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plan_date debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.Generate(c.Context(), planning.GenerateInputDTO{
		PlanDate:     planDate,
		RollWeightKG: in.RollWeightKG,
		ExpectedKG:   in.ExpectedKG,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
