package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sidheshsarda/mis/internal/application/dto"
	"github.com/sidheshsarda/mis/internal/application/usecase"
	"github.com/sidheshsarda/mis/internal/domain"
)

// ReferenceHandler expone los maestros de planta (solo lectura).
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler de maestros.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// Bins godoc
// @Summary      Bins de la sección spreader
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BinDTO
// @Router       /api/reference/bins [get]
func (h *ReferenceHandler) Bins(c *fiber.Ctx) error {
	out, err := h.uc.Bins(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BinByNo godoc
// @Summary      Bin por número de planta
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Param        no   path      int  true  "Número de bin"
// @Success      200  {object}  dto.BinDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reference/bins/{no} [get]
func (h *ReferenceHandler) BinByNo(c *fiber.Ctx) error {
	no, err := c.ParamsInt("no")
	if err != nil || no <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid bin number"})
	}
	out, err := h.uc.BinByNo(c.Context(), no)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// JuteQualities godoc
// @Summary      Calidades de yute
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.JuteQualityDTO
// @Router       /api/reference/jute-qualities [get]
func (h *ReferenceHandler) JuteQualities(c *fiber.Ctx) error {
	out, err := h.uc.JuteQualities(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MaturityTargets godoc
// @Summary      Horas de maduración objetivo por calidad
// @Tags         reference
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaturityTargetDTO
// @Router       /api/reference/maturity-targets [get]
func (h *ReferenceHandler) MaturityTargets(c *fiber.Ctx) error {
	out, err := h.uc.MaturityTargets(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
