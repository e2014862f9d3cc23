package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sidheshsarda/mis/internal/application/batching"
	"github.com/sidheshsarda/mis/internal/application/dto"
	"github.com/sidheshsarda/mis/internal/domain"
)

// BatchingHandler maneja las peticiones HTTP del ledger de bobinas:
// altas de producción, salidas, consultas de stock y el corte por ventana.
type BatchingHandler struct {
	ledger   *batching.LedgerUseCase
	snapshot *batching.SnapshotUseCase
	pdfGen   batching.SnapshotPDFGenerator
}

// NewBatchingHandler construye el handler.
func NewBatchingHandler(ledger *batching.LedgerUseCase, snapshot *batching.SnapshotUseCase, pdfGen batching.SnapshotPDFGenerator) *BatchingHandler {
	return &BatchingHandler{ledger: ledger, snapshot: snapshot, pdfGen: pdfGen}
}

// RecordProduction godoc
// @Summary      Registrar alta de producción de bobinas
// @Tags         spreader
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordProductionRequest  true  "entry_date (YYYY-MM-DD), entry_time (0-23), spell, spreader_no, bin_no, jute_quality_id, no_of_rolls, wt_per_roll, trolley_no"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/spreader/entries [post]
func (h *BatchingHandler) RecordProduction(c *fiber.Ctx) error {
	var in dto.RecordProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entryDate, err := time.Parse("2006-01-02", in.EntryDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entry_date debe ser YYYY-MM-DD"})
	}
	id, err := h.ledger.RecordProduction(c.Context(), batching.ProductionInputDTO{
		EntryDate:     entryDate,
		EntryTime:     in.EntryTime,
		Spell:         in.Spell,
		SpreaderNo:    in.SpreaderNo,
		BinNo:         in.BinNo,
		JuteQualityID: in.JuteQualityID,
		NoOfRolls:     in.NoOfRolls,
		WeightPerRoll: in.WeightPerRoll,
		TrolleyNo:     in.TrolleyNo,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id, Message: "alta registrada"})
}

// RecordIssue godoc
// @Summary      Registrar salida de bobinas hacia breaker/inter
// @Tags         spreader
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordIssueRequest  true  "issue_date (YYYY-MM-DD), issue_time (0-23), spell, entry_id_grp, wt_per_roll, no_of_rolls, breaker_inter_no"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/spreader/issues [post]
func (h *BatchingHandler) RecordIssue(c *fiber.Ctx) error {
	var in dto.RecordIssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	issueDate, err := time.Parse("2006-01-02", in.IssueDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "issue_date debe ser YYYY-MM-DD"})
	}
	id, err := h.ledger.RecordIssue(c.Context(), batching.IssueInputDTO{
		IssueDate:      issueDate,
		IssueTime:      in.IssueTime,
		Spell:          in.Spell,
		EntryGroupID:   in.EntryGroupID,
		WeightPerRoll:  in.WeightPerRoll,
		NoOfRolls:      in.NoOfRolls,
		BreakerInterNo: in.BreakerInterNo,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id, Message: "salida registrada"})
}

// RecentEntries godoc
// @Summary      Últimas altas de producción con maduración
// @Tags         spreader
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de filas (default 25)"
// @Success      200  {array}  dto.RecentEntryDTO
// @Router       /api/spreader/entries/recent [get]
func (h *BatchingHandler) RecentEntries(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 25)
	out, err := h.ledger.RecentEntries(c.Context(), limit)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// BinsWithStock godoc
// @Summary      Bins con stock vivo y maduración media
// @Tags         spreader
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BinStockDTO
// @Router       /api/spreader/bins/stock [get]
func (h *BatchingHandler) BinsWithStock(c *fiber.Ctx) error {
	out, err := h.ledger.BinsWithStock(c.Context())
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// AvailableWeights godoc
// @Summary      Disponibilidad por clase de peso de un grupo
// @Tags         spreader
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "entry_id_grp"
// @Success      200  {array}  dto.WeightStockDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/spreader/groups/{id}/weights [get]
func (h *BatchingHandler) AvailableWeights(c *fiber.Ctx) error {
	groupID, err := c.ParamsInt("id")
	if err != nil || groupID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de grupo inválido"})
	}
	out, err := h.ledger.AvailableWeights(c.Context(), int64(groupID))
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// Snapshot godoc
// @Summary      Corte de stock de bobinas por ventana
// @Tags         spreader
// @Security     Bearer
// @Produce      json
// @Param        opening_date  query  string  true   "YYYY-MM-DD"
// @Param        opening_time  query  int     false  "hora 0-23 (default 6)"
// @Param        closing_date  query  string  false  "YYYY-MM-DD (default = opening, corte as-of)"
// @Param        closing_time  query  int     false  "hora 0-23 (default 6)"
// @Success      200  {object}  dto.SnapshotResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/spreader/snapshot [get]
func (h *BatchingHandler) Snapshot(c *fiber.Ctx) error {
	opening, closing, err := snapshotWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.snapshot.Window(c.Context(), opening, closing)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(out)
}

// SnapshotPDF godoc
// @Summary      Corte de stock de bobinas en PDF
// @Tags         spreader
// @Security     Bearer
// @Produce      application/pdf
// @Param        opening_date  query  string  true   "YYYY-MM-DD"
// @Param        opening_time  query  int     false  "hora 0-23 (default 6)"
// @Param        closing_date  query  string  false  "YYYY-MM-DD (default = opening, corte as-of)"
// @Param        closing_time  query  int     false  "hora 0-23 (default 6)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/spreader/snapshot/pdf [get]
func (h *BatchingHandler) SnapshotPDF(c *fiber.Ctx) error {
	opening, closing, err := snapshotWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.snapshot.Window(c.Context(), opening, closing)
	if err != nil {
		return ledgerError(c, err)
	}
	pdfBytes, err := h.pdfGen.GenerateSnapshotPDF(c.Context(), out)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="roll-stock-snapshot.pdf"`)
	return c.Send(pdfBytes)
}

// snapshotWindow arma [opening, closing] desde query params. Sin closing la
// ventana colapsa al corte as-of (opening == closing).
func snapshotWindow(c *fiber.Ctx) (time.Time, time.Time, error) {
	openingDate := c.Query("opening_date")
	if openingDate == "" {
		return time.Time{}, time.Time{}, errors.New("opening_date es requerido (YYYY-MM-DD)")
	}
	od, err := time.Parse("2006-01-02", openingDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("opening_date debe ser YYYY-MM-DD")
	}
	ot := c.QueryInt("opening_time", 6)
	if ot < 0 || ot > 23 {
		return time.Time{}, time.Time{}, errors.New("opening_time debe estar entre 0 y 23")
	}
	opening := od.Add(time.Duration(ot) * time.Hour)

	closing := opening
	if closingDate := c.Query("closing_date"); closingDate != "" {
		cd, err := time.Parse("2006-01-02", closingDate)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("closing_date debe ser YYYY-MM-DD")
		}
		ct := c.QueryInt("closing_time", 6)
		if ct < 0 || ct > 23 {
			return time.Time{}, time.Time{}, errors.New("closing_time debe estar entre 0 y 23")
		}
		closing = cd.Add(time.Duration(ct) * time.Hour)
	}
	if closing.Before(opening) {
		return time.Time{}, time.Time{}, errors.New("closing no puede ser anterior a opening")
	}
	return opening, closing, nil
}

// ledgerError mapea errores de dominio del ledger a códigos HTTP. Las reglas
// de negocio violadas (candado de calidad, ventana, backdate, stock) van
// como 409 con el detalle del error.
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrQualityLocked):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "QUALITY_LOCKED", Message: err.Error()})
	case errors.Is(err, domain.ErrBackdatedEntry):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BACKDATED", Message: err.Error()})
	case errors.Is(err, domain.ErrWindowClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "WINDOW_CLOSED", Message: err.Error()})
	case errors.Is(err, domain.ErrIssueBeforeProduction):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ISSUE_BEFORE_PRODUCTION", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
