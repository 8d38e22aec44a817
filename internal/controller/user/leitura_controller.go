package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Gabarito/internal/controller"
	"github.com/lshigami/Gabarito/internal/dto"
	"github.com/lshigami/Gabarito/internal/service"
	"github.com/rs/zerolog/log"
)

type LeituraController struct {
	leituraService service.LeituraService
}

func NewLeituraController(leituraService service.LeituraService) *LeituraController {
	return &LeituraController{leituraService: leituraService}
}

// IngestLeitura godoc
// @Summary Ingest one reader record
// @Description Stores the reading of one answer sheet, grades it against the referenced answer key and attributes it to a participant owned by the calling account. answer_key_id and participant_id use -1 for "not identified".
// @Tags Leituras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reading body dto.RawReadingDTO true "Reader output for one sheet"
// @Success 201 {object} dto.LeituraResponseDTO "Leitura stored; warning is set for non-clean reads"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Answer key not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leituras [post]
func (c *LeituraController) IngestLeitura(ctx *gin.Context) {
	var req dto.RawReadingDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	resp, err := c.leituraService.Ingest(ctx.Request.Context(), req, controller.ActorFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to ingest leitura", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// IngestLeituraBatch godoc
// @Summary Ingest many reader records
// @Description Ingests every reading concurrently. Each item reports its own result or error; one failure never aborts the batch.
// @Tags Leituras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param readings body dto.RawReadingBatchDTO true "Reader output for several sheets"
// @Success 200 {object} dto.BatchResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leituras/batch [post]
func (c *LeituraController) IngestLeituraBatch(ctx *gin.Context) {
	var req dto.RawReadingBatchDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	result, err := c.leituraService.IngestBatch(ctx.Request.Context(), req.Readings, controller.ActorFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to ingest leituras", err)
		return
	}
	log.Info().Int("total", result.Total).Int("failed", result.Failed).Msg("Batch ingestion finished")
	ctx.JSON(http.StatusOK, result)
}

// GetLeituras godoc
// @Summary List visible leituras
// @Description Leituras whose participant belongs to the calling account, plus unattributed ones it created. Admins see all. Newest first.
// @Tags Leituras
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.LeituraResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leituras [get]
func (c *LeituraController) GetLeituras(ctx *gin.Context) {
	leituras, err := c.leituraService.GetLeituras(ctx.Request.Context(), controller.ActorFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve leituras", err)
		return
	}
	ctx.JSON(http.StatusOK, leituras)
}

// GetStats godoc
// @Summary Statistics over visible leituras
// @Tags Leituras
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LeituraStatsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leituras/stats [get]
func (c *LeituraController) GetStats(ctx *gin.Context) {
	stats, err := c.leituraService.GetStats(ctx.Request.Context(), controller.ActorFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to compute statistics", err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetLeitura godoc
// @Summary Get a leitura
// @Tags Leituras
// @Produce json
// @Security BearerAuth
// @Param leitura_id path int true "Leitura ID"
// @Success 200 {object} dto.LeituraResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid id format"
// @Failure 404 {object} dto.ErrorResponse "Leitura not found"
// @Router /leituras/{leitura_id} [get]
func (c *LeituraController) GetLeitura(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "leitura_id")
	if !ok {
		return
	}
	resp, err := c.leituraService.GetLeitura(ctx.Request.Context(), id, controller.ActorFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve leitura", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CorrectLeitura godoc
// @Summary Correct a leitura
// @Description Patches answer_key_id, participant_id and/or answers. Omitted fields are kept, null clears a reference. The score is always recomputed.
// @Tags Leituras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param leitura_id path int true "Leitura ID"
// @Param patch body dto.LeituraPatchDTO true "Fields to correct"
// @Success 200 {object} dto.LeituraResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Empty patch or malformed answers"
// @Failure 404 {object} dto.ErrorResponse "Leitura, answer key or participant not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leituras/{leitura_id} [patch]
func (c *LeituraController) CorrectLeitura(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "leitura_id")
	if !ok {
		return
	}
	var req dto.LeituraPatchDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	resp, err := c.leituraService.Correct(ctx.Request.Context(), id, req, controller.ActorFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to correct leitura", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteLeitura godoc
// @Summary Delete a leitura
// @Description Removes the leitura only. Participants and answer keys are kept.
// @Tags Leituras
// @Produce json
// @Security BearerAuth
// @Param leitura_id path int true "Leitura ID"
// @Success 200 {object} dto.LeituraResponseDTO "The removed leitura"
// @Failure 400 {object} dto.ErrorResponse "Invalid id format"
// @Failure 404 {object} dto.ErrorResponse "Leitura not found"
// @Router /leituras/{leitura_id} [delete]
func (c *LeituraController) DeleteLeitura(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "leitura_id")
	if !ok {
		return
	}
	resp, err := c.leituraService.Delete(ctx.Request.Context(), id, controller.ActorFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to delete leitura", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
