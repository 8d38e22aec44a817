package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Gabarito/internal/controller"
	"github.com/lshigami/Gabarito/internal/dto"
	"github.com/lshigami/Gabarito/internal/service"
	"github.com/rs/zerolog/log"
)

type AnswerKeyController struct {
	answerKeyService service.AnswerKeyService
}

func NewAnswerKeyController(answerKeyService service.AnswerKeyService) *AnswerKeyController {
	return &AnswerKeyController{answerKeyService: answerKeyService}
}

// CreateAnswerKey godoc
// @Summary (Admin) Create an answer key
// @Description Admin registers the correct answers of an exam. The id may be given explicitly to match the ids printed on the sheets.
// @Tags Admin - Answer Keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer_key body dto.AnswerKeyCreateDTO true "Answers (a-e only) and optional weight per question"
// @Success 201 {object} dto.AnswerKeyResponseDTO "Answer key created"
// @Failure 400 {object} dto.ErrorResponse "Invalid answers, weight or id"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/answer-keys [post]
func (c *AnswerKeyController) CreateAnswerKey(ctx *gin.Context) {
	var req dto.AnswerKeyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	resp, err := c.answerKeyService.CreateAnswerKey(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to create answer key", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpsertAnswerKey godoc
// @Summary (Admin) Create or replace an answer key by id
// @Description Imports one answer key row: inserted when the id is new, overwritten otherwise.
// @Tags Admin - Answer Keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer_key_id path int true "Answer key ID"
// @Param answer_key body dto.AnswerKeyUpsertDTO true "Answers and optional weight per question"
// @Success 200 {object} dto.AnswerKeyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid id or answers"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/answer-keys/{answer_key_id} [put]
func (c *AnswerKeyController) UpsertAnswerKey(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "answer_key_id")
	if !ok {
		return
	}
	var req dto.AnswerKeyUpsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	resp, err := c.answerKeyService.UpsertAnswerKey(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to save answer key", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAnswerKey godoc
// @Summary Get an answer key
// @Tags Answer Keys
// @Produce json
// @Security BearerAuth
// @Param answer_key_id path int true "Answer key ID"
// @Success 200 {object} dto.AnswerKeyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid id format"
// @Failure 404 {object} dto.ErrorResponse "Answer key not found"
// @Router /answer-keys/{answer_key_id} [get]
func (c *AnswerKeyController) GetAnswerKey(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "answer_key_id")
	if !ok {
		return
	}
	resp, err := c.answerKeyService.GetAnswerKey(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve answer key", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAllAnswerKeys godoc
// @Summary List answer keys
// @Tags Answer Keys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AnswerKeyResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answer-keys [get]
func (c *AnswerKeyController) GetAllAnswerKeys(ctx *gin.Context) {
	keys, err := c.answerKeyService.GetAllAnswerKeys(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve answer keys", err)
		return
	}
	log.Debug().Int("count", len(keys)).Msg("GetAllAnswerKeys: listed answer keys")
	ctx.JSON(http.StatusOK, keys)
}
