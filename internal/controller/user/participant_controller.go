package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Gabarito/internal/controller"
	"github.com/lshigami/Gabarito/internal/dto"
	"github.com/lshigami/Gabarito/internal/service"
)

type ParticipantController struct {
	participantService service.ParticipantService
}

func NewParticipantController(participantService service.ParticipantService) *ParticipantController {
	return &ParticipantController{participantService: participantService}
}

// RegisterParticipant godoc
// @Summary Register a participant
// @Description Registers a participant owned by the calling account. Name and school are unique per account.
// @Tags Participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param participant body dto.ParticipantCreateDTO true "Participant identity"
// @Success 201 {object} dto.ParticipantResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Participant already registered"
// @Router /participants [post]
func (c *ParticipantController) RegisterParticipant(ctx *gin.Context) {
	var req dto.ParticipantCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.participantService.RegisterParticipant(ctx.Request.Context(), req, controller.ActorFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to register participant", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetOwnParticipants godoc
// @Summary List own participants
// @Tags Participants
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ParticipantResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /participants [get]
func (c *ParticipantController) GetOwnParticipants(ctx *gin.Context) {
	participants, err := c.participantService.GetOwnParticipants(ctx.Request.Context(), controller.ActorFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve participants", err)
		return
	}
	ctx.JSON(http.StatusOK, participants)
}

// GetParticipant godoc
// @Summary Get a participant
// @Tags Participants
// @Produce json
// @Security BearerAuth
// @Param participant_id path int true "Participant ID"
// @Success 200 {object} dto.ParticipantResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Router /participants/{participant_id} [get]
func (c *ParticipantController) GetParticipant(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "participant_id")
	if !ok {
		return
	}
	resp, err := c.participantService.GetParticipant(ctx.Request.Context(), id, controller.ActorFrom(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve participant", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
