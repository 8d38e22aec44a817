package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Gabarito/internal/dto"
	"github.com/lshigami/Gabarito/internal/middleware"
	"github.com/lshigami/Gabarito/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service error onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrLeituraNotFound),
		errors.Is(err, service.ErrAnswerKeyNotFound),
		errors.Is(err, service.ErrParticipantNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrMalformedAnswerString),
		errors.Is(err, service.ErrEmptyPatch),
		errors.Is(err, service.ErrInvalidAnswerKey),
		errors.Is(err, service.ErrInvalidReading),
		errors.Is(err, service.ErrInvalidParticipant):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrDuplicateParticipant):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a dto.ErrorResponse. Internal failures are
// logged and reported with a generic message.
func RespondError(ctx *gin.Context, message string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("requestID", ctx.GetString(middleware.RequestIDKey)).
			Str("path", ctx.FullPath()).
			Msg(message)
		ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{"internal server error"}})
		return
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// RespondBindError reports a request body that failed binding or validation.
func RespondBindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// ParseIDParam reads a positive numeric path parameter. On failure it writes
// a 400 response and returns false.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// ActorFrom builds the acting account from what AccountAuth stored.
func ActorFrom(ctx *gin.Context) service.Actor {
	return service.Actor{
		AccountID: ctx.GetUint(middleware.AccountIDKey),
		Admin:     ctx.GetString(middleware.AccountRoleKey) == middleware.RoleAdmin,
	}
}
