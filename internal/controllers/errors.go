package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-cafe-api/internal/metrics"
	"github.com/franciscosanchezn/gin-cafe-api/internal/models"
	"github.com/franciscosanchezn/gin-cafe-api/internal/services"
	"github.com/franciscosanchezn/gin-cafe-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MessageHeader carries the message of 204 responses, which have no body
const MessageHeader = "X-Message"

// respondWithError translates a service error into the HTTP response
func respondWithError(ctx *gin.Context, err error) {
	status, code := http.StatusInternalServerError, models.ErrInternalServer
	message := "Internal server error"

	switch services.KindOf(err) {
	case services.KindCafeNotFound:
		status, code, message = http.StatusNotFound, models.ErrCafeNotFound, err.Error()
	case services.KindPizzaNotFound:
		status, code, message = http.StatusNotFound, models.ErrPizzaNotFound, err.Error()
	case services.KindIDNotFound:
		status, code, message = http.StatusNotFound, models.ErrIDNotFound, err.Error()
	case services.KindUsernameNotFound:
		status, code, message = http.StatusNotFound, models.ErrUsernameNotFound, err.Error()
	case services.KindClientNotFound:
		status, code, message = http.StatusNotFound, models.ErrClientNotFound, err.Error()
	case services.KindEmptyCafeList:
		respondEmpty(ctx, models.ErrEmptyCafeList, err.Error())
		return
	case services.KindEmptyPizzaList:
		respondEmpty(ctx, models.ErrEmptyPizzaList, err.Error())
		return
	case services.KindInvalidArgument:
		status, code, message = http.StatusBadRequest, models.ErrInvalidArgument, err.Error()
	case services.KindConflict:
		status, code, message = http.StatusConflict, models.ErrConflict, err.Error()
	case services.KindBadCredentials:
		status, code, message = http.StatusUnauthorized, models.ErrUnauthorized, err.Error()
	default:
		logrus.WithError(err).WithField("route", ctx.FullPath()).Error("Unhandled error")
		_ = ctx.Error(err)
	}

	metrics.RecordDomainError(code)
	ctx.JSON(status, models.NewAPIError(code, message))
}

// respondEmpty answers 204. The body is dropped by net/http, so the
// message travels in a header.
func respondEmpty(ctx *gin.Context, code, message string) {
	metrics.RecordDomainError(code)
	ctx.Header(MessageHeader, message)
	ctx.Status(http.StatusNoContent)
}

// respondWithBindError reports a request body that could not be bound or
// failed field validation
func respondWithBindError(ctx *gin.Context, err error) {
	if details, ok := validation.FieldErrors(err); ok {
		metrics.RecordDomainError(models.ErrValidationFailed)
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Validation failed", details))
		return
	}
	metrics.RecordDomainError(models.ErrBadRequest)
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
}

// parseID reads a positive numeric path parameter
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		metrics.RecordDomainError(models.ErrBadRequest)
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid "+name+" format"))
		return 0, false
	}
	return uint(id), true
}

func respondMessage(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, models.MessageResponse{Message: message})
}
