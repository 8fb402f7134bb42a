package handler

import (
	"errors"
	"net/http"

	"recap-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp models.ErrorResponse

	switch {
	case errors.Is(err, models.ErrInvalidVideoURL):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Code: models.ErrCodeInvalidVideoURL, Message: "Invalid YouTube link"}
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrBadRequest):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: err.Error()}
	case errors.Is(err, models.ErrTranscriptUnavailable), errors.Is(err, models.ErrTranscriptEmpty):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Code: models.ErrCodeTranscriptUnavailable, Message: "No transcript available for this video"}
	case errors.Is(err, models.ErrSessionNotFound):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Code: models.ErrCodeSessionNotFound, Message: "Session not found or expired"}
	case errors.Is(err, models.ErrPromptLimitReached):
		statusCode = http.StatusTooManyRequests
		errResp = models.ErrorResponse{Code: models.ErrCodePromptLimitReached, Message: "Max prompt limit reached"}
	case errors.Is(err, models.ErrAIGenerationFailed), errors.Is(err, models.ErrAIEmptyResponse):
		statusCode = http.StatusBadGateway
		errResp = models.ErrorResponse{Code: models.ErrCodeAIUnavailable, Message: "AI service is unavailable, try again later"}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = models.ErrorResponse{Code: models.ErrCodeInternal, Message: "An unexpected internal error occurred"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}
