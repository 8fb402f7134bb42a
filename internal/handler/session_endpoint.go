package handler

import (
	"net/http"

	"recap-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getSession возвращает состояние сессии (для восстановления фронтенда после перезагрузки).
func (h *RecapHandler) getSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid session ID format"}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	session, err := h.service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		SessionID:     session.ID.String(),
		VideoID:       session.VideoID,
		Summary:       session.Summary,
		QuestionsLeft: session.QuestionsLeft(h.service.PromptLimit()),
		CreatedAt:     session.CreatedAt,
	})
}
