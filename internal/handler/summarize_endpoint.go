package handler

import (
	"net/http"

	"recap-server/internal/models"

	"github.com/gin-gonic/gin"
)

// summarize принимает URL видео, скачивает транскрипт, суммаризирует его
// и создает сессию для follow-up вопросов.
func (h *RecapHandler) summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request body: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	session, err := h.service.Summarize(c.Request.Context(), req.VideoURL)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	summariesTotal.Inc()

	c.JSON(http.StatusCreated, sessionResponse{
		SessionID:     session.ID.String(),
		VideoID:       session.VideoID,
		Summary:       session.Summary,
		QuestionsLeft: session.QuestionsLeft(h.service.PromptLimit()),
		CreatedAt:     session.CreatedAt,
	})
}
