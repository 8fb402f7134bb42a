package handler

import (
	"errors"
	"net/http"

	"recap-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ask отвечает на follow-up вопрос в рамках сессии.
// После исчерпания лимита вопросов возвращает 429 prompt_limit_reached.
func (h *RecapHandler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request body: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid session ID format"}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	answer, err := h.service.Ask(c.Request.Context(), sessionID, req.Question)
	if err != nil {
		if errors.Is(err, models.ErrPromptLimitReached) {
			promptLimitRejectionsTotal.Inc()
		}
		handleServiceError(c, err)
		return
	}

	questionsTotal.Inc()

	limit := h.service.PromptLimit()
	questionsLeft := limit - answer.QuestionCount
	if questionsLeft < 0 {
		questionsLeft = 0
	}

	c.JSON(http.StatusOK, answerResponse{
		Answer:        answer.Text,
		QuestionsLeft: questionsLeft,
	})
}
