package handler

import (
	"recap-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecapHandler обрабатывает HTTP запросы сервиса суммаризации.
type RecapHandler struct {
	service service.RecapService
	logger  *zap.Logger
}

// NewRecapHandler создает новый RecapHandler.
func NewRecapHandler(s service.RecapService, logger *zap.Logger) *RecapHandler {
	return &RecapHandler{
		service: s,
		logger:  logger.Named("RecapHandler"),
	}
}

// RegisterRoutes регистрирует API маршруты.
// middlewares (rate limiter и т.п.) применяются ко всей /api группе.
func (h *RecapHandler) RegisterRoutes(router *gin.Engine, middlewares ...gin.HandlerFunc) {
	api := router.Group("/api", middlewares...)
	{
		api.POST("/summarize", h.summarize)
		api.POST("/ask", h.ask)
		api.GET("/session/:id", h.getSession)
	}
}
