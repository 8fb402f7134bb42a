package repository

import (
	"context"

	"recap-server/internal/models"

	"github.com/google/uuid"
)

// SessionRepository определяет контракт хранилища сессий суммаризации.
// Сессии эфемерны: хранилище обязано истекать их по TTL.
type SessionRepository interface {
	// Create сохраняет новую сессию.
	Create(ctx context.Context, session *models.Session) error
	// Get возвращает сессию по ID. Возвращает models.ErrSessionNotFound,
	// если сессия отсутствует или истекла.
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	// IncrementQuestionCount атомарно увеличивает счетчик вопросов
	// и возвращает новое значение.
	IncrementQuestionCount(ctx context.Context, id uuid.UUID) (int, error)
}
