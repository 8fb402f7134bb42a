package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"recap-server/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Compile-time check
var _ SessionRepository = (*redisSessionRepository)(nil)

// Поля hash'а сессии в Redis
const (
	fieldVideoID       = "video_id"
	fieldSummary       = "summary"
	fieldQuestionCount = "question_count"
	fieldCreatedAt     = "created_at"
)

type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisSessionRepository создает Redis-хранилище сессий с заданным TTL.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration, logger *zap.Logger) SessionRepository {
	return &redisSessionRepository{
		client: client,
		ttl:    ttl,
		logger: logger.Named("RedisSessionRepo"),
	}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("recap_session:%s", id.String())
}

// Create сохраняет сессию как hash и выставляет TTL одним pipeline'ом.
func (r *redisSessionRepository) Create(ctx context.Context, session *models.Session) error {
	key := sessionKey(session.ID)

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, key,
		fieldVideoID, session.VideoID,
		fieldSummary, session.Summary,
		fieldQuestionCount, session.QuestionCount,
		fieldCreatedAt, session.CreatedAt.UTC().Format(time.RFC3339),
	)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to create session in redis",
			zap.String("sessionID", session.ID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("failed to create session in redis: %w", err)
	}

	r.logger.Debug("Session created",
		zap.String("sessionID", session.ID.String()),
		zap.String("videoID", session.VideoID),
		zap.Duration("ttl", r.ttl),
	)
	return nil
}

func (r *redisSessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	values, err := r.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		r.logger.Error("Failed to get session from redis",
			zap.String("sessionID", id.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}
	// HGetAll возвращает пустую map для отсутствующего ключа
	if len(values) == 0 {
		return nil, models.ErrSessionNotFound
	}

	session := &models.Session{
		ID:      id,
		VideoID: values[fieldVideoID],
		Summary: values[fieldSummary],
	}
	if rawCount, ok := values[fieldQuestionCount]; ok {
		count, err := strconv.Atoi(rawCount)
		if err != nil {
			return nil, fmt.Errorf("corrupted question_count for session %s: %w", id, err)
		}
		session.QuestionCount = count
	}
	if rawCreatedAt, ok := values[fieldCreatedAt]; ok {
		createdAt, err := time.Parse(time.RFC3339, rawCreatedAt)
		if err != nil {
			return nil, fmt.Errorf("corrupted created_at for session %s: %w", id, err)
		}
		session.CreatedAt = createdAt
	}

	return session, nil
}

// IncrementQuestionCount увеличивает счетчик через HIncrBy.
// Для отсутствующей сессии HIncrBy создал бы ключ заново, поэтому
// сначала проверяем существование.
func (r *redisSessionRepository) IncrementQuestionCount(ctx context.Context, id uuid.UUID) (int, error) {
	key := sessionKey(id)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check session existence: %w", err)
	}
	if exists == 0 {
		return 0, models.ErrSessionNotFound
	}

	newCount, err := r.client.HIncrBy(ctx, key, fieldQuestionCount, 1).Result()
	if err != nil {
		r.logger.Error("Failed to increment question count",
			zap.String("sessionID", id.String()),
			zap.Error(err),
		)
		return 0, fmt.Errorf("failed to increment question count: %w", err)
	}

	return int(newCount), nil
}
