package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"recap-server/internal/models"
	"recap-server/internal/repository"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"
)

// RedisSessionRepositorySuite - интеграционные тесты хранилища сессий
// против реального Redis в контейнере.
type RedisSessionRepositorySuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *goredis.Client
}

func TestRedisSessionRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RedisSessionRepositorySuite))
}

func (s *RedisSessionRepositorySuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err, "Failed to start redis container")
	s.container = container

	connStr, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	opts, err := goredis.ParseURL(connStr)
	s.Require().NoError(err)

	s.client = goredis.NewClient(opts)
	s.Require().NoError(s.client.Ping(ctx).Err())
}

func (s *RedisSessionRepositorySuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *RedisSessionRepositorySuite) newRepo(ttl time.Duration) repository.SessionRepository {
	return repository.NewRedisSessionRepository(s.client, ttl, zap.NewNop())
}

func (s *RedisSessionRepositorySuite) newSession() *models.Session {
	return &models.Session{
		ID:            uuid.New(),
		VideoID:       "dQw4w9WgXcQ",
		Summary:       "a summary of the video",
		QuestionCount: 0,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func (s *RedisSessionRepositorySuite) TestCreateAndGetRoundTrip() {
	ctx := context.Background()
	repo := s.newRepo(time.Hour)
	session := s.newSession()

	require.NoError(s.T(), repo.Create(ctx, session))

	got, err := repo.Get(ctx, session.ID)
	require.NoError(s.T(), err)
	s.Equal(session.VideoID, got.VideoID)
	s.Equal(session.Summary, got.Summary)
	s.Equal(0, got.QuestionCount)
	s.True(session.CreatedAt.Equal(got.CreatedAt), "created_at must round-trip")
}

func (s *RedisSessionRepositorySuite) TestGetMissingSession() {
	ctx := context.Background()
	repo := s.newRepo(time.Hour)

	_, err := repo.Get(ctx, uuid.New())
	s.ErrorIs(err, models.ErrSessionNotFound)
}

func (s *RedisSessionRepositorySuite) TestIncrementQuestionCount() {
	ctx := context.Background()
	repo := s.newRepo(time.Hour)
	session := s.newSession()

	require.NoError(s.T(), repo.Create(ctx, session))

	for i := 1; i <= 3; i++ {
		count, err := repo.IncrementQuestionCount(ctx, session.ID)
		require.NoError(s.T(), err)
		s.Equal(i, count)
	}

	got, err := repo.Get(ctx, session.ID)
	require.NoError(s.T(), err)
	s.Equal(3, got.QuestionCount)
}

func (s *RedisSessionRepositorySuite) TestIncrementMissingSession() {
	ctx := context.Background()
	repo := s.newRepo(time.Hour)

	_, err := repo.IncrementQuestionCount(ctx, uuid.New())
	s.ErrorIs(err, models.ErrSessionNotFound)
}

func (s *RedisSessionRepositorySuite) TestSessionExpiresByTTL() {
	ctx := context.Background()
	repo := s.newRepo(time.Second)
	session := s.newSession()

	require.NoError(s.T(), repo.Create(ctx, session))

	s.Eventually(func() bool {
		_, err := repo.Get(ctx, session.ID)
		return errors.Is(err, models.ErrSessionNotFound)
	}, 5*time.Second, 250*time.Millisecond, "session should expire")
}
