package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recap-server/internal/models"
	"recap-server/internal/repository"
	"recap-server/internal/transcript"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecapService - основной сервис: суммаризация видео и follow-up вопросы
// в рамках сессии.
type RecapService interface {
	// Summarize скачивает транскрипт видео, суммаризирует его и создает сессию.
	Summarize(ctx context.Context, videoURL string) (*models.Session, error)
	// Ask отвечает на follow-up вопрос в контексте summary сессии.
	// Возвращает models.ErrPromptLimitReached после исчерпания лимита вопросов.
	Ask(ctx context.Context, sessionID uuid.UUID, question string) (*models.Answer, error)
	// GetSession возвращает состояние сессии.
	GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)
	// PromptLimit возвращает настроенный лимит follow-up вопросов.
	PromptLimit() int
}

type recapService struct {
	transcripts          transcript.Client
	ai                   AIClient
	sessions             repository.SessionRepository
	promptLimit          int
	transcriptTokenLimit int
	logger               *zap.Logger
}

// NewRecapService создает RecapService.
func NewRecapService(
	transcripts transcript.Client,
	ai AIClient,
	sessions repository.SessionRepository,
	promptLimit int,
	transcriptTokenLimit int,
	logger *zap.Logger,
) RecapService {
	return &recapService{
		transcripts:          transcripts,
		ai:                   ai,
		sessions:             sessions,
		promptLimit:          promptLimit,
		transcriptTokenLimit: transcriptTokenLimit,
		logger:               logger.Named("RecapService"),
	}
}

func (s *recapService) PromptLimit() int {
	return s.promptLimit
}

func (s *recapService) Summarize(ctx context.Context, videoURL string) (*models.Session, error) {
	videoID, err := s.transcripts.ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Fetching transcript", zap.String("videoID", videoID))
	transcriptText, err := s.transcripts.Fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}

	systemPrompt, userInput := BuildSummaryPrompt(transcriptText, s.transcriptTokenLimit)

	s.logger.Info("Summarizing transcript",
		zap.String("videoID", videoID),
		zap.Int("transcriptChars", len(transcriptText)),
	)
	summary, usage, err := s.ai.GenerateText(ctx, systemPrompt, userInput)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:            uuid.New(),
		VideoID:       videoID,
		Summary:       summary,
		QuestionCount: 0,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Session created",
		zap.String("sessionID", session.ID.String()),
		zap.String("videoID", videoID),
		zap.Int("summaryChars", len(summary)),
		zap.Int("totalTokens", usage.TotalTokens),
	)
	return session, nil
}

func (s *recapService) Ask(ctx context.Context, sessionID uuid.UUID, question string) (*models.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("%w: question is empty", models.ErrInvalidInput)
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.QuestionCount >= s.promptLimit {
		s.logger.Info("Prompt limit reached",
			zap.String("sessionID", sessionID.String()),
			zap.Int("questionCount", session.QuestionCount),
			zap.Int("promptLimit", s.promptLimit),
		)
		return nil, models.ErrPromptLimitReached
	}

	systemPrompt, userInput := BuildAnswerPrompt(session.Summary, question)

	answerText, usage, err := s.ai.GenerateText(ctx, systemPrompt, userInput)
	if err != nil {
		return nil, err
	}

	// Счетчик увеличиваем только после успешного ответа, чтобы
	// сбой AI не съедал вопрос пользователя.
	newCount, err := s.sessions.IncrementQuestionCount(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Question answered",
		zap.String("sessionID", sessionID.String()),
		zap.Int("questionCount", newCount),
		zap.Int("totalTokens", usage.TotalTokens),
	)

	return &models.Answer{
		SessionID:     sessionID,
		Text:          answerText,
		QuestionCount: newCount,
	}, nil
}

func (s *recapService) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}
