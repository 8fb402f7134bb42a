package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"recap-server/internal/mocks"
	"recap-server/internal/models"
	"recap-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testVideoURL   = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	testVideoID    = "dQw4w9WgXcQ"
	testTranscript = "never gonna give you up never gonna let you down"
	testSummary    = "A summary of the video."
	testAnswer     = "An answer based on the summary."

	testPromptLimit = 8
	testTokenLimit  = 2500
)

func newTestService(t *testing.T) (service.RecapService, *mocks.MockTranscriptClient, *mocks.MockAIClient, *mocks.MockSessionRepository) {
	mockTranscripts := mocks.NewMockTranscriptClient(t)
	mockAI := mocks.NewMockAIClient(t)
	mockSessions := mocks.NewMockSessionRepository(t)

	svc := service.NewRecapService(mockTranscripts, mockAI, mockSessions, testPromptLimit, testTokenLimit, zap.NewNop())
	return svc, mockTranscripts, mockAI, mockSessions
}

func TestRecapService_Summarize(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful summarization creates a session", func(t *testing.T) {
		svc, mockTranscripts, mockAI, mockSessions := newTestService(t)

		mockTranscripts.On("ExtractVideoID", testVideoURL).Return(testVideoID, nil).Once()
		mockTranscripts.On("Fetch", mock.Anything, testVideoID).Return(testTranscript, nil).Once()

		mockAI.On("GenerateText",
			mock.Anything,
			mock.MatchedBy(func(systemPrompt string) bool { return systemPrompt != "" }),
			testTranscript, // транскрипт короткий, обрезка не должна его менять
		).Return(testSummary, service.UsageInfo{TotalTokens: 42}, nil).Once()

		mockSessions.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).
			Return(nil).Once().Run(func(args mock.Arguments) {
			session := args.Get(1).(*models.Session)
			assert.Equal(t, testVideoID, session.VideoID)
			assert.Equal(t, testSummary, session.Summary)
			assert.Equal(t, 0, session.QuestionCount)
			assert.False(t, session.CreatedAt.IsZero())
		})

		session, err := svc.Summarize(ctx, testVideoURL)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, testVideoID, session.VideoID)
		assert.Equal(t, testSummary, session.Summary)
		assert.Equal(t, testPromptLimit, session.QuestionsLeft(testPromptLimit))

		mockTranscripts.AssertExpectations(t)
		mockAI.AssertExpectations(t)
		mockSessions.AssertExpectations(t)
	})

	t.Run("Invalid video URL", func(t *testing.T) {
		svc, mockTranscripts, mockAI, _ := newTestService(t)

		mockTranscripts.On("ExtractVideoID", "not-a-url").
			Return("", models.ErrInvalidVideoURL).Once()

		session, err := svc.Summarize(ctx, "not-a-url")
		assert.Nil(t, session)
		assert.ErrorIs(t, err, models.ErrInvalidVideoURL)
		mockAI.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Transcript unavailable", func(t *testing.T) {
		svc, mockTranscripts, mockAI, _ := newTestService(t)

		mockTranscripts.On("ExtractVideoID", testVideoURL).Return(testVideoID, nil).Once()
		mockTranscripts.On("Fetch", mock.Anything, testVideoID).
			Return("", models.ErrTranscriptUnavailable).Once()

		session, err := svc.Summarize(ctx, testVideoURL)
		assert.Nil(t, session)
		assert.ErrorIs(t, err, models.ErrTranscriptUnavailable)
		mockAI.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AI failure does not create a session", func(t *testing.T) {
		svc, mockTranscripts, mockAI, mockSessions := newTestService(t)

		mockTranscripts.On("ExtractVideoID", testVideoURL).Return(testVideoID, nil).Once()
		mockTranscripts.On("Fetch", mock.Anything, testVideoID).Return(testTranscript, nil).Once()
		mockAI.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
			Return("", service.UsageInfo{}, models.ErrAIGenerationFailed).Once()

		session, err := svc.Summarize(ctx, testVideoURL)
		assert.Nil(t, session)
		assert.ErrorIs(t, err, models.ErrAIGenerationFailed)
		mockSessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRecapService_Ask(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()

	storedSession := func(count int) *models.Session {
		return &models.Session{
			ID:            sessionID,
			VideoID:       testVideoID,
			Summary:       testSummary,
			QuestionCount: count,
		}
	}

	t.Run("Successful answer increments the counter", func(t *testing.T) {
		svc, _, mockAI, mockSessions := newTestService(t)

		mockSessions.On("Get", mock.Anything, sessionID).Return(storedSession(2), nil).Once()
		mockAI.On("GenerateText",
			mock.Anything,
			mock.MatchedBy(func(systemPrompt string) bool {
				return strings.Contains(systemPrompt, "Summary: "+testSummary)
			}),
			"Question: what is the video about?",
		).Return(testAnswer, service.UsageInfo{}, nil).Once()
		mockSessions.On("IncrementQuestionCount", mock.Anything, sessionID).Return(3, nil).Once()

		answer, err := svc.Ask(ctx, sessionID, "what is the video about?")
		require.NoError(t, err)
		require.NotNil(t, answer)
		assert.Equal(t, testAnswer, answer.Text)
		assert.Equal(t, 3, answer.QuestionCount)

		mockSessions.AssertExpectations(t)
		mockAI.AssertExpectations(t)
	})

	t.Run("Empty question is rejected", func(t *testing.T) {
		svc, _, _, mockSessions := newTestService(t)

		answer, err := svc.Ask(ctx, sessionID, "   ")
		assert.Nil(t, answer)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
		mockSessions.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("Unknown session", func(t *testing.T) {
		svc, _, mockAI, mockSessions := newTestService(t)

		mockSessions.On("Get", mock.Anything, sessionID).
			Return(nil, models.ErrSessionNotFound).Once()

		answer, err := svc.Ask(ctx, sessionID, "question")
		assert.Nil(t, answer)
		assert.ErrorIs(t, err, models.ErrSessionNotFound)
		mockAI.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Question over the limit is rejected without an AI call", func(t *testing.T) {
		svc, _, mockAI, mockSessions := newTestService(t)

		mockSessions.On("Get", mock.Anything, sessionID).
			Return(storedSession(testPromptLimit), nil).Once()

		answer, err := svc.Ask(ctx, sessionID, "one more question")
		assert.Nil(t, answer)
		assert.ErrorIs(t, err, models.ErrPromptLimitReached)
		mockAI.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything, mock.Anything)
		mockSessions.AssertNotCalled(t, "IncrementQuestionCount", mock.Anything, mock.Anything)
	})

	t.Run("AI failure does not consume a question", func(t *testing.T) {
		svc, _, mockAI, mockSessions := newTestService(t)

		mockSessions.On("Get", mock.Anything, sessionID).Return(storedSession(1), nil).Once()
		mockAI.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
			Return("", service.UsageInfo{}, errors.New("upstream timeout")).Once()

		answer, err := svc.Ask(ctx, sessionID, "question")
		assert.Nil(t, answer)
		assert.Error(t, err)
		mockSessions.AssertNotCalled(t, "IncrementQuestionCount", mock.Anything, mock.Anything)
	})
}
