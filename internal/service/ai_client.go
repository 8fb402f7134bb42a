package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recap-server/internal/config"
	"recap-server/internal/models"

	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Цены open-mistral-7b за 1М токенов в USD
const (
	pricePerMillionInputTokensUSD  = 0.25
	pricePerMillionOutputTokensUSD = 0.25
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recap_ai_requests_total",
			Help: "Total number of requests to the AI API.",
		},
		[]string{"model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recap_ai_request_duration_seconds",
			Help:    "Histogram of AI API request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
	aiPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recap_ai_prompt_tokens",
			Help:    "Histogram of prompt token counts per AI request.",
			Buckets: prometheus.ExponentialBuckets(64, 2, 10),
		},
		[]string{"model"},
	)
	aiCompletionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recap_ai_completion_tokens",
			Help:    "Histogram of completion token counts per AI request.",
			Buckets: prometheus.ExponentialBuckets(64, 2, 10),
		},
		[]string{"model"},
	)
	aiEstimatedCostUSD = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recap_ai_estimated_cost_usd_total",
			Help: "Estimated total cost of AI requests in USD.",
		},
		[]string{"model"},
	)
)

// UsageInfo содержит информацию об использовании токенов и стоимости.
type UsageInfo struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	EstimatedCostUSD float64
}

// AIClient - интерфейс для взаимодействия с OpenAI-совместимым chat API.
type AIClient interface {
	// GenerateText генерирует текст на основе системного промпта и ввода пользователя.
	GenerateText(ctx context.Context, systemPrompt string, userInput string) (string, UsageInfo, error)
}

// calculateCost рассчитывает оценочную стоимость запроса на основе токенов.
func calculateCost(promptTokens, completionTokens int) float64 {
	inputCost := float64(promptTokens) * pricePerMillionInputTokensUSD / 1_000_000.0
	outputCost := float64(completionTokens) * pricePerMillionOutputTokensUSD / 1_000_000.0
	return inputCost + outputCost
}

// openAIClient реализует AIClient с использованием go-openai.
// Mistral предоставляет OpenAI-совместимый API, поэтому клиент отличается
// только BaseURL.
type openAIClient struct {
	client      *openaigo.Client
	model       string
	maxAttempts int
	retryDelay  time.Duration
	logger      *zap.Logger
}

// NewAIClient создает клиент для настроенного AI API.
func NewAIClient(cfg *config.Config, logger *zap.Logger) AIClient {
	clientConfig := openaigo.DefaultConfig(cfg.AIAPIKey)
	clientConfig.BaseURL = cfg.AIBaseURL
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.AITimeout}

	maxAttempts := cfg.AIMaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &openAIClient{
		client:      openaigo.NewClientWithConfig(clientConfig),
		model:       cfg.AIModel,
		maxAttempts: maxAttempts,
		retryDelay:  cfg.AIBaseRetryDelay,
		logger:      logger.Named("AIClient"),
	}
}

func (c *openAIClient) GenerateText(ctx context.Context, systemPrompt string, userInput string) (string, UsageInfo, error) {
	usageInfo := UsageInfo{}

	if strings.TrimSpace(systemPrompt) == "" {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error"}).Inc()
		return "", usageInfo, fmt.Errorf("%w: системный промпт пуст", models.ErrAIGenerationFailed)
	}

	messages := []openaigo.ChatCompletionMessage{
		{
			Role:    openaigo.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
	}
	if userInput != "" {
		messages = append(messages, openaigo.ChatCompletionMessage{
			Role:    openaigo.ChatMessageRoleUser,
			Content: userInput,
		})
	}

	request := openaigo.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		startTime := time.Now()
		c.logger.Debug("Отправка запроса к AI",
			zap.String("model", c.model),
			zap.Int("attempt", attempt),
			zap.Int("systemPromptBytes", len(systemPrompt)),
			zap.Int("userInputBytes", len(userInput)),
		)

		resp, err := c.client.CreateChatCompletion(ctx, request)
		duration := time.Since(startTime)

		if err != nil {
			lastErr = err
			c.logger.Warn("Ошибка от AI API",
				zap.String("model", c.model),
				zap.Int("attempt", attempt),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error"}).Inc()

			if ctx.Err() != nil {
				break // контекст отменен, повторять бессмысленно
			}
			if attempt < c.maxAttempts {
				select {
				case <-time.After(c.retryDelay * time.Duration(attempt)):
				case <-ctx.Done():
				}
			}
			continue
		}

		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			lastErr = models.ErrAIEmptyResponse
			aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_empty_response"}).Inc()
			continue
		}

		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "success"}).Inc()
		aiRequestDuration.With(prometheus.Labels{"model": c.model}).Observe(duration.Seconds())

		generatedText := resp.Choices[0].Message.Content
		c.logger.Debug("Ответ от AI API получен",
			zap.Duration("duration", duration),
			zap.Int("responseChars", len(generatedText)),
		)

		if resp.Usage.TotalTokens > 0 {
			aiPromptTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(resp.Usage.PromptTokens))
			aiCompletionTokens.With(prometheus.Labels{"model": c.model}).Observe(float64(resp.Usage.CompletionTokens))

			usageInfo.PromptTokens = resp.Usage.PromptTokens
			usageInfo.CompletionTokens = resp.Usage.CompletionTokens
			usageInfo.TotalTokens = resp.Usage.TotalTokens
			usageInfo.EstimatedCostUSD = calculateCost(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
			if usageInfo.EstimatedCostUSD > 0 {
				aiEstimatedCostUSD.With(prometheus.Labels{"model": c.model}).Add(usageInfo.EstimatedCostUSD)
			}
		}

		return generatedText, usageInfo, nil
	}

	return "", usageInfo, fmt.Errorf("%w: %v", models.ErrAIGenerationFailed, lastErr)
}
