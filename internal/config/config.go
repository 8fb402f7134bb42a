package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"recap-server/internal/utils"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config содержит конфигурацию сервиса суммаризации.
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"debug"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	// Настройки AI (Mistral, OpenAI-совместимый API)
	AIBaseURL        string        `envconfig:"AI_BASE_URL" default:"https://api.mistral.ai/v1"`
	AIModel          string        `envconfig:"AI_MODEL" default:"open-mistral-7b"`
	AITimeout        time.Duration `envconfig:"AI_TIMEOUT" default:"120s"`
	AIMaxAttempts    int           `envconfig:"AI_MAX_ATTEMPTS" default:"3"`
	AIBaseRetryDelay time.Duration `envconfig:"AI_BASE_RETRY_DELAY" default:"1s"`
	// Секретное поле БЕЗ envconfig тега
	AIAPIKey string

	// Настройки Redis (хранилище сессий)
	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`
	// Секретное поле БЕЗ envconfig тега
	RedisPassword string

	// Настройки транскриптов
	TranscriptLang       string `envconfig:"TRANSCRIPT_LANG" default:"en"`
	TranscriptTokenLimit int    `envconfig:"TRANSCRIPT_TOKEN_LIMIT" default:"2500"`

	// Настройки сессий вопросов
	PromptLimit int           `envconfig:"PROMPT_LIMIT" default:"8"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	// Фронтенд
	WebDir string `envconfig:"WEB_DIR" default:"./web"`

	// CORS Settings
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:8080"`

	// Rate limit для /api (на IP)
	RateLimit  uint          `envconfig:"RATE_LIMIT" default:"20"`
	RateWindow time.Duration `envconfig:"RATE_WINDOW" default:"1m"`
}

// GetAllowedOrigins разбивает CORSAllowedOrigins на список origin'ов.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// LoadConfig загружает конфигурацию из переменных окружения и секретов.
func LoadConfig(envFilePath string) (*Config, error) {
	// Пытаемся подхватить .env (локальная разработка); отсутствие файла - не ошибка
	if _, err := os.Stat(envFilePath); err == nil {
		if err := godotenv.Load(envFilePath); err != nil {
			log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
		} else {
			log.Printf("Loaded configuration from %s", envFilePath)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	// Секреты загружаем отдельно: Docker secret или env fallback
	apiKey, err := utils.ReadSecret("mistral_api_key", "MISTRAL_API_KEY")
	if err != nil {
		return nil, fmt.Errorf("failed to load AI API key: %w", err)
	}
	cfg.AIAPIKey = apiKey

	// Пароль Redis опционален (локальный Redis без пароля)
	if redisPassword, err := utils.ReadSecret("redis_password", "REDIS_PASSWORD"); err == nil {
		cfg.RedisPassword = redisPassword
	}

	if cfg.PromptLimit <= 0 {
		return nil, fmt.Errorf("PROMPT_LIMIT must be positive, got %d", cfg.PromptLimit)
	}
	if cfg.TranscriptTokenLimit <= 0 {
		return nil, fmt.Errorf("TRANSCRIPT_TOKEN_LIMIT must be positive, got %d", cfg.TranscriptTokenLimit)
	}

	return &cfg, nil
}
