package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recap-server/internal/models"

	"github.com/kkdai/youtube/v2"
	"go.uber.org/zap"
)

// Kind автоматически сгенерированных субтитров в ответе YouTube.
const asrKind = "asr"

// Client - интерфейс для получения текста транскрипта YouTube видео.
type Client interface {
	// ExtractVideoID извлекает ID видео из watch/short/embed URL или "голого" ID.
	ExtractVideoID(rawURL string) (string, error)
	// Fetch возвращает полный текст транскрипта для видео.
	Fetch(ctx context.Context, videoID string) (string, error)
}

type youtubeClient struct {
	client        *youtube.Client
	preferredLang string
	logger        *zap.Logger
}

// NewYouTubeClient создает клиент транскриптов поверх innertube API YouTube.
func NewYouTubeClient(preferredLang string, logger *zap.Logger) Client {
	return &youtubeClient{
		client:        &youtube.Client{},
		preferredLang: preferredLang,
		logger:        logger.Named("TranscriptClient"),
	}
}

func (c *youtubeClient) ExtractVideoID(rawURL string) (string, error) {
	videoID, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrInvalidVideoURL, err)
	}
	return videoID, nil
}

func (c *youtubeClient) Fetch(ctx context.Context, videoID string) (string, error) {
	video, err := c.client.GetVideoContext(ctx, videoID)
	if err != nil {
		c.logger.Warn("Failed to fetch video metadata",
			zap.String("videoID", videoID),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", models.ErrTranscriptUnavailable, err)
	}

	lang := pickCaptionLanguage(video.CaptionTracks, c.preferredLang)
	if lang == "" {
		c.logger.Info("No caption tracks available", zap.String("videoID", videoID))
		return "", models.ErrTranscriptUnavailable
	}

	segments, err := c.client.GetTranscriptCtx(ctx, video, lang)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return "", models.ErrTranscriptUnavailable
		}
		c.logger.Warn("Failed to fetch transcript",
			zap.String("videoID", videoID),
			zap.String("lang", lang),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", models.ErrTranscriptUnavailable, err)
	}

	text := assembleTranscript(segments)
	if text == "" {
		return "", models.ErrTranscriptEmpty
	}

	c.logger.Debug("Transcript fetched",
		zap.String("videoID", videoID),
		zap.String("lang", lang),
		zap.Int("segments", len(segments)),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

// pickCaptionLanguage выбирает язык субтитров по приоритету:
// ручные субтитры на предпочитаемом языке > авто-субтитры на предпочитаемом
// языке > первые ручные > первая доступная дорожка.
// Возвращает пустую строку, если дорожек нет.
func pickCaptionLanguage(tracks []youtube.CaptionTrack, preferredLang string) string {
	if len(tracks) == 0 {
		return ""
	}

	var preferredAuto, firstManual string
	for _, track := range tracks {
		matchesPreferred := track.LanguageCode == preferredLang ||
			strings.HasPrefix(track.LanguageCode, preferredLang+"-")

		if matchesPreferred && track.Kind != asrKind {
			return track.LanguageCode
		}
		if matchesPreferred && preferredAuto == "" {
			preferredAuto = track.LanguageCode
		}
		if track.Kind != asrKind && firstManual == "" {
			firstManual = track.LanguageCode
		}
	}

	if preferredAuto != "" {
		return preferredAuto
	}
	if firstManual != "" {
		return firstManual
	}
	return tracks[0].LanguageCode
}

// assembleTranscript склеивает сегменты в один текст и нормализует пробелы.
func assembleTranscript(segments youtube.VideoTranscript) string {
	var sb strings.Builder
	for _, segment := range segments {
		sb.WriteString(segment.Text)
		sb.WriteByte(' ')
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
