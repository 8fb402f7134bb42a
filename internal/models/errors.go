package models

import "errors"

// Стандартные ошибки приложения
var (
	// Ошибки транскрипта
	ErrInvalidVideoURL       = errors.New("invalid youtube video url")
	ErrTranscriptUnavailable = errors.New("transcript is unavailable for this video")
	ErrTranscriptEmpty       = errors.New("transcript extracted but empty")

	// Ошибки сессий
	ErrSessionNotFound    = errors.New("session not found")
	ErrPromptLimitReached = errors.New("prompt limit reached for this session")

	// Ошибки AI
	ErrAIGenerationFailed = errors.New("ai text generation failed")
	ErrAIEmptyResponse    = errors.New("ai returned an empty response")

	// Общие ошибки запросов/сервера
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
	ErrInvalidInput   = errors.New("invalid input data")
)
