package models

// ErrorCode - машиночитаемый код ошибки для фронтенда.
type ErrorCode string

const (
	ErrCodeBadRequest            ErrorCode = "bad_request"
	ErrCodeInvalidVideoURL       ErrorCode = "invalid_video_url"
	ErrCodeTranscriptUnavailable ErrorCode = "transcript_unavailable"
	ErrCodeSessionNotFound       ErrorCode = "session_not_found"
	ErrCodePromptLimitReached    ErrorCode = "prompt_limit_reached"
	ErrCodeAIUnavailable         ErrorCode = "ai_unavailable"
	ErrCodeInternal              ErrorCode = "internal_error"
)

// ErrorResponse - стандартная структура для ответа об ошибке в формате JSON.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
