package models

import (
	"time"

	"github.com/google/uuid"
)

// Session - состояние одной сессии "summary + follow-up вопросы".
// Хранится в Redis и живет до истечения TTL.
type Session struct {
	ID            uuid.UUID `json:"session_id"`
	VideoID       string    `json:"video_id"`
	Summary       string    `json:"summary"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionsLeft возвращает количество оставшихся follow-up вопросов.
func (s *Session) QuestionsLeft(limit int) int {
	left := limit - s.QuestionCount
	if left < 0 {
		return 0
	}
	return left
}

// Answer - результат одного follow-up вопроса.
type Answer struct {
	SessionID     uuid.UUID
	Text          string
	QuestionCount int
}
