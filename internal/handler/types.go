package handler

import "time"

type summarizeRequest struct {
	VideoURL string `json:"video_url" binding:"required"`
}

type askRequest struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
	Question  string `json:"question" binding:"required"`
}

type sessionResponse struct {
	SessionID     string    `json:"session_id"`
	VideoID       string    `json:"video_id"`
	Summary       string    `json:"summary"`
	QuestionsLeft int       `json:"questions_left"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

type answerResponse struct {
	Answer        string `json:"answer"`
	QuestionsLeft int    `json:"questions_left"`
}
