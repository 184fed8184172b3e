package dto

import "time"

type GenerateProblemResponse struct {
	SessionID   string `json:"sessionId"`
	ProblemText string `json:"problem_text"`
}

type HintResponse struct {
	Hint string `json:"hint"`
}

type SubmitAnswerResponse struct {
	IsCorrect bool      `json:"is_correct"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmissionResponse is one historical attempt in a session's submission list.
type SubmissionResponse struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	UserAnswer float64   `json:"user_answer"`
	IsCorrect  bool      `json:"is_correct"`
	Feedback   string    `json:"feedback"`
	CreatedAt  time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
