package dto

// HintRequest asks for a hint on an existing session.
type HintRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// SubmitAnswerRequest carries a numeric answer for an existing session.
// UserAnswer is a pointer so that a missing field can be told apart from 0.
type SubmitAnswerRequest struct {
	SessionID  string   `json:"sessionId" binding:"required"`
	UserAnswer *float64 `json:"user_answer" binding:"required"`
}
