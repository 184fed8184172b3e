package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MathProblemSubmission records one answer attempt against a session.
// Rows are append-only; resubmission simply adds another row.
type MathProblemSubmission struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID    string    `json:"session_id" gorm:"type:uuid;not null;index"`
	UserAnswer   float64   `json:"user_answer" gorm:"not null"`
	IsCorrect    bool      `json:"is_correct" gorm:"not null"`
	FeedbackText string    `json:"feedback_text" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *MathProblemSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
