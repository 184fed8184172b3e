package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MathProblemSession is one generated word problem together with its
// expected answer and the (lazily computed) hint.
type MathProblemSession struct {
	ID            string                  `gorm:"type:uuid;primaryKey" json:"id"`
	ProblemText   string                  `json:"problem_text" gorm:"type:text;not null"`
	CorrectAnswer float64                 `json:"correct_answer" gorm:"not null"`
	HintText      *string                 `json:"hint_text,omitempty" gorm:"type:text"`
	Submissions   []MathProblemSubmission `json:"submissions,omitempty" gorm:"foreignKey:SessionID"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func (s *MathProblemSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
