package repository

import (
	"github.com/hanndt/mathpal/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.MathProblemSubmission) error
	FindBySessionID(sessionID string) ([]model.MathProblemSubmission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.MathProblemSubmission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindBySessionID(sessionID string) ([]model.MathProblemSubmission, error) {
	var submissions []model.MathProblemSubmission
	if err := r.db.Where("session_id = ?", sessionID).Order("created_at desc").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
