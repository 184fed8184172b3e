package repository

import (
	"github.com/hanndt/mathpal/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.MathProblemSession) error
	FindByID(id string) (*model.MathProblemSession, error)
	UpdateHint(id string, hint string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.MathProblemSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id string) (*model.MathProblemSession, error) {
	var session model.MathProblemSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateHint writes only the hint_text column. Concurrent writers race with
// last-write-wins semantics; callers treat their own computed hint as
// authoritative for the request that produced it.
func (r *sessionRepository) UpdateHint(id string, hint string) error {
	return r.db.Model(&model.MathProblemSession{}).
		Where("id = ?", id).
		Update("hint_text", hint).Error
}
