package repository

import (
	"github.com/ndthang/quizhub/internal/model"
	"gorm.io/gorm"
)

// AttemptRepository is append-only by design: attempts are immutable history,
// so there is no Update or Delete.
type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindAll() ([]model.Attempt, error)
	FindAllByUser(userID uint) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindAll() ([]model.Attempt, error) {
	var attempts []model.Attempt
	if err := r.db.Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) FindAllByUser(userID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("user_id = ?", userID).
		Preload("Quiz.Questions").
		Order("submitted_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
