package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Question struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	QuizID       uint           `json:"quiz_id" gorm:"not null;index"`
	Text         string         `json:"text" gorm:"type:text;not null"`
	Options      StringArray    `json:"options" gorm:"type:jsonb;not null"`
	CorrectIndex int            `json:"-" gorm:"not null"` // answer key, never serialized to clients
	Difficulty   string         `json:"difficulty" gorm:"size:20;not null;default:'medium'"` // "easy", "medium", "hard"
	Tags         StringArray    `json:"tags,omitempty" gorm:"type:jsonb"`
	Position     int            `json:"position" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsValidOption reports whether the selected index points at one of the options.
func (q *Question) IsValidOption(selected int) bool {
	return selected >= 0 && selected < len(q.Options)
}

// IsCorrect reports whether the selected index matches the answer key.
func (q *Question) IsCorrect(selected int) bool {
	return selected == q.CorrectIndex
}
