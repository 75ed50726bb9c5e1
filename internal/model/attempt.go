package model

import (
	"time"

	"gorm.io/gorm"
)

// UnansweredIndex marks a question the user left blank. The wire format uses
// JSON null; the stored answers array keeps the slot as -1 so the column stays
// a plain int array.
const UnansweredIndex = -1

// Attempt is one immutable record of a user's pass through a quiz. Attempts
// are append-only: they are created once at submission and never updated.
type Attempt struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	User        User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz        Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Answers     IntArray       `json:"answers" gorm:"type:jsonb;not null"`
	Score       int            `json:"score" gorm:"not null"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
