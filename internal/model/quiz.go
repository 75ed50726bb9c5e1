package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description" gorm:"type:text;not null"`
	TimeLimitMinutes *int           `json:"time_limit_minutes,omitempty"`
	Questions        []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
