package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Name            string         `json:"name" gorm:"not null;uniqueIndex"` // "Build With AI Prelims"
	DurationMinutes int            `json:"duration_minutes" gorm:"not null;default:30"`
	NumQuestions    int            `json:"num_questions" gorm:"not null;default:20"`
	IsActive        bool           `json:"is_active" gorm:"default:true"`
	ShowResults     bool           `json:"show_results" gorm:"default:true"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	Submissions     []Submission   `json:"submissions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
