package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is one graded question within a Submission. SelectedOption is nil
// when the participant left the question unanswered. CorrectOption is copied
// from the Question at grading time so result views never re-derive it.
type Answer struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	SubmissionID   uint           `json:"submission_id" gorm:"not null;index"`
	Submission     Submission     `json:"-" gorm:"foreignKey:SubmissionID"`
	QuestionID     uint           `json:"question_id" gorm:"not null;index"`
	Question       Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedOption *string        `json:"selected_option,omitempty" gorm:"type:varchar(1)"`
	CorrectOption  string         `json:"correct_option" gorm:"type:varchar(1);not null"`
	IsCorrect      bool           `json:"is_correct" gorm:"default:false"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
