package model

import (
	"time"

	"gorm.io/gorm"
)

// Submission is one completed attempt of a quiz by one phone number.
// The composite unique index on (quiz_id, phone) is what guarantees
// at-most-one attempt per participant, even under concurrent submits.
type Submission struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	QuizID           uint           `json:"quiz_id" gorm:"not null;index;uniqueIndex:idx_submissions_quiz_phone"`
	Quiz             Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Phone            string         `json:"phone" gorm:"type:varchar(20);not null;uniqueIndex:idx_submissions_quiz_phone"`
	Event            string         `json:"event,omitempty" gorm:"type:varchar(50)"`
	Score            int            `json:"score" gorm:"not null"`
	TotalQuestions   int            `json:"total_questions" gorm:"not null"`
	TimeTakenSeconds int            `json:"time_taken_seconds"`
	Answers          []Answer       `json:"answers,omitempty" gorm:"foreignKey:SubmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
