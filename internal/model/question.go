package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuizID        uint           `json:"quiz_id" gorm:"not null;index"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	ImageURL      *string        `json:"image_url,omitempty"`
	OptionA       string         `json:"option_a" gorm:"type:text;not null"`
	OptionB       string         `json:"option_b" gorm:"type:text;not null"`
	OptionC       string         `json:"option_c" gorm:"type:text;not null"`
	OptionD       string         `json:"option_d" gorm:"type:text;not null"`
	CorrectOption string         `json:"correct_option" gorm:"type:varchar(1);not null"` // 'A','B','C','D'
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// OptionText maps an original option letter back to its text.
func (q *Question) OptionText(letter string) string {
	switch letter {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}
