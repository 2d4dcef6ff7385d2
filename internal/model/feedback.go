package model

import (
	"time"

	"gorm.io/gorm"
)

// Feedback is at most one per Submission; the unique index backs the
// create-once semantics (a second create is swallowed by the service).
type Feedback struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	SubmissionID     uint           `json:"submission_id" gorm:"not null;uniqueIndex"`
	Submission       Submission     `json:"submission,omitempty" gorm:"foreignKey:SubmissionID"`
	Rating           int            `json:"rating" gorm:"not null"` // 1..5
	RatingUI         int            `json:"rating_ui" gorm:"default:0"`
	RatingDifficulty int            `json:"rating_difficulty" gorm:"default:0"`
	RatingRelevance  int            `json:"rating_relevance" gorm:"default:0"`
	Comments         string         `json:"comments,omitempty" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
