package repository

import (
	"github.com/aispectrumclubaiml/ak/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *model.Feedback) error
	FindBySubmissionID(submissionID uint) (*model.Feedback, error)
	FindAllByQuizID(quizID uint) ([]model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *model.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) FindBySubmissionID(submissionID uint) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.db.Where("submission_id = ?", submissionID).First(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) FindAllByQuizID(quizID uint) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.Preload("Submission").
		Joins("JOIN submissions ON submissions.id = feedbacks.submission_id").
		Where("submissions.quiz_id = ? AND submissions.deleted_at IS NULL", quizID).
		Order("feedbacks.created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}
