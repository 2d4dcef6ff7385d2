package repository

import (
	"errors"

	"github.com/aispectrumclubaiml/ak/internal/model"
	"gorm.io/gorm"
)

// ErrDuplicateAttempt is returned by CreateWithAnswers when the
// (quiz_id, phone) unique index rejects a second submission.
var ErrDuplicateAttempt = errors.New("submission already exists for this quiz and phone")

type SubmissionRepository interface {
	// CreateWithAnswers persists the submission and its answers in one
	// transaction. A unique violation on (quiz_id, phone) comes back as
	// ErrDuplicateAttempt and nothing is written.
	CreateWithAnswers(submission *model.Submission) error
	FindByID(id uint) (*model.Submission, error)
	FindByIDWithDetails(id uint) (*model.Submission, error)
	FindByQuizAndPhone(quizID uint, phone string) (*model.Submission, error)
	FindAllByQuizID(quizID uint) ([]model.Submission, error)
	FindAnswersByQuizID(quizID uint) ([]model.Answer, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) CreateWithAnswers(submission *model.Submission) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// GORM creates the associated Answers rows with the submission.
		return tx.Create(submission).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateAttempt
	}
	return err
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByIDWithDetails(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.
		Preload("Quiz").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		Preload("Answers.Question").
		First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByQuizAndPhone(quizID uint, phone string) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.Where("quiz_id = ? AND phone = ?", quizID, phone).First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAllByQuizID(quizID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Preload("Quiz").
		Where("quiz_id = ?", quizID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindAnswersByQuizID(quizID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Preload("Question").Preload("Submission").
		Joins("JOIN submissions ON submissions.id = answers.submission_id").
		Where("submissions.quiz_id = ? AND submissions.deleted_at IS NULL", quizID).
		Order("answers.submission_id ASC, answers.id ASC").
		Find(&answers).Error
	return answers, err
}
