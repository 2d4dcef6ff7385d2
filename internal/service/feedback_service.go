package service

import (
	"errors"
	"fmt"

	"github.com/aispectrumclubaiml/ak/internal/dto"
	"github.com/aispectrumclubaiml/ak/internal/model"
	"github.com/aispectrumclubaiml/ak/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FeedbackService records post-quiz feedback, at most once per submission.
// A duplicate post is swallowed: the stored feedback is returned unchanged.
type FeedbackService interface {
	SubmitFeedback(req dto.FeedbackRequest) (*dto.FeedbackResponse, error)
}

type feedbackService struct {
	feedbackRepo   repository.FeedbackRepository
	submissionRepo repository.SubmissionRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, submissionRepo repository.SubmissionRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo:   feedbackRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *feedbackService) SubmitFeedback(req dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	if _, err := s.submissionRepo.FindByID(req.SubmissionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: submission %d", ErrNotFound, req.SubmissionID)
		}
		return nil, fmt.Errorf("error loading submission %d: %w", req.SubmissionID, err)
	}

	if existing, err := s.feedbackRepo.FindBySubmissionID(req.SubmissionID); err == nil {
		log.Info().Uint("submissionID", req.SubmissionID).Msg("SubmitFeedback: feedback already recorded, ignoring duplicate")
		return feedbackResponse(existing)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking existing feedback: %w", err)
	}

	feedback := model.Feedback{
		SubmissionID:     req.SubmissionID,
		Rating:           req.Rating,
		RatingUI:         clampRating(req.RatingUI),
		RatingDifficulty: clampRating(req.RatingDifficulty),
		RatingRelevance:  clampRating(req.RatingRelevance),
		Comments:         req.Comments,
	}

	if err := s.feedbackRepo.Create(&feedback); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent duplicate; same swallow semantics.
			if existing, findErr := s.feedbackRepo.FindBySubmissionID(req.SubmissionID); findErr == nil {
				return feedbackResponse(existing)
			}
		}
		log.Error().Err(err).Uint("submissionID", req.SubmissionID).Msg("SubmitFeedback: failed to persist feedback")
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}

	return feedbackResponse(&feedback)
}

// clampRating keeps optional sub-ratings in 0..5, with 0 meaning unrated.
func clampRating(rating int) int {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}

func feedbackResponse(feedback *model.Feedback) (*dto.FeedbackResponse, error) {
	var resp dto.FeedbackResponse
	if err := copier.Copy(&resp, feedback); err != nil {
		return nil, fmt.Errorf("error preparing feedback response: %w", err)
	}
	return &resp, nil
}
