package service

import (
	"errors"
	"testing"

	"github.com/aispectrumclubaiml/ak/internal/dto"
	"github.com/aispectrumclubaiml/ak/internal/model"
)

func newFeedbackFixture() (FeedbackService, *fakeFeedbackRepo, *fakeSubmissionRepo) {
	quizzes := newFakeQuizRepo(&model.Quiz{ID: 3, Name: "Quiz", ShowResults: true})
	subs := newFakeSubmissionRepo(quizzes)
	_ = subs.CreateWithAnswers(&model.Submission{QuizID: 3, Phone: "9123456789", Score: 1, TotalQuestions: 2})
	feedbacks := newFakeFeedbackRepo()
	return NewFeedbackService(feedbacks, subs), feedbacks, subs
}

func TestSubmitFeedbackRecordsOnce(t *testing.T) {
	svc, feedbacks, _ := newFeedbackFixture()

	resp, err := svc.SubmitFeedback(dto.FeedbackRequest{
		SubmissionID:     1,
		Rating:           4,
		RatingUI:         5,
		RatingDifficulty: 3,
		Comments:         "good quiz",
	})
	if err != nil {
		t.Fatalf("feedback failed: %v", err)
	}
	if resp.Rating != 4 || resp.RatingUI != 5 || resp.RatingRelevance != 0 {
		t.Fatalf("unexpected stored ratings: %+v", resp)
	}
	if len(feedbacks.feedbacks) != 1 {
		t.Fatalf("expected one feedback row, got %d", len(feedbacks.feedbacks))
	}
}

func TestSubmitFeedbackDuplicateSwallowed(t *testing.T) {
	svc, feedbacks, _ := newFeedbackFixture()

	first, err := svc.SubmitFeedback(dto.FeedbackRequest{SubmissionID: 1, Rating: 5, Comments: "great"})
	if err != nil {
		t.Fatalf("first feedback failed: %v", err)
	}

	second, err := svc.SubmitFeedback(dto.FeedbackRequest{SubmissionID: 1, Rating: 1, Comments: "changed my mind"})
	if err != nil {
		t.Fatalf("duplicate feedback must not error: %v", err)
	}
	if second.Rating != first.Rating || second.Comments != first.Comments {
		t.Fatalf("duplicate overwrote original feedback: %+v", second)
	}
	if len(feedbacks.feedbacks) != 1 {
		t.Fatalf("expected one feedback row after duplicate, got %d", len(feedbacks.feedbacks))
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	svc, _, _ := newFeedbackFixture()

	if _, err := svc.SubmitFeedback(dto.FeedbackRequest{SubmissionID: 1, Rating: 0}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for rating 0, got %v", err)
	}
	if _, err := svc.SubmitFeedback(dto.FeedbackRequest{SubmissionID: 1, Rating: 6}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for rating 6, got %v", err)
	}
	if _, err := svc.SubmitFeedback(dto.FeedbackRequest{SubmissionID: 404, Rating: 3}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown submission, got %v", err)
	}
}
