package service

import (
	"errors"
	"testing"
	"time"

	"github.com/aispectrumclubaiml/ak/internal/model"
	"github.com/aispectrumclubaiml/ak/internal/session"
)

func newExamFixture(t *testing.T) (ExamService, session.Store) {
	t.Helper()
	quizzes := newFakeQuizRepo(&model.Quiz{
		ID:              3,
		Name:            "Build With AI",
		DurationMinutes: 20,
		NumQuestions:    3,
		IsActive:        true,
	})
	questions := &fakeQuestionRepo{}
	for i := 1; i <= 5; i++ {
		questions.questions = append(questions.questions, model.Question{
			ID: uint(i), QuizID: 3,
			OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
			CorrectOption: "A",
		})
	}
	sessions := session.NewMemoryStore(time.Minute)
	return NewExamService(quizzes, questions, NewQuestionSelector(), sessions), sessions
}

func TestStartExamPinsServedOrder(t *testing.T) {
	svc, sessions := newExamFixture(t)
	token, _ := sessions.Begin("9123456789", 3)

	resp, err := svc.StartExam(token, "3", "9123456789")
	if err != nil {
		t.Fatalf("start exam failed: %v", err)
	}
	if len(resp.Questions) != 3 {
		t.Fatalf("expected 3 served questions, got %d", len(resp.Questions))
	}
	if resp.DurationSeconds != 20*60 {
		t.Fatalf("expected 1200 duration seconds, got %d", resp.DurationSeconds)
	}

	pinned, ok := sessions.ConsumeQuestionSet(token)
	if !ok {
		t.Fatalf("expected pinned question set in session")
	}
	if len(pinned) != len(resp.Questions) {
		t.Fatalf("pinned set size %d != served %d", len(pinned), len(resp.Questions))
	}
	for i, q := range resp.Questions {
		if pinned[i] != q.ID {
			t.Fatalf("pinned order diverges from served order at %d: %d vs %d", i, pinned[i], q.ID)
		}
		if len(q.Options) != 4 {
			t.Fatalf("question %d served with %d options", q.ID, len(q.Options))
		}
	}
}

func TestStartExamRequiresSession(t *testing.T) {
	svc, _ := newExamFixture(t)

	if _, err := svc.StartExam("", "3", "9123456789"); !errors.Is(err, ErrAuthorization) {
		t.Fatalf("expected ErrAuthorization without token, got %v", err)
	}
	if _, err := svc.StartExam("bogus-token", "3", "9123456789"); !errors.Is(err, ErrAuthorization) {
		t.Fatalf("expected ErrAuthorization for unknown token, got %v", err)
	}
}

func TestStartExamBindingMismatch(t *testing.T) {
	svc, sessions := newExamFixture(t)
	token, _ := sessions.Begin("9123456789", 3)

	if _, err := svc.StartExam(token, "3", "9999999999"); !errors.Is(err, ErrAuthorization) {
		t.Fatalf("expected ErrAuthorization for phone mismatch, got %v", err)
	}
	// Quiz mismatch: session bound to quiz 3, request for quiz 4.
	if _, err := svc.StartExam(token, "4", "9123456789"); !errors.Is(err, ErrAuthorization) {
		t.Fatalf("expected ErrAuthorization for quiz mismatch, got %v", err)
	}
}
