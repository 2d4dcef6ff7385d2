package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aispectrumclubaiml/ak/internal/dto"
	"github.com/aispectrumclubaiml/ak/internal/model"
	"github.com/aispectrumclubaiml/ak/internal/session"
)

func TestValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"9123456789", true},
		{"6000000000", true},
		{"5123456789", false}, // first digit out of range
		{"912345678", false},  // 9 digits
		{"91234567890", false},
		{"912345678a", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidPhone(c.phone); got != c.want {
			t.Fatalf("ValidPhone(%q) = %v, want %v", c.phone, got, c.want)
		}
	}
}

func newEntryFixture(verification VerificationClient) (EntryService, *fakeQuizRepo, session.Store) {
	quizRepo := newFakeQuizRepo(&model.Quiz{
		ID:              3,
		Name:            "Build With AI",
		DurationMinutes: 30,
		NumQuestions:    20,
		IsActive:        true,
		ShowResults:     true,
	})
	sessions := session.NewMemoryStore(time.Minute)
	return NewEntryService(quizRepo, verification, sessions), quizRepo, sessions
}

func TestEnterRejectsInvalidPhone(t *testing.T) {
	svc, _, _ := newEntryFixture(&fakeVerificationClient{result: &VerificationResult{Name: "A"}})

	_, err := svc.Enter(context.Background(), dto.EntryRequest{QuizID: "3", Phone: "5123456789"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestEnterRejectsUnknownQuiz(t *testing.T) {
	svc, _, _ := newEntryFixture(&fakeVerificationClient{result: &VerificationResult{Name: "A"}})

	_, err := svc.Enter(context.Background(), dto.EntryRequest{QuizID: "99", Phone: "9123456789"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEnterRejectsInactiveQuiz(t *testing.T) {
	svc, quizRepo, _ := newEntryFixture(&fakeVerificationClient{result: &VerificationResult{Name: "A"}})
	quizRepo.quizzes[3].IsActive = false

	_, err := svc.Enter(context.Background(), dto.EntryRequest{QuizID: "3", Phone: "9123456789"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestEnterBindsSessionOnSuccess(t *testing.T) {
	svc, _, sessions := newEntryFixture(&fakeVerificationClient{
		result: &VerificationResult{Name: "Asha", Institution: "REC"},
	})

	resp, err := svc.Enter(context.Background(), dto.EntryRequest{QuizID: "3", Phone: "9123456789"})
	if err != nil {
		t.Fatalf("enter failed: %v", err)
	}
	if resp.ParticipantName != "Asha" || resp.Institution != "REC" {
		t.Fatalf("unexpected identity: %+v", resp)
	}
	if resp.Advisory != "" {
		t.Fatalf("unexpected advisory on successful verification: %q", resp.Advisory)
	}

	sess, ok := sessions.Get(resp.SessionToken)
	if !ok {
		t.Fatalf("expected a session for the returned token")
	}
	if sess.Phone != "9123456789" || sess.QuizID != 3 {
		t.Fatalf("session bound to wrong identity: %+v", sess)
	}
}

func TestEnterDegradesWhenVerificationFails(t *testing.T) {
	svc, _, _ := newEntryFixture(&fakeVerificationClient{err: errVerificationDown})

	resp, err := svc.Enter(context.Background(), dto.EntryRequest{QuizID: "3", Phone: "9123456789"})
	if err != nil {
		t.Fatalf("verification failure must not block entry: %v", err)
	}
	if resp.ParticipantName != UnknownParticipant {
		t.Fatalf("expected placeholder name, got %q", resp.ParticipantName)
	}
	if resp.Institution != UnknownInstitution {
		t.Fatalf("expected placeholder institution, got %q", resp.Institution)
	}
	if resp.Advisory == "" {
		t.Fatalf("expected an advisory message on degraded entry")
	}
	if resp.SessionToken == "" {
		t.Fatalf("expected a session token even when verification is down")
	}
}
