package session

import (
	"testing"
	"time"
)

func TestMemoryStoreBindsPhoneAndQuiz(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	token, err := store.Begin("9123456789", 3)
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	sess, ok := store.Get(token)
	if !ok {
		t.Fatalf("expected session to exist")
	}
	if sess.Phone != "9123456789" || sess.QuizID != 3 {
		t.Fatalf("unexpected binding: %+v", sess)
	}
}

func TestMemoryStoreConsumeClearsQuestionSet(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	token, _ := store.Begin("9123456789", 1)

	if err := store.AttachQuestionSet(token, []uint{5, 2, 9}); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	ids, ok := store.ConsumeQuestionSet(token)
	if !ok {
		t.Fatalf("expected pinned question set")
	}
	if len(ids) != 3 || ids[0] != 5 || ids[1] != 2 || ids[2] != 9 {
		t.Fatalf("expected pinned order preserved, got %v", ids)
	}

	if _, ok := store.ConsumeQuestionSet(token); ok {
		t.Fatalf("expected second consume to find nothing")
	}

	// The binding itself survives the consume.
	if _, ok := store.Get(token); !ok {
		t.Fatalf("expected session binding to survive consume")
	}
}

func TestMemoryStoreClearRemovesSession(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	token, _ := store.Begin("9123456789", 1)

	store.Clear(token)
	if _, ok := store.Get(token); ok {
		t.Fatalf("expected session to be gone after clear")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	token, _ := store.Begin("9123456789", 1)

	time.Sleep(20 * time.Millisecond)
	if _, ok := store.Get(token); ok {
		t.Fatalf("expected expired session to be absent")
	}
}

func TestMemoryStoreAttachUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	if err := store.AttachQuestionSet("no-such-token", []uint{1}); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	token, _ := store.Begin("9123456789", 1)
	_ = store.AttachQuestionSet(token, []uint{1, 2, 3})

	sess, _ := store.Get(token)
	sess.QuestionIDs[0] = 99

	ids, _ := store.ConsumeQuestionSet(token)
	if ids[0] != 1 {
		t.Fatalf("mutating a Get result must not affect stored state, got %v", ids)
	}
}
