package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is the in-process implementation of Store. Expired entries are
// dropped lazily on access.
type MemoryStore struct {
	ttl      time.Duration
	mu       sync.Mutex
	sessions map[string]*ExamSession
	expires  map[string]time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]*ExamSession),
		expires:  make(map[string]time.Time),
	}
}

func (s *MemoryStore) Begin(phone string, quizID uint) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = &ExamSession{
		Phone:     phone,
		QuizID:    quizID,
		StartedAt: time.Now(),
	}
	s.expires[token] = time.Now().Add(s.ttl)
	return token, nil
}

func (s *MemoryStore) Get(token string) (*ExamSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.get(token)
	if !ok {
		return nil, false
	}
	cp := *sess
	cp.QuestionIDs = append([]uint(nil), sess.QuestionIDs...)
	return &cp, true
}

func (s *MemoryStore) AttachQuestionSet(token string, questionIDs []uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.get(token)
	if !ok {
		return ErrSessionNotFound
	}
	sess.QuestionIDs = append([]uint(nil), questionIDs...)
	return nil
}

func (s *MemoryStore) ConsumeQuestionSet(token string) ([]uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.get(token)
	if !ok || len(sess.QuestionIDs) == 0 {
		return nil, false
	}
	ids := sess.QuestionIDs
	sess.QuestionIDs = nil
	return ids, true
}

func (s *MemoryStore) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	delete(s.expires, token)
}

// get must be called with the lock held.
func (s *MemoryStore) get(token string) (*ExamSession, bool) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(s.expires[token]) {
		delete(s.sessions, token)
		delete(s.expires, token)
		return nil, false
	}
	return sess, true
}
