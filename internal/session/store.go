// Package session holds the ephemeral per-participant exam state: which
// phone started which quiz, and the exact ordered question set served to
// them. The state lives only between quiz-page generation and grading.
package session

import "time"

// ExamSession binds a participant's phone to a quiz attempt in progress.
// QuestionIDs is the pinned question set: the exact ordered list of question
// IDs shown on the quiz page, reused verbatim for grading.
type ExamSession struct {
	Phone       string    `json:"phone"`
	QuizID      uint      `json:"quiz_id"`
	QuestionIDs []uint    `json:"question_ids,omitempty"`
	StartedAt   time.Time `json:"started_at"`
}

// Store is the keyed session store. Implementations: in-memory (default)
// and redis-backed for deployments that restart the process mid-event.
type Store interface {
	// Begin creates a session binding phone to quizID and returns its token.
	Begin(phone string, quizID uint) (string, error)
	// Get returns the session for token, or false if absent or expired.
	Get(token string) (*ExamSession, bool)
	// AttachQuestionSet pins the ordered question IDs served for this attempt.
	AttachQuestionSet(token string, questionIDs []uint) error
	// ConsumeQuestionSet returns the pinned question IDs and atomically
	// clears them, so a second submit cannot replay the same set.
	ConsumeQuestionSet(token string) ([]uint, bool)
	// Clear removes all state for token.
	Clear(token string)
}
