package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aispectrumclubaiml/ak/internal/model"
	"github.com/aispectrumclubaiml/ak/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes for the service tests.

type fakeQuizRepo struct {
	quizzes map[uint]*model.Quiz
}

func newFakeQuizRepo(quizzes ...*model.Quiz) *fakeQuizRepo {
	repo := &fakeQuizRepo{quizzes: make(map[uint]*model.Quiz)}
	for _, q := range quizzes {
		repo.quizzes[q.ID] = q
	}
	return repo
}

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	if quiz.ID == 0 {
		quiz.ID = uint(len(r.quizzes) + 1)
	}
	r.quizzes[quiz.ID] = quiz
	return nil
}

func (r *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *quiz
	return &cp, nil
}

func (r *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	return r.FindByID(id)
}

func (r *fakeQuizRepo) FindAllWithCounts() ([]repository.QuizWithCounts, error) {
	var rows []repository.QuizWithCounts
	for _, q := range r.quizzes {
		rows = append(rows, repository.QuizWithCounts{Quiz: *q, QuestionCount: len(q.Questions)})
	}
	return rows, nil
}

func (r *fakeQuizRepo) Update(quiz *model.Quiz) error {
	r.quizzes[quiz.ID] = quiz
	return nil
}

type fakeQuestionRepo struct {
	questions []model.Question
}

func (r *fakeQuestionRepo) Create(q *model.Question) error {
	r.questions = append(r.questions, *q)
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			cp := q
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) FindByQuizID(quizID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if q.QuizID == quizID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Question
	for _, q := range r.questions {
		if want[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) CountByQuizID(quizID uint) (int64, error) {
	qs, _ := r.FindByQuizID(quizID)
	return int64(len(qs)), nil
}

func (r *fakeQuestionRepo) Delete(id uint) error { return nil }

type fakeSubmissionRepo struct {
	quizzes     *fakeQuizRepo
	submissions []*model.Submission
	nextID      uint
}

func newFakeSubmissionRepo(quizzes *fakeQuizRepo) *fakeSubmissionRepo {
	return &fakeSubmissionRepo{quizzes: quizzes, nextID: 1}
}

func (r *fakeSubmissionRepo) CreateWithAnswers(submission *model.Submission) error {
	for _, existing := range r.submissions {
		if existing.QuizID == submission.QuizID && existing.Phone == submission.Phone {
			return repository.ErrDuplicateAttempt
		}
	}
	submission.ID = r.nextID
	r.nextID++
	cp := *submission
	r.submissions = append(r.submissions, &cp)
	return nil
}

func (r *fakeSubmissionRepo) FindByID(id uint) (*model.Submission, error) {
	for _, s := range r.submissions {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubmissionRepo) FindByIDWithDetails(id uint) (*model.Submission, error) {
	sub, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if quiz, qerr := r.quizzes.FindByID(sub.QuizID); qerr == nil {
		sub.Quiz = *quiz
	}
	return sub, nil
}

func (r *fakeSubmissionRepo) FindByQuizAndPhone(quizID uint, phone string) (*model.Submission, error) {
	for _, s := range r.submissions {
		if s.QuizID == quizID && s.Phone == phone {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubmissionRepo) FindAllByQuizID(quizID uint) ([]model.Submission, error) {
	var out []model.Submission
	for _, s := range r.submissions {
		if s.QuizID == quizID {
			cp := *s
			if quiz, err := r.quizzes.FindByID(quizID); err == nil {
				cp.Quiz = *quiz
			}
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) FindAnswersByQuizID(quizID uint) ([]model.Answer, error) {
	var out []model.Answer
	for _, s := range r.submissions {
		if s.QuizID != quizID {
			continue
		}
		for _, a := range s.Answers {
			a.Submission = *s
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeFeedbackRepo struct {
	feedbacks []*model.Feedback
	nextID    uint
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{nextID: 1}
}

func (r *fakeFeedbackRepo) Create(feedback *model.Feedback) error {
	for _, f := range r.feedbacks {
		if f.SubmissionID == feedback.SubmissionID {
			return gorm.ErrDuplicatedKey
		}
	}
	feedback.ID = r.nextID
	r.nextID++
	cp := *feedback
	r.feedbacks = append(r.feedbacks, &cp)
	return nil
}

func (r *fakeFeedbackRepo) FindBySubmissionID(submissionID uint) (*model.Feedback, error) {
	for _, f := range r.feedbacks {
		if f.SubmissionID == submissionID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFeedbackRepo) FindAllByQuizID(quizID uint) ([]model.Feedback, error) {
	var out []model.Feedback
	for _, f := range r.feedbacks {
		cp := *f
		out = append(out, cp)
	}
	return out, nil
}

// fakeVerificationClient resolves every phone, or fails every call.
type fakeVerificationClient struct {
	result *VerificationResult
	err    error
}

func (c *fakeVerificationClient) Verify(ctx context.Context, phone, eventName string) (*VerificationResult, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.result != nil {
		return c.result, nil
	}
	return nil, errors.New("no result configured")
}

var errVerificationDown = fmt.Errorf("verification request failed: %w", context.DeadlineExceeded)
