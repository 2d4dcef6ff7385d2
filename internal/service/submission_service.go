package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aispectrumclubaiml/ak/internal/dto"
	"github.com/aispectrumclubaiml/ak/internal/model"
	"github.com/aispectrumclubaiml/ak/internal/repository"
	"github.com/aispectrumclubaiml/ak/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// answerFieldPrefix is the per-question form field naming scheme on the
// submit endpoint: answer_for_<questionID>.
const answerFieldPrefix = "answer_for_"

// SubmissionService grades a submitted attempt against the session's pinned
// question set and records it at most once per (quiz, phone).
type SubmissionService interface {
	// SubmitExam runs the full grading pass. A replayed attempt (one that
	// already has a persisted submission for this quiz and phone) is not an
	// error: the existing result is returned with AlreadySubmitted set.
	SubmitExam(token, quizIDStr string, req dto.SubmitRequest, form map[string][]string, event string) (*dto.SubmissionResultDTO, error)
	// GetResult loads a persisted submission for the result view.
	GetResult(submissionID uint) (*dto.SubmissionResultDTO, error)
}

type submissionService struct {
	quizRepo       repository.QuizRepository
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
	grading        GradingService
	sessions       session.Store
}

func NewSubmissionService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	submissionRepo repository.SubmissionRepository,
	grading GradingService,
	sessions session.Store,
) SubmissionService {
	return &submissionService{
		quizRepo:       quizRepo,
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
		grading:        grading,
		sessions:       sessions,
	}
}

func (s *submissionService) SubmitExam(token, quizIDStr string, req dto.SubmitRequest, form map[string][]string, event string) (*dto.SubmissionResultDTO, error) {
	quizID64, err := strconv.ParseUint(quizIDStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid quiz id %q", ErrValidation, quizIDStr)
	}
	quizID := uint(quizID64)

	if err := checkBinding(s.sessions, token, req.Phone, quizID); err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quiz %d", ErrNotFound, quizID)
		}
		return nil, fmt.Errorf("error loading quiz %d: %w", quizID, err)
	}

	// Replay check before any grading work. The unique index is the real
	// guarantee; this is the fast path.
	if existing, err := s.submissionRepo.FindByQuizAndPhone(quizID, req.Phone); err == nil {
		log.Info().Uint("quizID", quizID).Str("phone", req.Phone).Uint("submissionID", existing.ID).
			Msg("SubmitExam: attempt already recorded, routing to existing result")
		return s.existingResult(existing.ID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking for an existing attempt: %w", err)
	}

	pinned, err := s.pinnedQuestions(token, quiz)
	if err != nil {
		return nil, err
	}

	grade := s.grading.Grade(pinned, parseAnswerFields(form))

	submission := model.Submission{
		QuizID:           quiz.ID,
		Phone:            req.Phone,
		Event:            event,
		Score:            grade.Score,
		TotalQuestions:   grade.TotalGraded,
		TimeTakenSeconds: parseElapsedSeconds(req.ElapsedSeconds),
	}
	for _, d := range grade.Details {
		submission.Answers = append(submission.Answers, model.Answer{
			QuestionID:     d.Question.ID,
			SelectedOption: d.SelectedOption,
			CorrectOption:  d.CorrectOption,
			IsCorrect:      d.IsCorrect,
		})
	}

	if err := s.submissionRepo.CreateWithAnswers(&submission); err != nil {
		if errors.Is(err, repository.ErrDuplicateAttempt) {
			// Lost a race with a concurrent submit for the same phone; the
			// constraint kept the first one, so serve that.
			existing, findErr := s.submissionRepo.FindByQuizAndPhone(quizID, req.Phone)
			if findErr != nil {
				return nil, fmt.Errorf("attempt already recorded but could not be loaded: %w", findErr)
			}
			return s.existingResult(existing.ID)
		}
		log.Error().Err(err).Uint("quizID", quizID).Str("phone", req.Phone).Msg("SubmitExam: failed to persist submission")
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	// Session state is done with; clearing it blocks a resubmit replay
	// through the same token.
	s.sessions.Clear(token)

	log.Info().Uint("submissionID", submission.ID).Uint("quizID", quiz.ID).Str("phone", req.Phone).
		Int("score", grade.Score).Int("total", grade.TotalGraded).Msg("Attempt recorded")

	return s.buildResult(quiz, &submission, grade.Details, false), nil
}

func (s *submissionService) GetResult(submissionID uint) (*dto.SubmissionResultDTO, error) {
	submission, err := s.submissionRepo.FindByIDWithDetails(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: submission %d", ErrNotFound, submissionID)
		}
		return nil, fmt.Errorf("error loading submission %d: %w", submissionID, err)
	}

	details := make([]AnswerDetail, 0, len(submission.Answers))
	for _, a := range submission.Answers {
		details = append(details, AnswerDetail{
			Question:       a.Question,
			SelectedOption: a.SelectedOption,
			CorrectOption:  a.CorrectOption,
			IsCorrect:      a.IsCorrect,
		})
	}
	return s.buildResult(&submission.Quiz, submission, details, false), nil
}

func (s *submissionService) existingResult(submissionID uint) (*dto.SubmissionResultDTO, error) {
	result, err := s.GetResult(submissionID)
	if err != nil {
		return nil, err
	}
	result.AlreadySubmitted = true
	return result, nil
}

// pinnedQuestions resolves the session's pinned question set to stored
// questions, preserving pinned order. Pinned IDs that no longer resolve are
// dropped silently. When the session has no pinned set (expired or never
// attached), grading falls back to the quiz's first NumQuestions questions
// in stable order.
func (s *submissionService) pinnedQuestions(token string, quiz *model.Quiz) ([]model.Question, error) {
	ids, ok := s.sessions.ConsumeQuestionSet(token)
	if !ok {
		log.Warn().Uint("quizID", quiz.ID).Msg("SubmitExam: no pinned question set in session, using deterministic fallback")
		questions, err := s.questionRepo.FindByQuizID(quiz.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading fallback questions: %w", err)
		}
		if quiz.NumQuestions < len(questions) {
			questions = questions[:quiz.NumQuestions]
		}
		return questions, nil
	}

	found, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("error loading pinned questions: %w", err)
	}
	byID := make(map[uint]model.Question, len(found))
	for _, q := range found {
		byID[q.ID] = q
	}
	ordered := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		if q, exists := byID[id]; exists {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

func (s *submissionService) buildResult(quiz *model.Quiz, submission *model.Submission, details []AnswerDetail, alreadySubmitted bool) *dto.SubmissionResultDTO {
	result := &dto.SubmissionResultDTO{
		SubmissionID:     submission.ID,
		QuizID:           quiz.ID,
		QuizName:         quiz.Name,
		Phone:            submission.Phone,
		Event:            submission.Event,
		Score:            submission.Score,
		TotalQuestions:   submission.TotalQuestions,
		TimeTakenSeconds: submission.TimeTakenSeconds,
		SubmittedAt:      submission.CreatedAt,
		ShowDetails:      quiz.ShowResults,
		AlreadySubmitted: alreadySubmitted,
	}

	// Withholding the breakdown is presentation policy only; the Answer
	// rows are persisted either way.
	if !quiz.ShowResults {
		return result
	}

	for _, d := range details {
		answer := dto.ResultAnswerDTO{
			QuestionID:     d.Question.ID,
			QuestionText:   d.Question.Text,
			SelectedOption: d.SelectedOption,
			CorrectOption:  d.CorrectOption,
			CorrectText:    d.Question.OptionText(d.CorrectOption),
			IsCorrect:      d.IsCorrect,
		}
		if d.SelectedOption != nil {
			text := d.Question.OptionText(*d.SelectedOption)
			answer.SelectedText = &text
		}
		result.Details = append(result.Details, answer)
	}
	return result
}

// parseAnswerFields pulls the answer_for_<questionID> fields off the posted
// form. Unparseable question IDs are ignored.
func parseAnswerFields(form map[string][]string) map[uint]string {
	answers := make(map[uint]string)
	for field, values := range form {
		if !strings.HasPrefix(field, answerFieldPrefix) || len(values) == 0 {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimPrefix(field, answerFieldPrefix), 10, 32)
		if err != nil {
			continue
		}
		answers[uint(id)] = values[0]
	}
	return answers
}

// parseElapsedSeconds is lenient: the value is client-supplied, so anything
// unparseable or negative becomes 0 rather than an error.
func parseElapsedSeconds(raw string) int {
	elapsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || elapsed < 0 {
		return 0
	}
	return elapsed
}
