package service

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aispectrumclubaiml/ak/internal/dto"
	"github.com/aispectrumclubaiml/ak/internal/repository"
	"github.com/aispectrumclubaiml/ak/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamService generates the quiz page for a bound session: it selects the
// random question subset and pins the served order in the session store so
// grading later sees exactly what the participant saw.
type ExamService interface {
	StartExam(token, quizIDStr, phone string) (*dto.ExamResponse, error)
}

type examService struct {
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	selector     QuestionSelector
	sessions     session.Store
}

func NewExamService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	selector QuestionSelector,
	sessions session.Store,
) ExamService {
	return &examService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		selector:     selector,
		sessions:     sessions,
	}
}

func (s *examService) StartExam(token, quizIDStr, phone string) (*dto.ExamResponse, error) {
	quizID, err := strconv.ParseUint(quizIDStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid quiz id %q", ErrValidation, quizIDStr)
	}

	if err := checkBinding(s.sessions, token, phone, uint(quizID)); err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.FindByID(uint(quizID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quiz %d", ErrNotFound, quizID)
		}
		return nil, fmt.Errorf("error loading quiz %d: %w", quizID, err)
	}

	questions, err := s.questionRepo.FindByQuizID(quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("StartExam: failed to load questions")
		return nil, fmt.Errorf("error loading questions for quiz %d: %w", quiz.ID, err)
	}

	selected := s.selector.Select(quiz, questions)

	pinned := make([]uint, 0, len(selected))
	examQuestions := make([]dto.ExamQuestionDTO, 0, len(selected))
	for _, sq := range selected {
		pinned = append(pinned, sq.Question.ID)
		examQuestions = append(examQuestions, dto.ExamQuestionDTO{
			ID:       sq.Question.ID,
			Text:     sq.Question.Text,
			ImageURL: sq.Question.ImageURL,
			Options:  sq.Options,
		})
	}

	if err := s.sessions.AttachQuestionSet(token, pinned); err != nil {
		log.Error().Err(err).Str("token", token).Msg("StartExam: failed to pin question set")
		return nil, fmt.Errorf("failed to pin question set: %w", err)
	}

	log.Info().Uint("quizID", quiz.ID).Str("phone", phone).Int("served", len(pinned)).
		Msg("Exam page generated with pinned question set")

	return &dto.ExamResponse{
		Quiz: dto.QuizSummaryDTO{
			ID:              quiz.ID,
			Name:            quiz.Name,
			DurationMinutes: quiz.DurationMinutes,
			NumQuestions:    quiz.NumQuestions,
			IsActive:        quiz.IsActive,
			ShowResults:     quiz.ShowResults,
		},
		Questions:       examQuestions,
		DurationSeconds: quiz.DurationMinutes * 60,
	}, nil
}

// checkBinding enforces the session contract: the request's phone and quiz
// must match what entry bound the token to.
func checkBinding(sessions session.Store, token, phone string, quizID uint) error {
	if token == "" {
		return fmt.Errorf("%w: missing session token, complete entry first", ErrAuthorization)
	}
	sess, ok := sessions.Get(token)
	if !ok {
		return fmt.Errorf("%w: no active session, complete entry first", ErrAuthorization)
	}
	if sess.Phone != phone || sess.QuizID != quizID {
		return fmt.Errorf("%w: session is bound to a different participant or quiz", ErrAuthorization)
	}
	return nil
}
