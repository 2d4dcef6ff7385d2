package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aispectrumclubaiml/ak/internal/dto"
	"github.com/aispectrumclubaiml/ak/internal/model"
	"github.com/aispectrumclubaiml/ak/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminQuizService covers the organizer surface: quiz/question authoring
// and listings with counts.
type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.AdminQuizDTO, error)
	GetQuiz(id uint) (*dto.AdminQuizDTO, error)
	ListQuizzes() ([]dto.AdminQuizSummaryDTO, error)
}

type adminQuizService struct {
	quizRepo repository.QuizRepository
}

func NewAdminQuizService(quizRepo repository.QuizRepository) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo}
}

func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.AdminQuizDTO, error) {
	quiz := model.Quiz{
		Name:            req.Name,
		DurationMinutes: 30,
		NumQuestions:    20,
		IsActive:        true,
		ShowResults:     true,
	}
	if req.DurationMinutes > 0 {
		quiz.DurationMinutes = req.DurationMinutes
	}
	if req.NumQuestions > 0 {
		quiz.NumQuestions = req.NumQuestions
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}
	if req.ShowResults != nil {
		quiz.ShowResults = *req.ShowResults
	}

	for i, qDto := range req.Questions {
		letter := strings.ToUpper(strings.TrimSpace(qDto.CorrectOption))
		if letter != "A" && letter != "B" && letter != "C" && letter != "D" {
			return nil, fmt.Errorf("%w: question %d has invalid correct option %q", ErrValidation, i+1, qDto.CorrectOption)
		}
		quiz.Questions = append(quiz.Questions, model.Question{
			Text:          qDto.Text,
			ImageURL:      qDto.ImageURL,
			OptionA:       qDto.OptionA,
			OptionB:       qDto.OptionB,
			OptionC:       qDto.OptionC,
			OptionD:       qDto.OptionD,
			CorrectOption: letter,
		})
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("CreateQuiz: failed to create quiz")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	created, err := s.quizRepo.FindByIDWithQuestions(quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("CreateQuiz: failed to reload created quiz")
		var fallback dto.AdminQuizDTO
		copier.Copy(&fallback, &quiz)
		return &fallback, nil
	}

	var resp dto.AdminQuizDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *adminQuizService) GetQuiz(id uint) (*dto.AdminQuizDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quiz %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("error loading quiz %d: %w", id, err)
	}
	var resp dto.AdminQuizDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *adminQuizService) ListQuizzes() ([]dto.AdminQuizSummaryDTO, error) {
	rows, err := s.quizRepo.FindAllWithCounts()
	if err != nil {
		log.Error().Err(err).Msg("ListQuizzes: failed to list quizzes with counts")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	summaries := make([]dto.AdminQuizSummaryDTO, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dto.AdminQuizSummaryDTO{
			ID:              row.Quiz.ID,
			Name:            row.Quiz.Name,
			DurationMinutes: row.Quiz.DurationMinutes,
			NumQuestions:    row.Quiz.NumQuestions,
			IsActive:        row.Quiz.IsActive,
			ShowResults:     row.Quiz.ShowResults,
			QuestionCount:   row.QuestionCount,
			SubmissionCount: row.SubmissionCount,
			CreatedAt:       row.Quiz.CreatedAt,
		})
	}
	return summaries, nil
}
