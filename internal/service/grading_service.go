package service

import (
	"strings"

	"github.com/aispectrumclubaiml/ak/internal/model"
)

// AnswerDetail is one graded question, in pinned order.
type AnswerDetail struct {
	Question       model.Question
	SelectedOption *string // nil = unanswered
	CorrectOption  string
	IsCorrect      bool
}

// GradeResult aggregates one grading pass. TotalGraded counts the pinned
// questions that still resolved to stored questions, so it can be lower
// than the pinned set size.
type GradeResult struct {
	Score       int
	TotalGraded int
	Details     []AnswerDetail
}

// GradingService compares submitted answers against correct options.
// Grading is pure: the same pinned questions and form answers always yield
// the same result, regardless of the display shuffle used earlier.
type GradingService interface {
	Grade(pinned []model.Question, answers map[uint]string) GradeResult
}

type gradingService struct{}

func NewGradingService() GradingService {
	return &gradingService{}
}

func (s *gradingService) Grade(pinned []model.Question, answers map[uint]string) GradeResult {
	result := GradeResult{
		Details: make([]AnswerDetail, 0, len(pinned)),
	}

	for _, q := range pinned {
		detail := AnswerDetail{
			Question:      q,
			CorrectOption: q.CorrectOption,
		}

		raw, ok := answers[q.ID]
		selected := strings.ToUpper(strings.TrimSpace(raw))
		if ok && selected != "" {
			detail.SelectedOption = &selected
			detail.IsCorrect = strings.EqualFold(selected, strings.TrimSpace(q.CorrectOption))
		}
		if detail.IsCorrect {
			result.Score++
		}

		result.Details = append(result.Details, detail)
		result.TotalGraded++
	}

	return result
}
