package service

import (
	"math/rand"

	"github.com/aispectrumclubaiml/ak/internal/dto"
	"github.com/aispectrumclubaiml/ak/internal/model"
)

// SelectedQuestion is one question chosen for an attempt, with its four
// options in randomized display order. The display shuffle never touches
// the question's correct-option letter.
type SelectedQuestion struct {
	Question model.Question
	Options  []dto.DisplayOptionDTO
}

// QuestionSelector picks the random question subset served for one attempt.
type QuestionSelector interface {
	// Select chooses min(quiz.NumQuestions, len(available)) distinct
	// questions uniformly at random and shuffles each question's display
	// options independently. The returned order is the authoritative order
	// for the attempt's pinned question set.
	Select(quiz *model.Quiz, available []model.Question) []SelectedQuestion
}

type questionSelector struct {
	// shuffle is swappable so tests can pin the randomness.
	shuffle func(n int, swap func(i, j int))
}

func NewQuestionSelector() QuestionSelector {
	return &questionSelector{shuffle: rand.Shuffle}
}

func (s *questionSelector) Select(quiz *model.Quiz, available []model.Question) []SelectedQuestion {
	n := quiz.NumQuestions
	if n > len(available) {
		n = len(available)
	}
	if n <= 0 {
		return nil
	}

	// Uniform sample without replacement: shuffle a copy, take the prefix.
	pool := make([]model.Question, len(available))
	copy(pool, available)
	s.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	selected := make([]SelectedQuestion, 0, n)
	for _, q := range pool[:n] {
		selected = append(selected, SelectedQuestion{
			Question: q,
			Options:  s.shuffledOptions(&q),
		})
	}
	return selected
}

func (s *questionSelector) shuffledOptions(q *model.Question) []dto.DisplayOptionDTO {
	options := []dto.DisplayOptionDTO{
		{Letter: "A", Text: q.OptionA},
		{Letter: "B", Text: q.OptionB},
		{Letter: "C", Text: q.OptionC},
		{Letter: "D", Text: q.OptionD},
	}
	s.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
