package dto

import "time"

// QuestionCreateDTO is one question inside a quiz creation request.
type QuestionCreateDTO struct {
	Text          string  `json:"text" binding:"required"`
	ImageURL      *string `json:"image_url"`
	OptionA       string  `json:"option_a" binding:"required"`
	OptionB       string  `json:"option_b" binding:"required"`
	OptionC       string  `json:"option_c" binding:"required"`
	OptionD       string  `json:"option_d" binding:"required"`
	CorrectOption string  `json:"correct_option" binding:"required,oneof=A B C D"`
}

// QuizCreateDTO creates a quiz, optionally with its questions in one shot.
type QuizCreateDTO struct {
	Name            string              `json:"name" binding:"required"`
	DurationMinutes int                 `json:"duration_minutes" binding:"omitempty,min=1"`
	NumQuestions    int                 `json:"num_questions" binding:"omitempty,min=1"`
	IsActive        *bool               `json:"is_active"`
	ShowResults     *bool               `json:"show_results"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// AdminQuestionDTO exposes the full question, correct option included.
type AdminQuestionDTO struct {
	ID            uint    `json:"id"`
	QuizID        uint    `json:"quiz_id"`
	Text          string  `json:"text"`
	ImageURL      *string `json:"image_url,omitempty"`
	OptionA       string  `json:"option_a"`
	OptionB       string  `json:"option_b"`
	OptionC       string  `json:"option_c"`
	OptionD       string  `json:"option_d"`
	CorrectOption string  `json:"correct_option"`
}

// AdminQuizDTO is the full quiz as seen by organizers.
type AdminQuizDTO struct {
	ID              uint               `json:"id"`
	Name            string             `json:"name"`
	DurationMinutes int                `json:"duration_minutes"`
	NumQuestions    int                `json:"num_questions"`
	IsActive        bool               `json:"is_active"`
	ShowResults     bool               `json:"show_results"`
	Questions       []AdminQuestionDTO `json:"questions,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// AdminQuizSummaryDTO is a listing row with counts.
type AdminQuizSummaryDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	NumQuestions    int       `json:"num_questions"`
	IsActive        bool      `json:"is_active"`
	ShowResults     bool      `json:"show_results"`
	QuestionCount   int       `json:"question_count"`
	SubmissionCount int       `json:"submission_count"`
	CreatedAt       time.Time `json:"created_at"`
}
