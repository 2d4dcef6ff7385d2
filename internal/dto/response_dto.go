package dto

import "time"

// ErrorResponse is the uniform error body. RedirectTo, when set, tells the
// client which step to go back to (the entry form for session mismatches).
type ErrorResponse struct {
	Message    string   `json:"message"`
	Details    []string `json:"details,omitempty"`
	RedirectTo string   `json:"redirect_to,omitempty"`
}

// QuizSummaryDTO describes a quiz without its questions.
type QuizSummaryDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	NumQuestions    int    `json:"num_questions"`
	IsActive        bool   `json:"is_active"`
	ShowResults     bool   `json:"show_results"`
}

// EntryResponse is step 2: identity resolved (or degraded) and a session
// token the client must present on the exam and submit calls.
type EntryResponse struct {
	SessionToken    string         `json:"session_token"`
	Phone           string         `json:"phone"`
	ParticipantName string         `json:"participant_name"`
	Institution     string         `json:"institution"`
	Advisory        string         `json:"advisory,omitempty"`
	Quiz            QuizSummaryDTO `json:"quiz"`
}

// DisplayOptionDTO is one (letter, text) pair in its shuffled display slot.
// Letter is the ORIGINAL option letter on the question; the shuffle only
// changes presentation order.
type DisplayOptionDTO struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// ExamQuestionDTO is a question as served to a participant. It never
// carries the correct option.
type ExamQuestionDTO struct {
	ID       uint               `json:"id"`
	Text     string             `json:"text"`
	ImageURL *string            `json:"image_url,omitempty"`
	Options  []DisplayOptionDTO `json:"options"`
}

// ExamResponse is the generated quiz page: the pinned question set in its
// served order plus the countdown duration.
type ExamResponse struct {
	Quiz            QuizSummaryDTO    `json:"quiz"`
	Questions       []ExamQuestionDTO `json:"questions"`
	DurationSeconds int               `json:"duration_seconds"`
}

// ResultAnswerDTO is one graded question in a result view.
type ResultAnswerDTO struct {
	QuestionID     uint    `json:"question_id"`
	QuestionText   string  `json:"question_text"`
	SelectedOption *string `json:"selected_option"`
	SelectedText   *string `json:"selected_text,omitempty"`
	CorrectOption  string  `json:"correct_option"`
	CorrectText    string  `json:"correct_text,omitempty"`
	IsCorrect      bool    `json:"is_correct"`
}

// SubmissionResultDTO is the persisted outcome of an attempt. Details is
// empty when the quiz withholds results (a presentation policy; the rows
// are still stored). AlreadySubmitted marks a replayed attempt that was
// routed back to its original result.
type SubmissionResultDTO struct {
	SubmissionID     uint              `json:"submission_id"`
	QuizID           uint              `json:"quiz_id"`
	QuizName         string            `json:"quiz_name"`
	Phone            string            `json:"phone"`
	Event            string            `json:"event,omitempty"`
	Score            int               `json:"score"`
	TotalQuestions   int               `json:"total_questions"`
	TimeTakenSeconds int               `json:"time_taken_seconds"`
	SubmittedAt      time.Time         `json:"submitted_at"`
	ShowDetails      bool              `json:"show_details"`
	Details          []ResultAnswerDTO `json:"details,omitempty"`
	AlreadySubmitted bool              `json:"already_submitted,omitempty"`
}

// FeedbackResponse acknowledges a feedback post. Duplicate posts for the
// same submission return the originally stored ratings.
type FeedbackResponse struct {
	ID               uint   `json:"id"`
	SubmissionID     uint   `json:"submission_id"`
	Rating           int    `json:"rating"`
	RatingUI         int    `json:"rating_ui"`
	RatingDifficulty int    `json:"rating_difficulty"`
	RatingRelevance  int    `json:"rating_relevance"`
	Comments         string `json:"comments,omitempty"`
}
