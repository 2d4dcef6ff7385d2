package dto

// EntryRequest is the step-1 form: pick an event quiz, give a phone number.
type EntryRequest struct {
	QuizID string `form:"quiz_id" binding:"required"`
	Phone  string `form:"phone" binding:"required"`
}

// SubmitRequest carries the fixed fields of a quiz submission. The
// per-question answers arrive as loose form fields named
// "answer_for_<questionID>" and are read straight off the posted form,
// since any of them may be absent.
type SubmitRequest struct {
	Phone          string `form:"phone"`
	ElapsedSeconds string `form:"elapsed_seconds"`
}

// FeedbackRequest is the optional post-result feedback form.
type FeedbackRequest struct {
	SubmissionID     uint   `form:"submission_id" binding:"required"`
	Rating           int    `form:"rating" binding:"required,min=1,max=5"`
	RatingUI         int    `form:"rating_ui"`
	RatingDifficulty int    `form:"rating_difficulty"`
	RatingRelevance  int    `form:"rating_relevance"`
	Comments         string `form:"comments"`
}
