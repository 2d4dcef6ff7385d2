package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aispectrumclubaiml/ak/internal/dto"
	"github.com/aispectrumclubaiml/ak/internal/service"
)

// sessionTokenHeader carries the exam session token on quiz-page and
// submit requests.
const sessionTokenHeader = "X-Session-Token"

type QuizController struct {
	entryService      service.EntryService
	examService       service.ExamService
	submissionService service.SubmissionService
	feedbackService   service.FeedbackService
}

func NewQuizController(
	entryService service.EntryService,
	examService service.ExamService,
	submissionService service.SubmissionService,
	feedbackService service.FeedbackService,
) *QuizController {
	return &QuizController{
		entryService:      entryService,
		examService:       examService,
		submissionService: submissionService,
		feedbackService:   feedbackService,
	}
}

// Enter godoc
// @Summary Enter a quiz event
// @Description Validates the phone number, resolves the participant via the external verification service (degrading to placeholder identity on failure), and opens an exam session bound to this phone and quiz.
// @Tags Participant
// @Accept x-www-form-urlencoded
// @Produce json
// @Param quiz_id formData string true "Quiz ID"
// @Param phone formData string true "10-digit mobile number starting with 6-9"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 404 {object} dto.ErrorResponse "Unknown quiz"
// @Router /entry [post]
func (c *QuizController) Enter(ctx *gin.Context) {
	var req dto.EntryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Please select an event and enter a phone number.", Details: []string{err.Error()}})
		return
	}

	resp, err := c.entryService.Enter(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StartExam godoc
// @Summary Generate the quiz page for a bound session
// @Description Selects the randomized question subset for this attempt and pins it to the session. Requires the session token from /entry; the phone and quiz must match the session binding.
// @Tags Participant
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param phone query string true "Phone number bound at entry"
// @Param X-Session-Token header string true "Exam session token"
// @Success 200 {object} dto.ExamResponse
// @Failure 401 {object} dto.ErrorResponse "Session binding mismatch; return to entry"
// @Failure 404 {object} dto.ErrorResponse "Unknown quiz"
// @Router /quizzes/{quiz_id}/exam [get]
func (c *QuizController) StartExam(ctx *gin.Context) {
	token := ctx.GetHeader(sessionTokenHeader)
	quizID := ctx.Param("quiz_id")
	phone := ctx.Query("phone")

	resp, err := c.examService.StartExam(token, quizID, phone)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Submit godoc
// @Summary Submit answers for a quiz attempt
// @Description Grades the posted answers against the session's pinned question set and records the attempt. One form field per question, named answer_for_<questionID>; any field may be absent. A repeat submission for the same phone and quiz returns the original result with already_submitted set.
// @Tags Participant
// @Accept x-www-form-urlencoded
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param phone formData string true "Phone number bound at entry"
// @Param elapsed_seconds formData string false "Client-reported elapsed seconds"
// @Param event formData string false "Event name"
// @Param X-Session-Token header string true "Exam session token"
// @Success 200 {object} dto.SubmissionResultDTO
// @Failure 401 {object} dto.ErrorResponse "Session binding mismatch; return to entry"
// @Failure 404 {object} dto.ErrorResponse "Unknown quiz"
// @Router /quizzes/{quiz_id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req dto.SubmitRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission form", Details: []string{err.Error()}})
		return
	}

	if err := ctx.Request.ParseForm(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not parse submission form", Details: []string{err.Error()}})
		return
	}

	token := ctx.GetHeader(sessionTokenHeader)
	quizID := ctx.Param("quiz_id")
	event := ctx.PostForm("event")

	result, err := c.submissionService.SubmitExam(token, quizID, req, ctx.Request.PostForm, event)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if result.AlreadySubmitted {
		log.Info().Uint("submissionID", result.SubmissionID).Msg("Submit: replay routed to existing result")
	}
	ctx.JSON(http.StatusOK, result)
}

// GetResult godoc
// @Summary View a persisted submission result
// @Description Returns score and totals for a submission. The per-question breakdown is withheld when the quiz's show_results flag is off.
// @Tags Participant
// @Produce json
// @Param submission_id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionResultDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown submission"
// @Router /submissions/{submission_id} [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	submissionID, err := strconv.ParseUint(ctx.Param("submission_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission ID format"})
		return
	}

	result, err := c.submissionService.GetResult(uint(submissionID))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SubmitFeedback godoc
// @Summary Leave feedback for a submission
// @Description Records ratings and an optional comment, at most once per submission. Duplicate posts return the originally stored feedback.
// @Tags Participant
// @Accept x-www-form-urlencoded
// @Produce json
// @Param submission_id formData int true "Submission ID"
// @Param rating formData int true "Overall rating 1-5"
// @Param rating_ui formData int false "UI rating 0-5"
// @Param rating_difficulty formData int false "Difficulty rating 0-5"
// @Param rating_relevance formData int false "Relevance rating 0-5"
// @Param comments formData string false "Free-text comment"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 404 {object} dto.ErrorResponse "Unknown submission"
// @Router /feedback [post]
func (c *QuizController) SubmitFeedback(ctx *gin.Context) {
	var req dto.FeedbackRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid feedback form", Details: []string{err.Error()}})
		return
	}

	resp, err := c.feedbackService.SubmitFeedback(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// respondError maps the service error taxonomy onto HTTP statuses.
// Authorization failures carry a redirect hint back to the entry step.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAuthorization):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error(), RedirectTo: "/api/v1/entry"})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Something went wrong", Details: []string{err.Error()}})
	}
}
