package admin

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aispectrumclubaiml/ak/internal/dto"
	"github.com/aispectrumclubaiml/ak/internal/service"
)

type AdminQuizController struct {
	adminQuizService service.AdminQuizService
	exportService    service.ExportService
}

func NewAdminQuizController(adminQuizService service.AdminQuizService, exportService service.ExportService) *AdminQuizController {
	return &AdminQuizController{
		adminQuizService: adminQuizService,
		exportService:    exportService,
	}
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz with its questions
// @Tags Admin
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz definition, optionally with questions"
// @Success 201 {object} dto.AdminQuizDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.adminQuizService.CreateQuiz(req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// GetQuiz godoc
// @Summary (Admin) Get a quiz with questions and correct options
// @Tags Admin
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.AdminQuizDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown quiz"
// @Router /admin/quizzes/{quiz_id} [get]
func (c *AdminQuizController) GetQuiz(ctx *gin.Context) {
	quizID, ok := c.quizIDParam(ctx)
	if !ok {
		return
	}
	quiz, err := c.adminQuizService.GetQuiz(quizID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// ListQuizzes godoc
// @Summary (Admin) List quizzes with question and submission counts
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.AdminQuizSummaryDTO
// @Router /admin/quizzes [get]
func (c *AdminQuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.adminQuizService.ListQuizzes()
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// ExportSubmissions godoc
// @Summary (Admin) Download a quiz's submissions as CSV
// @Tags Admin
// @Produce text/csv
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {string} string "CSV file"
// @Router /admin/quizzes/{quiz_id}/export/submissions [get]
func (c *AdminQuizController) ExportSubmissions(ctx *gin.Context) {
	c.exportCSV(ctx, "submissions", c.exportService.ExportSubmissions)
}

// ExportAnswers godoc
// @Summary (Admin) Download a quiz's per-question answers as CSV
// @Tags Admin
// @Produce text/csv
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {string} string "CSV file"
// @Router /admin/quizzes/{quiz_id}/export/answers [get]
func (c *AdminQuizController) ExportAnswers(ctx *gin.Context) {
	c.exportCSV(ctx, "answers", c.exportService.ExportAnswers)
}

// ExportFeedback godoc
// @Summary (Admin) Download a quiz's feedback as CSV
// @Tags Admin
// @Produce text/csv
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {string} string "CSV file"
// @Router /admin/quizzes/{quiz_id}/export/feedback [get]
func (c *AdminQuizController) ExportFeedback(ctx *gin.Context) {
	c.exportCSV(ctx, "feedback", c.exportService.ExportFeedback)
}

func (c *AdminQuizController) exportCSV(ctx *gin.Context, name string, write func(w io.Writer, quizID uint) error) {
	quizID, ok := c.quizIDParam(ctx)
	if !ok {
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_quiz_%d.csv"`, name, quizID))

	if err := write(ctx.Writer, quizID); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Str("export", name).Msg("CSV export failed")
		// Headers may already be out; nothing more useful to send.
	}
}

func (c *AdminQuizController) quizIDParam(ctx *gin.Context) (uint, bool) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return 0, false
	}
	return uint(quizID), true
}

func (c *AdminQuizController) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled admin service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Something went wrong", Details: []string{err.Error()}})
	}
}
