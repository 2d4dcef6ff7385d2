package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/aispectrumclubaiml/ak/internal/repository"
	"github.com/rs/zerolog/log"
)

// ExportService writes organizer CSV reports. Column layouts mirror the
// admin listings: submissions, per-question answers, and feedback.
type ExportService interface {
	ExportSubmissions(w io.Writer, quizID uint) error
	ExportAnswers(w io.Writer, quizID uint) error
	ExportFeedback(w io.Writer, quizID uint) error
}

type exportService struct {
	submissionRepo repository.SubmissionRepository
	feedbackRepo   repository.FeedbackRepository
}

func NewExportService(submissionRepo repository.SubmissionRepository, feedbackRepo repository.FeedbackRepository) ExportService {
	return &exportService{
		submissionRepo: submissionRepo,
		feedbackRepo:   feedbackRepo,
	}
}

func (s *exportService) ExportSubmissions(w io.Writer, quizID uint) error {
	submissions, err := s.submissionRepo.FindAllByQuizID(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("ExportSubmissions: failed to load submissions")
		return fmt.Errorf("error loading submissions for quiz %d: %w", quizID, err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{
		"ID", "Quiz ID", "Quiz Name", "Phone", "Event",
		"Score", "Total Questions", "Time Taken (s)", "Submitted At",
	}); err != nil {
		return err
	}

	for _, sub := range submissions {
		record := []string{
			strconv.FormatUint(uint64(sub.ID), 10),
			strconv.FormatUint(uint64(sub.QuizID), 10),
			sub.Quiz.Name,
			sub.Phone,
			sub.Event,
			strconv.Itoa(sub.Score),
			strconv.Itoa(sub.TotalQuestions),
			strconv.Itoa(sub.TimeTakenSeconds),
			sub.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (s *exportService) ExportAnswers(w io.Writer, quizID uint) error {
	answers, err := s.submissionRepo.FindAnswersByQuizID(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("ExportAnswers: failed to load answers")
		return fmt.Errorf("error loading answers for quiz %d: %w", quizID, err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{
		"ID", "Submission ID", "Phone", "Question ID", "Question Text",
		"Selected Option", "Correct Option", "Is Correct",
	}); err != nil {
		return err
	}

	for _, a := range answers {
		selected := ""
		if a.SelectedOption != nil {
			selected = *a.SelectedOption
		}
		record := []string{
			strconv.FormatUint(uint64(a.ID), 10),
			strconv.FormatUint(uint64(a.SubmissionID), 10),
			a.Submission.Phone,
			strconv.FormatUint(uint64(a.QuestionID), 10),
			a.Question.Text,
			selected,
			a.CorrectOption,
			strconv.FormatBool(a.IsCorrect),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func (s *exportService) ExportFeedback(w io.Writer, quizID uint) error {
	feedbacks, err := s.feedbackRepo.FindAllByQuizID(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("ExportFeedback: failed to load feedback")
		return fmt.Errorf("error loading feedback for quiz %d: %w", quizID, err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{
		"ID", "Submission ID", "Phone", "Event",
		"Overall Rating", "UI Rating", "Difficulty Rating", "Relevance Rating",
		"Comments", "Created At",
	}); err != nil {
		return err
	}

	for _, f := range feedbacks {
		record := []string{
			strconv.FormatUint(uint64(f.ID), 10),
			strconv.FormatUint(uint64(f.SubmissionID), 10),
			f.Submission.Phone,
			f.Submission.Event,
			strconv.Itoa(f.Rating),
			strconv.Itoa(f.RatingUI),
			strconv.Itoa(f.RatingDifficulty),
			strconv.Itoa(f.RatingRelevance),
			f.Comments,
			f.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
