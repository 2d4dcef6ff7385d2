package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/aispectrumclubaiml/ak/internal/model"
)

func TestExportSubmissionsCSV(t *testing.T) {
	quizzes := newFakeQuizRepo(&model.Quiz{ID: 3, Name: "Build With AI"})
	subs := newFakeSubmissionRepo(quizzes)
	selected := "B"
	_ = subs.CreateWithAnswers(&model.Submission{
		QuizID: 3, Phone: "9123456789", Event: "Build With AI",
		Score: 1, TotalQuestions: 2, TimeTakenSeconds: 90,
		Answers: []model.Answer{
			{QuestionID: 1, SelectedOption: &selected, CorrectOption: "B", IsCorrect: true},
			{QuestionID: 2, SelectedOption: nil, CorrectOption: "C", IsCorrect: false},
		},
	})
	svc := NewExportService(subs, newFakeFeedbackRepo())

	var buf bytes.Buffer
	if err := svc.ExportSubmissions(&buf, 3); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][3] != "Phone" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][3] != "9123456789" || rows[1][5] != "1" || rows[1][6] != "2" {
		t.Fatalf("unexpected submission row: %v", rows[1])
	}
}

func TestExportAnswersCSV(t *testing.T) {
	quizzes := newFakeQuizRepo(&model.Quiz{ID: 3, Name: "Build With AI"})
	subs := newFakeSubmissionRepo(quizzes)
	selected := "A"
	_ = subs.CreateWithAnswers(&model.Submission{
		QuizID: 3, Phone: "9123456789", Score: 1, TotalQuestions: 2,
		Answers: []model.Answer{
			{ID: 1, QuestionID: 1, SelectedOption: &selected, CorrectOption: "A", IsCorrect: true},
			{ID: 2, QuestionID: 2, SelectedOption: nil, CorrectOption: "D", IsCorrect: false},
		},
	})
	svc := NewExportService(subs, newFakeFeedbackRepo())

	var buf bytes.Buffer
	if err := svc.ExportAnswers(&buf, 3); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	// Unanswered question exports an empty selected column.
	if rows[2][5] != "" {
		t.Fatalf("expected empty selection, got %q", rows[2][5])
	}
	if rows[1][5] != "A" || rows[1][7] != "true" {
		t.Fatalf("unexpected answer row: %v", rows[1])
	}
}

func TestExportFeedbackCSV(t *testing.T) {
	quizzes := newFakeQuizRepo(&model.Quiz{ID: 3, Name: "Build With AI"})
	subs := newFakeSubmissionRepo(quizzes)
	_ = subs.CreateWithAnswers(&model.Submission{QuizID: 3, Phone: "9123456789", Score: 1, TotalQuestions: 1})
	feedbacks := newFakeFeedbackRepo()
	_ = feedbacks.Create(&model.Feedback{SubmissionID: 1, Rating: 4, RatingUI: 5, Comments: "nice, but tight timer"})

	svc := NewExportService(subs, feedbacks)

	var buf bytes.Buffer
	if err := svc.ExportFeedback(&buf, 3); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if rows[1][4] != "4" || rows[1][8] != "nice, but tight timer" {
		t.Fatalf("unexpected feedback row: %v", rows[1])
	}
}
