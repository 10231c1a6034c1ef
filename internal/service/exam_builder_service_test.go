package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Bahri26/edumath-sub001/internal/apperror"
	"github.com/Bahri26/edumath-sub001/internal/dto"
	"github.com/Bahri26/edumath-sub001/internal/model"
)

func bankOf(n int, difficulty, classLevel, subject string) []model.Question {
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, model.Question{
			Difficulty:    difficulty,
			ClassLevel:    classLevel,
			Subject:       subject,
			CorrectAnswer: "A",
		})
	}
	return questions
}

func withIDs(start uint, questions []model.Question) []model.Question {
	for i := range questions {
		questions[i].ID = start + uint(i)
		questions[i].Text = fmt.Sprintf("question %d", questions[i].ID)
	}
	return questions
}

func manualIDs(n int) []uint {
	ids := make([]uint, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, uint(i))
	}
	return ids
}

func TestCreateExamValidation(t *testing.T) {
	bank := withIDs(1, bankOf(30, model.DifficultyEasy, "5. Sınıf", "Kesirler"))

	tests := []struct {
		name string
		req  dto.ExamCreateDTO
	}{
		{"missing title", dto.ExamCreateDTO{ClassLevel: "5. Sınıf", Duration: 40, Questions: manualIDs(21)}},
		{"too few questions", dto.ExamCreateDTO{Title: "Deneme", ClassLevel: "5. Sınıf", Duration: 40, Questions: manualIDs(20)}},
		{"too many questions", dto.ExamCreateDTO{Title: "Deneme", ClassLevel: "5. Sınıf", Duration: 40, Questions: manualIDs(22)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			examRepo := newFakeExamRepo()
			svc := NewExamBuilderService(examRepo, &fakeQuestionRepo{questions: bank})

			_, err := svc.CreateExam(tt.req)

			var ve *apperror.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if examRepo.count() != 0 {
				t.Error("nothing should be persisted on validation failure")
			}
		})
	}
}

func TestCreateExamUnresolvedIDs(t *testing.T) {
	// Only 20 of the 21 requested ids exist in the bank.
	bank := withIDs(1, bankOf(20, model.DifficultyEasy, "5. Sınıf", "Kesirler"))
	examRepo := newFakeExamRepo()
	svc := NewExamBuilderService(examRepo, &fakeQuestionRepo{questions: bank})

	_, err := svc.CreateExam(dto.ExamCreateDTO{
		Title: "Deneme", ClassLevel: "5. Sınıf", Duration: 40, Questions: manualIDs(21),
	})

	var ve *apperror.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if examRepo.count() != 0 {
		t.Error("nothing should be persisted when ids do not resolve")
	}
}

func TestCreateExamKeepsCallerOrder(t *testing.T) {
	bank := withIDs(1, bankOf(21, model.DifficultyEasy, "5. Sınıf", "Kesirler"))
	examRepo := newFakeExamRepo()
	svc := NewExamBuilderService(examRepo, &fakeQuestionRepo{questions: bank})

	// Reversed order must survive into the response and the stored links.
	ids := manualIDs(21)
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	resp, err := svc.CreateExam(dto.ExamCreateDTO{
		Title: "Deneme", ClassLevel: "5. Sınıf", Duration: 40, Questions: ids,
	})
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	if resp.Status != "active" {
		t.Errorf("status = %q, want active", resp.Status)
	}
	if len(resp.Questions) != 21 {
		t.Fatalf("question count = %d, want 21", len(resp.Questions))
	}
	for i, q := range resp.Questions {
		if q.ID != ids[i] {
			t.Fatalf("question %d has id %d, want %d (caller order lost)", i, q.ID, ids[i])
		}
	}

	exam, err := examRepo.FindByID(resp.ID)
	if err != nil {
		t.Fatalf("stored exam missing: %v", err)
	}
	for i, item := range exam.Items {
		if item.Position != i || item.QuestionID != ids[i] {
			t.Fatalf("stored item %d = {pos %d, q %d}, want {pos %d, q %d}", i, item.Position, item.QuestionID, i, ids[i])
		}
	}
}

func TestAutoGenerateExamEmptyPool(t *testing.T) {
	examRepo := newFakeExamRepo()
	svc := NewExamBuilderService(examRepo, &fakeQuestionRepo{})

	_, err := svc.AutoGenerateExam(dto.ExamAutoGenerateDTO{Title: "Deneme", ClassLevel: "5. Sınıf", Subject: "Kesirler"})

	var nf *apperror.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if examRepo.count() != 0 {
		t.Error("nothing should be persisted when no questions match")
	}
}

func TestAutoGenerateExamPartialFill(t *testing.T) {
	// 0 easy, 3 medium, 7 hard matches: the exam is created with 10
	// questions, tiers concatenated in order.
	var bank []model.Question
	bank = append(bank, withIDs(100, bankOf(3, model.DifficultyMedium, "5. Sınıf", "Kesirler"))...)
	bank = append(bank, withIDs(200, bankOf(7, model.DifficultyHard, "5. Sınıf", "Kesirler"))...)

	examRepo := newFakeExamRepo()
	svc := NewExamBuilderService(examRepo, &fakeQuestionRepo{questions: bank})

	resp, err := svc.AutoGenerateExam(dto.ExamAutoGenerateDTO{Title: "Deneme", ClassLevel: "5. Sınıf", Subject: "Kesirler"})
	if err != nil {
		t.Fatalf("AutoGenerateExam: %v", err)
	}
	if len(resp.Questions) != 10 {
		t.Fatalf("question count = %d, want 10", len(resp.Questions))
	}
	for i, q := range resp.Questions {
		want := model.DifficultyMedium
		if i >= 3 {
			want = model.DifficultyHard
		}
		if q.Difficulty != want {
			t.Errorf("question %d difficulty = %s, want %s (tier order broken)", i, q.Difficulty, want)
		}
	}
}

func TestAutoGenerateExamTierQuota(t *testing.T) {
	// A deep pool in every tier still yields at most 7 per tier.
	var bank []model.Question
	bank = append(bank, withIDs(100, bankOf(20, model.DifficultyEasy, "5. Sınıf", "Kesirler"))...)
	bank = append(bank, withIDs(200, bankOf(20, model.DifficultyMedium, "5. Sınıf", "Kesirler"))...)
	bank = append(bank, withIDs(300, bankOf(20, model.DifficultyHard, "5. Sınıf", "Kesirler"))...)

	svc := NewExamBuilderService(newFakeExamRepo(), &fakeQuestionRepo{questions: bank})

	resp, err := svc.AutoGenerateExam(dto.ExamAutoGenerateDTO{Title: "Deneme", ClassLevel: "5. Sınıf"})
	if err != nil {
		t.Fatalf("AutoGenerateExam: %v", err)
	}
	if len(resp.Questions) != 21 {
		t.Fatalf("question count = %d, want 21 (7 per tier)", len(resp.Questions))
	}
}

func TestAutoGenerateExamDefaults(t *testing.T) {
	bank := withIDs(1, bankOf(5, model.DifficultyEasy, "6. Sınıf", "Örüntüler"))
	svc := NewExamBuilderService(newFakeExamRepo(), &fakeQuestionRepo{questions: bank})

	resp, err := svc.AutoGenerateExam(dto.ExamAutoGenerateDTO{Title: "Deneme"})
	if err != nil {
		t.Fatalf("AutoGenerateExam: %v", err)
	}
	if resp.ClassLevel != "all" {
		t.Errorf("class level = %q, want the \"all\" sentinel by default", resp.ClassLevel)
	}
	if resp.Duration <= 0 {
		t.Errorf("duration = %d, want a positive default", resp.Duration)
	}
}

func TestAutoGenerateExamMissingTitle(t *testing.T) {
	svc := NewExamBuilderService(newFakeExamRepo(), &fakeQuestionRepo{})
	_, err := svc.AutoGenerateExam(dto.ExamAutoGenerateDTO{})
	var ve *apperror.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
