package service

import (
	"context"
	"strings"
	"sync"

	"github.com/Bahri26/edumath-sub001/internal/model"
	"github.com/Bahri26/edumath-sub001/internal/repository"
	"gorm.io/gorm"
)

type fakeQuestionRepo struct {
	questions []model.Question
	err       error
}

func (f *fakeQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Question
	for _, q := range f.questions {
		if want[q.ID] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) SampleRandom(difficulty, classLevel, subject string, limit int) ([]model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Question
	for _, q := range f.questions {
		if q.Difficulty != difficulty {
			continue
		}
		if classLevel != "" && classLevel != "all" && q.ClassLevel != classLevel {
			continue
		}
		if subject != "" && !strings.Contains(strings.ToLower(q.Subject), strings.ToLower(subject)) {
			continue
		}
		out = append(out, q)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeExamRepo struct {
	mu     sync.Mutex
	exams  map[uint]*model.Exam
	nextID uint
}

func newFakeExamRepo() *fakeExamRepo {
	return &fakeExamRepo{exams: make(map[uint]*model.Exam)}
}

func (f *fakeExamRepo) Create(exam *model.Exam) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	exam.ID = f.nextID
	stored := *exam
	f.exams[exam.ID] = &stored
	return nil
}

func (f *fakeExamRepo) FindByID(id uint) (*model.Exam, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	exam, ok := f.exams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *exam
	return &cp, nil
}

func (f *fakeExamRepo) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	return f.FindByID(id)
}

func (f *fakeExamRepo) FindAllWithCounts() ([]repository.ExamWithCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repository.ExamWithCounts
	for _, exam := range f.exams {
		out = append(out, repository.ExamWithCounts{Exam: *exam, QuestionCount: len(exam.Items)})
	}
	return out, nil
}

func (f *fakeExamRepo) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.exams, id)
	return nil
}

func (f *fakeExamRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.exams)
}

type fakeResultRepo struct {
	mu      sync.Mutex
	results []model.Result
	nextID  uint
}

func (f *fakeResultRepo) Create(result *model.Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	result.ID = f.nextID
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeResultRepo) FindByExam(examID uint) ([]model.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Result
	for _, r := range f.results {
		if r.ExamID == examID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) FindLatestByExamAndStudent(examID uint, studentID string) (*model.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Later inserts are later attempts.
	for i := len(f.results) - 1; i >= 0; i-- {
		if f.results[i].ExamID == examID && f.results[i].StudentID == studentID {
			cp := f.results[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeResultRepo) all() []model.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Result, len(f.results))
	copy(out, f.results)
	return out
}

type stubFeedbackService struct {
	text string
}

func (s *stubFeedbackService) GenerateFeedback(ctx context.Context, stats ExamStats) string {
	return s.text
}
