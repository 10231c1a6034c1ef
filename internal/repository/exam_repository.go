package repository

import (
	"github.com/Bahri26/edumath-sub001/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindAllWithCounts() ([]ExamWithCounts, error)
	Delete(id uint) error
}

type ExamWithCounts struct {
	model.Exam
	QuestionCount int
	ResultCount   int
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	// Creating the exam also creates its question links via the Items
	// association.
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.First(&exam, id).Error
	return &exam, err
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("exam_questions.position ASC")
	}).Preload("Items.Question").First(&exam, id).Error
	return &exam, err
}

func (r *examRepository) FindAllWithCounts() ([]ExamWithCounts, error) {
	var results []ExamWithCounts
	err := r.db.Model(&model.Exam{}).
		Select("exams.*, " +
			"(SELECT COUNT(*) FROM exam_questions WHERE exam_questions.exam_id = exams.id) as question_count, " +
			"(SELECT COUNT(*) FROM results WHERE results.exam_id = exams.id AND results.deleted_at IS NULL) as result_count").
		Where("exams.deleted_at IS NULL").
		Order("exams.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *examRepository) Delete(id uint) error {
	return r.db.Select("Items", "Results").Delete(&model.Exam{ID: id}).Error
}
