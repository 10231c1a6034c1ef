package repository

import (
	"github.com/Bahri26/edumath-sub001/internal/model"
	"gorm.io/gorm"
)

// ResultRepository appends and reads scored attempts. Create is a plain
// single-row insert; the exam document itself is never read-modified-written
// when a result is stored.
type ResultRepository interface {
	Create(result *model.Result) error
	FindByExam(examID uint) ([]model.Result, error)
	// FindLatestByExamAndStudent returns the student's most recent attempt
	// for the exam, or gorm.ErrRecordNotFound.
	FindLatestByExamAndStudent(examID uint, studentID string) (*model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByExam(examID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Where("exam_id = ?", examID).Order("created_at DESC").Find(&results).Error
	return results, err
}

func (r *resultRepository) FindLatestByExamAndStudent(examID uint, studentID string) (*model.Result, error) {
	var result model.Result
	err := r.db.Where("exam_id = ? AND student_id = ?", examID, studentID).
		Order("created_at DESC").First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}
