package repository

import (
	"github.com/Bahri26/edumath-sub001/internal/model"
	"gorm.io/gorm"
)

// QuestionRepository is the exam pipeline's read-only view of the question
// bank: batch resolution for the manual path and filtered random sampling
// for the auto path.
type QuestionRepository interface {
	FindByIDs(ids []uint) ([]model.Question, error)
	// SampleRandom draws up to limit questions uniformly at random without
	// replacement. classLevel "all" disables the class filter; a non-empty
	// subject is matched as a case-insensitive substring.
	SampleRandom(difficulty, classLevel, subject string, limit int) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) SampleRandom(difficulty, classLevel, subject string, limit int) ([]model.Question, error) {
	query := r.db.Where("difficulty = ?", difficulty)
	if classLevel != "" && classLevel != "all" {
		query = query.Where("class_level = ?", classLevel)
	}
	if subject != "" {
		query = query.Where("subject ILIKE ?", "%"+subject+"%")
	}

	var questions []model.Question
	if err := query.Order("RANDOM()").Limit(limit).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
