package model

import (
	"time"

	"gorm.io/gorm"
)

type Exam struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	ClassLevel  string         `json:"class_level"`
	Duration    int            `json:"duration"` // minutes
	Status      string         `json:"status" gorm:"default:'active'"`
	Items       []ExamQuestion `json:"items,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Results     []Result       `json:"results,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// ExamQuestion links a bank question into an exam. Position preserves the
// order the questions were assembled in (caller order on the manual path,
// Easy→Medium→Hard tier order on the auto path).
type ExamQuestion struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	ExamID     uint     `json:"exam_id" gorm:"not null;index"`
	QuestionID uint     `json:"question_id" gorm:"not null;index"`
	Question   Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Position   int      `json:"position" gorm:"not null"`
}
