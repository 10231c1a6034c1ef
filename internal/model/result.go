package model

import (
	"time"

	"gorm.io/gorm"
)

// Result is one student's scored attempt. Results live in their own table
// and are written with a single-row insert, so two concurrent submissions
// against the same exam can never overwrite each other.
type Result struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	ExamID       uint           `json:"exam_id" gorm:"not null;index"`
	StudentID    string         `json:"student_id" gorm:"not null;index"`
	StudentName  string         `json:"student_name"`
	Score        int            `json:"score"` // 0-100
	CorrectCount int            `json:"correct_count"`
	WrongCount   int            `json:"wrong_count"`
	WeakTopics   []string       `json:"weak_topics" gorm:"serializer:json;type:jsonb"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
