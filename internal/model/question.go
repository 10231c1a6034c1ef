package model

import (
	"time"

	"gorm.io/gorm"
)

// Difficulty labels used across the question bank.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// DifficultyTiers is the sampling order for auto-generated exams.
var DifficultyTiers = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question is owned by the question bank; the exam pipeline only reads it.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Subject       string         `json:"subject" gorm:"index"`
	ClassLevel    string         `json:"class_level" gorm:"index"`
	Difficulty    string         `json:"difficulty" gorm:"not null;index"` // Easy, Medium, Hard
	CorrectAnswer string         `json:"correct_answer" gorm:"not null"`
	Options       []string       `json:"options" gorm:"serializer:json;type:jsonb"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
