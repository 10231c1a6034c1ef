package service

import (
	"math"

	"github.com/Bahri26/edumath-sub001/internal/model"
)

// scoreOutcome is the pure result of comparing an answer map against an
// exam's questions.
type scoreOutcome struct {
	TotalQuestions int
	CorrectCount   int
	WrongCount     int
	Score          int
	WeakTopics     []string
}

// scoreSubmission walks every question in the exam. An answer matches only
// on exact string equality; a missing key counts as blank and therefore
// wrong. Subjects of missed questions are collected once each, in first-hit
// order.
func scoreSubmission(questions []model.Question, answers map[uint]string) scoreOutcome {
	outcome := scoreOutcome{TotalQuestions: len(questions)}

	seen := make(map[string]bool)
	for _, q := range questions {
		if answers[q.ID] == q.CorrectAnswer {
			outcome.CorrectCount++
			continue
		}
		if q.Subject != "" && !seen[q.Subject] {
			seen[q.Subject] = true
			outcome.WeakTopics = append(outcome.WeakTopics, q.Subject)
		}
	}

	outcome.WrongCount = outcome.TotalQuestions - outcome.CorrectCount
	outcome.Score = percentScore(outcome.CorrectCount, outcome.TotalQuestions)
	return outcome
}

// percentScore rounds correct/total to a 0-100 integer. A zero-question
// exam scores 0 rather than dividing by zero.
func percentScore(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
