package service

import (
	"context"
	"errors"

	"github.com/Bahri26/edumath-sub001/internal/apperror"
	"github.com/Bahri26/edumath-sub001/internal/dto"
	"github.com/Bahri26/edumath-sub001/internal/model"
	"github.com/Bahri26/edumath-sub001/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnalysisService combines a student's stored result with the exam's
// difficulty distribution and a freshly generated narrative comment.
type AnalysisService interface {
	Analyze(ctx context.Context, examID uint, studentID string) (*dto.AnalysisDTO, error)
}

type analysisService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ResultRepository
	feedback   FeedbackService
}

func NewAnalysisService(examRepo repository.ExamRepository, resultRepo repository.ResultRepository, feedback FeedbackService) AnalysisService {
	return &analysisService{examRepo: examRepo, resultRepo: resultRepo, feedback: feedback}
}

func (s *analysisService) Analyze(ctx context.Context, examID uint, studentID string) (*dto.AnalysisDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam %d not found", examID)
		}
		log.Error().Err(err).Uint("examID", examID).Msg("Analyze: failed to load exam")
		return nil, err
	}

	result, err := s.resultRepo.FindLatestByExamAndStudent(examID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("no submission yet for exam %d", examID)
		}
		log.Error().Err(err).Uint("examID", examID).Str("studentID", studentID).Msg("Analyze: failed to load result")
		return nil, err
	}

	totalQuestions := len(exam.Items)

	// The distribution describes the exam, not the attempt.
	var easy, medium, hard int
	for _, item := range exam.Items {
		switch item.Question.Difficulty {
		case model.DifficultyEasy:
			easy++
		case model.DifficultyMedium:
			medium++
		case model.DifficultyHard:
			hard++
		}
	}

	// Clamped so stale counts in a stored result can never push it negative.
	blank := totalQuestions - (result.CorrectCount + result.WrongCount)
	if blank < 0 {
		blank = 0
	}

	weak := result.WeakTopics
	if weak == nil {
		weak = []string{}
	}

	stats := ExamStats{
		Score:        result.Score,
		CorrectCount: result.CorrectCount,
		WrongCount:   result.WrongCount,
		BlankCount:   blank,
		EasyCount:    easy,
		MediumCount:  medium,
		HardCount:    hard,
		WeakTopics:   weak,
	}

	// The feedback service degrades to its fallback text internally, so a
	// generator failure can never fail the analysis request.
	feedback := s.feedback.GenerateFeedback(ctx, stats)

	return &dto.AnalysisDTO{
		Score:        result.Score,
		CorrectCount: result.CorrectCount,
		WrongCount:   result.WrongCount,
		BlankCount:   blank,
		EasyCount:    easy,
		MediumCount:  medium,
		HardCount:    hard,
		WeakTopics:   weak,
		AIFeedback:   feedback,
	}, nil
}
