package service

import (
	"errors"

	"github.com/Bahri26/edumath-sub001/internal/apperror"
	"github.com/Bahri26/edumath-sub001/internal/dto"
	"github.com/Bahri26/edumath-sub001/internal/model"
	"github.com/Bahri26/edumath-sub001/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService scores a student's answers against an exam and stores
// the outcome as a new Result row.
type SubmissionService interface {
	Submit(examID uint, req dto.ExamSubmitDTO) (*dto.SubmitResultDTO, error)
}

type submissionService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ResultRepository
}

func NewSubmissionService(examRepo repository.ExamRepository, resultRepo repository.ResultRepository) SubmissionService {
	return &submissionService{examRepo: examRepo, resultRepo: resultRepo}
}

func (s *submissionService) Submit(examID uint, req dto.ExamSubmitDTO) (*dto.SubmitResultDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam %d not found", examID)
		}
		log.Error().Err(err).Uint("examID", examID).Msg("Submit: failed to load exam")
		return nil, err
	}

	questions := make([]model.Question, 0, len(exam.Items))
	for _, item := range exam.Items {
		questions = append(questions, item.Question)
	}

	outcome := scoreSubmission(questions, req.Answers)

	result := model.Result{
		ExamID:       examID,
		StudentID:    req.StudentID,
		StudentName:  req.StudentName,
		Score:        outcome.Score,
		CorrectCount: outcome.CorrectCount,
		WrongCount:   outcome.WrongCount,
		WeakTopics:   outcome.WeakTopics,
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Uint("examID", examID).Str("studentID", req.StudentID).Msg("Submit: failed to store result")
		return nil, err
	}

	log.Info().Uint("examID", examID).Str("studentID", req.StudentID).Int("score", outcome.Score).Msg("Submission scored")

	weak := outcome.WeakTopics
	if weak == nil {
		weak = []string{}
	}
	return &dto.SubmitResultDTO{Score: outcome.Score, WeakTopics: weak}, nil
}
