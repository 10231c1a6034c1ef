package service

import (
	"errors"

	"github.com/Bahri26/edumath-sub001/internal/apperror"
	"github.com/Bahri26/edumath-sub001/internal/dto"
	"github.com/Bahri26/edumath-sub001/internal/model"
	"github.com/Bahri26/edumath-sub001/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamService covers the plain read/delete surface around the pipeline.
type ExamService interface {
	GetAllExams() ([]dto.ExamSummaryDTO, error)
	GetExamDetails(examID uint) (*dto.ExamResponseDTO, error)
	GetExamResults(examID uint) ([]dto.ResultResponseDTO, error)
	DeleteExam(examID uint) error
}

type examService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ResultRepository
}

func NewExamService(examRepo repository.ExamRepository, resultRepo repository.ResultRepository) ExamService {
	return &examService{examRepo: examRepo, resultRepo: resultRepo}
}

func (s *examService) GetAllExams() ([]dto.ExamSummaryDTO, error) {
	examsWithCounts, err := s.examRepo.FindAllWithCounts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exams")
		return nil, err
	}

	dtos := make([]dto.ExamSummaryDTO, 0, len(examsWithCounts))
	for _, ewc := range examsWithCounts {
		dtos = append(dtos, dto.ExamSummaryDTO{
			ID:            ewc.Exam.ID,
			Title:         ewc.Exam.Title,
			Description:   ewc.Exam.Description,
			ClassLevel:    ewc.Exam.ClassLevel,
			Duration:      ewc.Exam.Duration,
			Status:        ewc.Exam.Status,
			QuestionCount: ewc.QuestionCount,
			ResultCount:   ewc.ResultCount,
			CreatedAt:     ewc.Exam.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *examService) GetExamDetails(examID uint) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam %d not found", examID)
		}
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to load exam details")
		return nil, err
	}

	questions := make([]model.Question, 0, len(exam.Items))
	for _, item := range exam.Items {
		questions = append(questions, item.Question)
	}
	return examToDTO(exam, questions), nil
}

func (s *examService) GetExamResults(examID uint) ([]dto.ResultResponseDTO, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam %d not found", examID)
		}
		return nil, err
	}

	results, err := s.resultRepo.FindByExam(examID)
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to list exam results")
		return nil, err
	}

	dtos := make([]dto.ResultResponseDTO, 0, len(results))
	for _, r := range results {
		var d dto.ResultResponseDTO
		if err := copier.Copy(&d, &r); err != nil {
			log.Error().Err(err).Uint("resultID", r.ID).Msg("Failed to copy result to DTO")
			continue
		}
		if d.WeakTopics == nil {
			d.WeakTopics = []string{}
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *examService) DeleteExam(examID uint) error {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFoundf("exam %d not found", examID)
		}
		return err
	}
	if err := s.examRepo.Delete(examID); err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("Failed to delete exam")
		return err
	}
	log.Info().Uint("examID", examID).Msg("Exam deleted")
	return nil
}
