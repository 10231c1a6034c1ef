package service

import (
	"github.com/Bahri26/edumath-sub001/internal/apperror"
	"github.com/Bahri26/edumath-sub001/internal/dto"
	"github.com/Bahri26/edumath-sub001/internal/model"
	"github.com/Bahri26/edumath-sub001/internal/repository"
	"github.com/rs/zerolog/log"
)

// ManualExamSize is the fixed question count enforced on the manual path.
const ManualExamSize = 21

// TierQuota is how many questions each difficulty tier contributes to an
// auto-generated exam at most.
const TierQuota = 7

const defaultAutoDuration = 30 // minutes

// ExamBuilderService assembles and persists exams, either from an explicit
// question list or by stratified sampling over the question bank.
type ExamBuilderService interface {
	CreateExam(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error)
	AutoGenerateExam(req dto.ExamAutoGenerateDTO) (*dto.ExamResponseDTO, error)
}

type examBuilderService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
}

func NewExamBuilderService(examRepo repository.ExamRepository, questionRepo repository.QuestionRepository) ExamBuilderService {
	return &examBuilderService{examRepo: examRepo, questionRepo: questionRepo}
}

// CreateExam persists an exam from an explicit 21-item question list,
// keeping the caller-supplied order. Nothing is persisted when validation
// fails.
func (s *examBuilderService) CreateExam(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error) {
	if req.Title == "" {
		return nil, apperror.Validationf("exam title is required")
	}
	if len(req.Questions) != ManualExamSize {
		return nil, apperror.Validationf("an exam must have exactly %d questions, received %d", ManualExamSize, len(req.Questions))
	}

	resolved, err := s.questionRepo.FindByIDs(req.Questions)
	if err != nil {
		log.Error().Err(err).Msg("CreateExam: failed to resolve question ids")
		return nil, err
	}
	if len(resolved) != len(req.Questions) {
		return nil, apperror.Validationf("%d of %d question ids could not be resolved", len(req.Questions)-len(resolved), len(req.Questions))
	}

	byID := make(map[uint]model.Question, len(resolved))
	for _, q := range resolved {
		byID[q.ID] = q
	}

	exam := model.Exam{
		Title:       req.Title,
		Description: req.Description,
		ClassLevel:  req.ClassLevel,
		Duration:    req.Duration,
		Status:      "active",
	}
	ordered := make([]model.Question, 0, len(req.Questions))
	for i, id := range req.Questions {
		exam.Items = append(exam.Items, model.ExamQuestion{QuestionID: id, Position: i})
		ordered = append(ordered, byID[id])
	}

	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Msg("CreateExam: database error creating exam")
		return nil, err
	}

	log.Info().Uint("examID", exam.ID).Int("questions", len(ordered)).Msg("Exam created")
	return examToDTO(&exam, ordered), nil
}

// AutoGenerateExam samples up to TierQuota questions per difficulty tier
// and concatenates the tiers Easy, Medium, Hard. A tier with fewer matches
// contributes what it has; the exam is persisted with whatever total was
// assembled as long as it is non-empty.
func (s *examBuilderService) AutoGenerateExam(req dto.ExamAutoGenerateDTO) (*dto.ExamResponseDTO, error) {
	if req.Title == "" {
		return nil, apperror.Validationf("exam title is required")
	}
	classLevel := req.ClassLevel
	if classLevel == "" {
		classLevel = "all"
	}
	duration := req.Duration
	if duration <= 0 {
		duration = defaultAutoDuration
	}

	var sampled []model.Question
	for _, tier := range model.DifficultyTiers {
		questions, err := s.questionRepo.SampleRandom(tier, classLevel, req.Subject, TierQuota)
		if err != nil {
			log.Error().Err(err).Str("difficulty", tier).Msg("AutoGenerateExam: sampling failed")
			return nil, err
		}
		sampled = append(sampled, questions...)
	}

	if len(sampled) == 0 {
		return nil, apperror.NotFoundf("no questions matched class level %q and subject %q", classLevel, req.Subject)
	}
	if len(sampled) < ManualExamSize {
		log.Warn().Int("assembled", len(sampled)).Str("class_level", classLevel).Str("subject", req.Subject).
			Msg("AutoGenerateExam: pool too small for a full exam, creating a partial one")
	}

	exam := model.Exam{
		Title:      req.Title,
		ClassLevel: classLevel,
		Duration:   duration,
		Status:     "active",
	}
	for i, q := range sampled {
		exam.Items = append(exam.Items, model.ExamQuestion{QuestionID: q.ID, Position: i})
	}

	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Msg("AutoGenerateExam: database error creating exam")
		return nil, err
	}

	log.Info().Uint("examID", exam.ID).Int("questions", len(sampled)).Msg("Exam auto-generated")
	return examToDTO(&exam, sampled), nil
}

func examToDTO(exam *model.Exam, questions []model.Question) *dto.ExamResponseDTO {
	resp := &dto.ExamResponseDTO{
		ID:          exam.ID,
		Title:       exam.Title,
		Description: exam.Description,
		ClassLevel:  exam.ClassLevel,
		Duration:    exam.Duration,
		Status:      exam.Status,
		CreatedAt:   exam.CreatedAt,
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.QuestionResponseDTO{
			ID:         q.ID,
			Text:       q.Text,
			Subject:    q.Subject,
			ClassLevel: q.ClassLevel,
			Difficulty: q.Difficulty,
			Options:    q.Options,
		})
	}
	return resp
}
