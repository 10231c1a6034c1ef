package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Bahri26/edumath-sub001/internal/apperror"
	"github.com/Bahri26/edumath-sub001/internal/dto"
	"github.com/Bahri26/edumath-sub001/internal/middleware"
	"github.com/Bahri26/edumath-sub001/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	builderSvc    service.ExamBuilderService
	submissionSvc service.SubmissionService
	analysisSvc   service.AnalysisService
	examSvc       service.ExamService
	jwtSecret     string
}

func NewExamController(
	builderSvc service.ExamBuilderService,
	submissionSvc service.SubmissionService,
	analysisSvc service.AnalysisService,
	examSvc service.ExamService,
	jwtSecret string,
) *ExamController {
	return &ExamController{
		builderSvc:    builderSvc,
		submissionSvc: submissionSvc,
		analysisSvc:   analysisSvc,
		examSvc:       examSvc,
		jwtSecret:     jwtSecret,
	}
}

func (ctrl *ExamController) RegisterRoutes(router *gin.Engine) {
	exams := router.Group("/exams")
	{
		exams.POST("", ctrl.CreateExamHandler)
		exams.POST("/auto-generate", ctrl.AutoGenerateExamHandler)
		exams.GET("", ctrl.GetAllExamsHandler)
		exams.GET("/:id", ctrl.GetExamHandler)
		exams.DELETE("/:id", ctrl.DeleteExamHandler)
		exams.POST("/:id/submit", ctrl.SubmitExamHandler)
		exams.GET("/:id/results", ctrl.GetExamResultsHandler)
		exams.GET("/:id/analysis", middleware.RequireStudent(ctrl.jwtSecret), ctrl.GetAnalysisHandler)
	}
}

// CreateExamHandler godoc
// @Summary Create a new exam from an explicit question list
// @Description Persists an exam with exactly 21 resolved question ids, in caller order.
// @Tags exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateDTO true "Exam data with 21 question ids"
// @Success 201 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Wrong question count or unresolved ids"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [post]
func (ctrl *ExamController) CreateExamHandler(c *gin.Context) {
	var req dto.ExamCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ExamCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	examResp, err := ctrl.builderSvc.CreateExam(req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, examResp)
}

// AutoGenerateExamHandler godoc
// @Summary Auto-generate an exam by stratified sampling
// @Description Draws up to 7 questions per difficulty tier matching the class level and subject filter.
// @Tags exams
// @Accept json
// @Produce json
// @Param criteria body dto.ExamAutoGenerateDTO true "Generation criteria"
// @Success 201 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse "No questions matched the criteria"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/auto-generate [post]
func (ctrl *ExamController) AutoGenerateExamHandler(c *gin.Context) {
	var req dto.ExamAutoGenerateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ExamAutoGenerateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	examResp, err := ctrl.builderSvc.AutoGenerateExam(req)
	if err != nil {
		// An empty pool is a client-side criteria problem on this endpoint.
		var nf *apperror.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: nf.Msg})
			return
		}
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, examResp)
}

// SubmitExamHandler godoc
// @Summary Submit a student's answers for an exam
// @Description Scores the answer map against the exam and stores a new result.
// @Tags exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param submission body dto.ExamSubmitDTO true "Student identity and answers keyed by question id"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or exam id"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id}/submit [post]
func (ctrl *ExamController) SubmitExamHandler(c *gin.Context) {
	examID, ok := ctrl.examIDParam(c)
	if !ok {
		return
	}

	var req dto.ExamSubmitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ExamSubmitDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := ctrl.submissionSvc.Submit(examID, req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAnalysisHandler godoc
// @Summary Analyze the caller's latest result for an exam
// @Description Combines the stored result, the exam's difficulty distribution and generated commentary.
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.AnalysisDTO
// @Failure 401 {object} dto.ErrorResponse "No verified identity"
// @Failure 404 {object} dto.ErrorResponse "Exam or submission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/{id}/analysis [get]
func (ctrl *ExamController) GetAnalysisHandler(c *gin.Context) {
	examID, ok := ctrl.examIDParam(c)
	if !ok {
		return
	}

	studentID := c.GetString(middleware.ContextStudentID)
	if studentID == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "no verified identity"})
		return
	}

	analysis, err := ctrl.analysisSvc.Analyze(c.Request.Context(), examID, studentID)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GetAllExamsHandler godoc
// @Summary List all exams
// @Tags exams
// @Produce json
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (ctrl *ExamController) GetAllExamsHandler(c *gin.Context) {
	exams, err := ctrl.examSvc.GetAllExams()
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exams)
}

// GetExamHandler godoc
// @Summary Get an exam with its ordered questions
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [get]
func (ctrl *ExamController) GetExamHandler(c *gin.Context) {
	examID, ok := ctrl.examIDParam(c)
	if !ok {
		return
	}

	examResp, err := ctrl.examSvc.GetExamDetails(examID)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, examResp)
}

// GetExamResultsHandler godoc
// @Summary List stored results for an exam
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {array} dto.ResultResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id}/results [get]
func (ctrl *ExamController) GetExamResultsHandler(c *gin.Context) {
	examID, ok := ctrl.examIDParam(c)
	if !ok {
		return
	}

	results, err := ctrl.examSvc.GetExamResults(examID)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// DeleteExamHandler godoc
// @Summary Delete an exam and everything attached to it
// @Tags exams
// @Param id path int true "Exam ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [delete]
func (ctrl *ExamController) DeleteExamHandler(c *gin.Context) {
	examID, ok := ctrl.examIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.examSvc.DeleteExam(examID); err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctrl *ExamController) examIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid exam ID format"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the error taxonomy to status codes. Unknown errors are
// logged with full detail and answered with an opaque 500 body.
func (ctrl *ExamController) respondError(c *gin.Context, err error) {
	var (
		validation *apperror.ValidationError
		notFound   *apperror.NotFoundError
		auth       *apperror.AuthError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validation.Msg})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFound.Msg})
	case errors.As(err, &auth):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: auth.Msg})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error in exam controller")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
