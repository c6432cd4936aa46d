package http

import (
	"errors"
	"net/http"

	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/analyzer/service"
	"golang-warga-nlp/pkg/logger"
	"golang-warga-nlp/pkg/utils"

	"github.com/labstack/echo/v4"
)

// NLPHandler handles HTTP requests for text analysis.
type NLPHandler struct {
	analysisService service.AnalysisService
	jobService      service.JobService
	logger          *logger.Logger
}

// NewNLPHandler creates a new NLPHandler. jobService may be nil when no queue is configured.
func NewNLPHandler(analysisService service.AnalysisService, jobService service.JobService, logger *logger.Logger) *NLPHandler {
	return &NLPHandler{analysisService: analysisService, jobService: jobService, logger: logger}
}

// RegisterRoutes registers the NLP routes to the Echo group.
func (h *NLPHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Analyze)
	g.GET("", h.GetServiceInfo)
	if h.jobService != nil {
		g.POST("/jobs", h.EnqueueJob)
	}
}

// Analyze godoc
// @Summary Analyze Indonesian text
// @Description Run summarization, sentiment, entity extraction or the full pipeline on a text
// @Tags nlp
// @Accept  json
// @Produce  json
// @Param   request  body    dto.AnalyzeRequest   true    "Text to analyze"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /nlp [post]
func (h *NLPHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
	}

	output, err := h.analysisService.Analyze(c.Request().Context(), &req)
	if err != nil {
		return h.analysisError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AnalyzeResponse{
		Success:     true,
		Data:        output.Data,
		Methodology: service.Methodology(),
		Timestamp:   utils.TimeNowWIB(),
	})
}

// GetServiceInfo godoc
// @Summary Describe the NLP service
// @Description List supported tasks, contexts and techniques
// @Tags nlp
// @Produce  json
// @Success 200 {object} dto.ServiceInfoResponse
// @Router /nlp [get]
func (h *NLPHandler) GetServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analysisService.ServiceInfo())
}

// EnqueueJob godoc
// @Summary Queue an analysis
// @Description Queue an analysis for the background worker; the result is published on the result stream
// @Tags nlp
// @Accept  json
// @Produce  json
// @Param   request  body    dto.AnalyzeRequest   true    "Text to analyze"
// @Success 202 {object} dto.EnqueueJobResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /nlp/jobs [post]
func (h *NLPHandler) EnqueueJob(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request payload"))
	}

	jobID, err := h.jobService.Enqueue(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingText):
			return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		case errors.Is(err, service.ErrTextTooLong):
			return c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(err.Error()))
		}
		h.logger.Error("Failed to enqueue analysis job", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to enqueue analysis job"))
	}

	return c.JSON(http.StatusAccepted, dto.EnqueueJobResponse{Success: true, JobID: jobID})
}

func (h *NLPHandler) analysisError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrMissingText):
		return c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrTextTooLong):
		return c.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(err.Error()))
	}

	h.logger.Error("NLP analysis failed", logger.ErrorField(err))
	var internal *service.InternalError
	if errors.As(err, &internal) {
		return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(internal.Error()))
	}
	return c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("NLP analysis failed"))
}
