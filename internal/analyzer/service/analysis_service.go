package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang-warga-nlp/internal/analyzer/config"
	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/analyzer/strategy"
	"golang-warga-nlp/internal/entity"
	"golang-warga-nlp/pkg/logger"
	"golang-warga-nlp/pkg/utils"
)

var (
	// ErrMissingText is returned when a request carries no text.
	ErrMissingText = errors.New("Missing required field: text")
	// ErrTextTooLong is returned when the text exceeds the configured maximum length.
	ErrTextTooLong = errors.New("Text exceeds maximum length")

	errUnexpectedResult = errors.New("unexpected analysis result type")
)

// InternalError wraps any failure raised while running the pipeline.
// Its message is fixed so internal details never reach clients.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return "NLP analysis failed"
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

// AnalysisService validates analysis requests and dispatches them to task strategies.
type AnalysisService interface {
	Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalysisOutput, error)
	ServiceInfo() dto.ServiceInfoResponse
}

type analysisService struct {
	cfg        *config.Config
	log        *logger.Logger
	strategies map[entity.Task]strategy.TaskStrategy
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(cfg *config.Config, log *logger.Logger, strategies []strategy.TaskStrategy) AnalysisService {
	strategyMap := make(map[entity.Task]strategy.TaskStrategy)
	for _, s := range strategies {
		strategyMap[s.GetType()] = s
	}

	return &analysisService{
		cfg:        cfg,
		log:        log,
		strategies: strategyMap,
	}
}

// DefaultStrategies returns one strategy per supported task.
func DefaultStrategies(summarySentences int) []strategy.TaskStrategy {
	return []strategy.TaskStrategy{
		strategy.NewSummarizationStrategy(summarySentences),
		strategy.NewSentimentStrategy(),
		strategy.NewNERStrategy(),
		strategy.NewFullStrategy(summarySentences),
	}
}

// Analyze runs the requested task. Validation failures return ErrMissingText or
// ErrTextTooLong before any strategy runs; everything else is an *InternalError.
func (s *analysisService) Analyze(ctx context.Context, req *dto.AnalyzeRequest) (output *dto.AnalysisOutput, err error) {
	if req == nil || req.Text == "" {
		return nil, ErrMissingText
	}
	if limit := s.cfg.NLP.MaxTextLength; limit > 0 && utf8.RuneCountInString(req.Text) > limit {
		return nil, ErrTextTooLong
	}

	task := resolveTask(req.Task)
	analysisCtx := resolveContext(req.Context)

	exec, ok := s.strategies[task]
	if !ok {
		missing := fmt.Errorf("no strategy registered for task: %s", task)
		s.log.Error("Analysis failed", logger.ErrorField(missing))
		return nil, &InternalError{Cause: missing}
	}

	defer func() {
		if r := recover(); r != nil {
			cause := utils.RecoverError(r)
			s.log.Error("Analysis panicked", logger.ErrorField(cause), logger.StringField("task", string(task)))
			output, err = nil, &InternalError{Cause: cause}
		}
	}()

	s.log.Debug("Running analysis",
		logger.StringField("task", string(task)),
		logger.StringField("context", string(analysisCtx)),
		logger.IntField("text_length", utf8.RuneCountInString(req.Text)))

	data, err := exec.Execute(ctx, strategy.Document{Text: req.Text, Context: analysisCtx})
	if err != nil {
		s.log.Error("Analysis failed", logger.ErrorField(err), logger.StringField("task", string(task)))
		return nil, &InternalError{Cause: err}
	}

	return &dto.AnalysisOutput{Task: task, Context: analysisCtx, Data: data}, nil
}

// ServiceInfo describes the service for GET /api/nlp.
func (s *analysisService) ServiceInfo() dto.ServiceInfoResponse {
	return dto.ServiceInfoResponse{
		Success:           true,
		Service:           "NLP Analysis Service",
		Version:           s.cfg.App.Version,
		SupportedTasks:    []string{string(entity.TaskSummarization), string(entity.TaskSentiment), string(entity.TaskNER), string(entity.TaskFull)},
		SupportedContexts: []string{string(entity.ContextGeneral), string(entity.ContextKeuangan), string(entity.ContextKeamanan), string(entity.ContextAdministrasi)},
		Language:          "Indonesian (Bahasa Indonesia)",
		Methodology:       Methodology(),
		Timestamp:         utils.TimeNowWIB(),
	}
}

// Methodology lists the techniques behind every analysis result.
func Methodology() dto.Methodology {
	return dto.Methodology{
		Framework: "Rule-based Indonesian NLP pipeline",
		Techniques: []string{
			"TF-IDF extractive summarization",
			"Lexicon-based sentiment analysis",
			"Regex named entity recognition",
			"Template conclusion generation",
		},
	}
}

// resolveTask maps the requested task name to a known task. Empty and unknown
// names run the full pipeline.
func resolveTask(name string) entity.Task {
	switch task := entity.Task(name); task {
	case entity.TaskSummarization, entity.TaskSentiment, entity.TaskNER, entity.TaskFull:
		return task
	default:
		return entity.TaskFull
	}
}

func resolveContext(name string) entity.Context {
	if name == "" {
		return entity.ContextGeneral
	}
	return entity.Context(name)
}
