package service

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"golang-warga-nlp/internal/analyzer/config"
	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/pkg/common"
	"golang-warga-nlp/pkg/logger"
	"golang-warga-nlp/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// JobService queues analysis requests for the background worker.
type JobService interface {
	Enqueue(ctx context.Context, req *dto.AnalyzeRequest) (string, error)
}

type jobService struct {
	cfg         *config.Config
	log         *logger.Logger
	redisClient redis.Cmdable
}

// NewJobService creates a new JobService.
func NewJobService(cfg *config.Config, log *logger.Logger, redisClient redis.Cmdable) JobService {
	return &jobService{
		cfg:         cfg,
		log:         log,
		redisClient: redisClient,
	}
}

// Enqueue validates req like a synchronous analysis, then appends it to the
// request stream under a new job id.
func (s *jobService) Enqueue(ctx context.Context, req *dto.AnalyzeRequest) (string, error) {
	if req == nil || req.Text == "" {
		return "", ErrMissingText
	}
	if limit := s.cfg.NLP.MaxTextLength; limit > 0 && utf8.RuneCountInString(req.Text) > limit {
		return "", ErrTextTooLong
	}

	jobID := uuid.NewString()
	payload, err := json.Marshal(dto.StreamAnalysisRequest{
		JobID:      jobID,
		Text:       req.Text,
		Context:    req.Context,
		Task:       req.Task,
		EnqueuedAt: utils.TimeNowWIB(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal analysis request: %w", err)
	}

	if err := s.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamAnalysisRequest,
		MaxLen: s.cfg.Redis.StreamMaxLen,
		Approx: true,
		Values: map[string]interface{}{common.PayloadField: string(payload)},
	}).Err(); err != nil {
		s.log.Error("Failed to enqueue analysis request", logger.ErrorField(err), logger.StringField("job_id", jobID))
		return "", fmt.Errorf("failed to enqueue analysis request: %w", err)
	}

	s.log.Info("Analysis job enqueued", logger.StringField("job_id", jobID), logger.StringField("task", req.Task))
	return jobID, nil
}
