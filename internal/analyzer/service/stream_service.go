package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang-warga-nlp/internal/analyzer/config"
	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/pkg/common"
	"golang-warga-nlp/pkg/logger"
	"golang-warga-nlp/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// StreamService consumes analysis requests from the Redis request stream and
// publishes their results.
type StreamService interface {
	ProcessTask(ctx context.Context)
	ProcessRetries(ctx context.Context)
}

type streamService struct {
	cfg         *config.Config
	log         *logger.Logger
	redisClient redis.Cmdable
	analysis    AnalysisService
}

// NewStreamService creates a new StreamService.
func NewStreamService(cfg *config.Config, log *logger.Logger, redisClient redis.Cmdable, analysis AnalysisService) StreamService {
	return &streamService{
		cfg:         cfg,
		log:         log,
		redisClient: redisClient,
		analysis:    analysis,
	}
}

// ProcessTask reads and handles a single new request.
func (s *streamService) ProcessTask(ctx context.Context) {
	streams, err := s.redisClient.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    common.RedisStreamGroup,
		Consumer: s.consumerName(),
		Streams:  []string{common.RedisStreamAnalysisRequest, ">"},
		Count:    1,
		Block:    s.cfg.Worker.BlockDuration,
	}).Result()
	if err != nil {
		// Idle periods and shutdown are not errors.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, redis.Nil) {
			return
		}
		s.log.Error("Failed to read from stream", logger.ErrorField(err))
		return
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return
	}

	s.handleMessage(ctx, streams[0].Messages[0])
}

// ProcessRetries claims one request left pending by a crashed or stuck consumer
// and handles it again.
func (s *streamService) ProcessRetries(ctx context.Context) {
	msgs, _, err := s.redisClient.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   common.RedisStreamAnalysisRequest,
		Group:    common.RedisStreamGroup,
		Consumer: s.consumerName() + "-retry",
		MinIdle:  s.cfg.Worker.MaxIdle,
		Start:    "0",
		Count:    1,
	}).Result()
	if err != nil {
		s.log.Error("Failed to claim pending analysis request", logger.ErrorField(err))
		return
	}

	if len(msgs) == 0 {
		s.log.Debug("Retry found no pending messages", logger.StringField("stream", common.RedisStreamAnalysisRequest))
		return
	}

	s.log.Info("Retrying pending analysis request", logger.StringField("message_id", msgs[0].ID))
	s.handleMessage(ctx, msgs[0])
}

func (s *streamService) handleMessage(ctx context.Context, message redis.XMessage) {
	payload, ok := message.Values[common.PayloadField].(string)
	if !ok {
		s.log.Error("field 'payload' not found or not a string in stream message", logger.StringField("message_id", message.ID))
		s.ack(ctx, message.ID)
		return
	}

	result, err := buildResult(ctx, s.analysis, payload, message.ID)
	if err != nil {
		s.log.Error("Failed to unmarshal analysis request", logger.ErrorField(err), logger.StringField("message_id", message.ID))
		// Malformed messages are dropped so they are not redelivered forever.
		s.ack(ctx, message.ID)
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		s.log.Error("Failed to marshal analysis result", logger.ErrorField(err), logger.StringField("job_id", result.JobID))
		s.ack(ctx, message.ID)
		return
	}

	if err := s.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: common.RedisStreamAnalysisResult,
		MaxLen: s.cfg.Worker.ResultStreamMaxLen,
		Approx: true,
		Values: map[string]interface{}{common.PayloadField: string(body)},
	}).Err(); err != nil {
		// Left pending; ProcessRetries picks it up once it is idle long enough.
		s.log.Error("Failed to publish analysis result", logger.ErrorField(err), logger.StringField("job_id", result.JobID))
		return
	}

	s.ack(ctx, message.ID)
	s.log.Info("Analysis job completed",
		logger.StringField("job_id", result.JobID),
		logger.StringField("task", result.Task),
		logger.Field("success", result.Success))
}

func (s *streamService) ack(ctx context.Context, id string) {
	if err := s.redisClient.XAck(ctx, common.RedisStreamAnalysisRequest, common.RedisStreamGroup, id).Err(); err != nil {
		s.log.Error("Failed to acknowledge message", logger.ErrorField(err), logger.StringField("message_id", id))
	}
}

func (s *streamService) consumerName() string {
	if s.cfg.Worker.ConsumerName != "" {
		return s.cfg.Worker.ConsumerName
	}
	return common.RedisStreamConsumer
}

// buildResult decodes a request payload and analyzes it. The returned error is
// only set for undecodable payloads; analysis failures become unsuccessful results.
func buildResult(ctx context.Context, analysis AnalysisService, payload string, messageID string) (*dto.StreamAnalysisResult, error) {
	var req dto.StreamAnalysisRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return nil, fmt.Errorf("invalid analysis request payload: %w", err)
	}

	jobID := req.JobID
	if jobID == "" {
		jobID = messageID
	}

	result := &dto.StreamAnalysisResult{JobID: jobID, Task: req.Task}

	output, err := analysis.Analyze(ctx, &dto.AnalyzeRequest{Text: req.Text, Context: req.Context, Task: req.Task})
	result.CompletedAt = utils.TimeNowWIB()
	if err != nil {
		result.Error = err.Error()
		return result, nil
	}

	result.Success = true
	result.Task = string(output.Task)
	result.Data = output.Data
	return result, nil
}
