package consumer

import (
	"context"
	"sync"
	"time"

	"golang-warga-nlp/internal/analyzer/config"
	"golang-warga-nlp/internal/analyzer/service"
	"golang-warga-nlp/pkg/common"
	"golang-warga-nlp/pkg/logger"
	"golang-warga-nlp/pkg/utils"
)

// RedisConsumer runs the analysis worker loops against the Redis request stream.
type RedisConsumer struct {
	cfg           *config.Config
	streamService service.StreamService
	logger        *logger.Logger
	stopChan      chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
}

// NewRedisConsumer creates a new RedisConsumer.
func NewRedisConsumer(cfg *config.Config, streamService service.StreamService, log *logger.Logger) *RedisConsumer {
	return &RedisConsumer{
		cfg:           cfg,
		streamService: streamService,
		logger:        log,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the consumer's task processing loops.
func (c *RedisConsumer) Start(ctx context.Context) {
	c.logger.Info("Redis consumer started")
	c.RegisterStreamHandler(ctx, c.streamService.ProcessTask, common.RedisStreamAnalysisRequest, c.cfg.Worker.TaskTimeout)

	if c.cfg.Worker.RetryInterval > 0 {
		c.RegisterTickerHandler(ctx, c.streamService.ProcessRetries, c.cfg.Worker.RetryInterval, c.cfg.Worker.TaskTimeout, common.RedisStreamAnalysisRequest+"-retry")
	}
}

// RegisterStreamHandler calls fn in a loop until ctx is canceled or Stop is called.
// Each call gets its own timeout.
func (c *RedisConsumer) RegisterStreamHandler(ctx context.Context, fn func(ctx context.Context), streamName string, timeout time.Duration) {
	c.logger.Info("Registering stream handler", logger.StringField("stream", streamName))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("Redis consumer stopping due to context cancellation", logger.StringField("stream", streamName))
				return
			case <-c.stopChan:
				c.logger.Info("Redis consumer stopping", logger.StringField("stream", streamName))
				return
			default:
				c.runWithTimeout(ctx, fn, timeout)
			}
		}
	})
}

// RegisterTickerHandler calls fn every interval until ctx is canceled or Stop is called.
func (c *RedisConsumer) RegisterTickerHandler(ctx context.Context, fn func(ctx context.Context), interval time.Duration, timeout time.Duration, name string) {
	c.logger.Info("Registering ticker handler",
		logger.StringField("name", name),
		logger.Field("interval", interval),
		logger.Field("timeout", timeout))
	c.wg.Add(1)
	utils.GoSafe(func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.runWithTimeout(ctx, fn, timeout)
			case <-ctx.Done():
				c.logger.Info("Ticker handler stopping due to context cancellation", logger.StringField("name", name))
				return
			case <-c.stopChan:
				c.logger.Info("Ticker handler stopping", logger.StringField("name", name))
				return
			}
		}
	})
}

func (c *RedisConsumer) runWithTimeout(ctx context.Context, fn func(ctx context.Context), timeout time.Duration) {
	if timeout <= 0 {
		fn(ctx)
		return
	}
	ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	fn(ctxTimeout)
}

// Stop gracefully shuts down the consumer and waits for running handlers.
func (c *RedisConsumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
	c.wg.Wait()
	c.logger.Info("Redis consumer stopped")
}
