package consumer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"golang-warga-nlp/internal/analyzer/config"
	"golang-warga-nlp/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type countingStreamService struct {
	tasks   int32
	retries int32
}

func (s *countingStreamService) ProcessTask(ctx context.Context) {
	atomic.AddInt32(&s.tasks, 1)
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Millisecond):
	}
}

func (s *countingStreamService) ProcessRetries(ctx context.Context) {
	atomic.AddInt32(&s.retries, 1)
}

func TestRedisConsumer_StartAndStop(t *testing.T) {
	cfg := &config.Config{Worker: config.Worker{TaskTimeout: time.Second, RetryInterval: 10 * time.Millisecond}}
	svc := &countingStreamService{}
	c := NewRedisConsumer(cfg, svc, logger.NewNop())

	c.Start(context.Background())

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&svc.tasks) > 1 && atomic.LoadInt32(&svc.retries) > 0
	}, time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		c.Stop()
		c.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
}

func TestRedisConsumer_StopsOnContextCancel(t *testing.T) {
	cfg := &config.Config{Worker: config.Worker{TaskTimeout: time.Second}}
	svc := &countingStreamService{}
	c := NewRedisConsumer(cfg, svc, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
	assert.Zero(t, atomic.LoadInt32(&svc.retries))
}
