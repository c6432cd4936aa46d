package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"golang-warga-nlp/internal/analyzer/config"
	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/entity"
	"golang-warga-nlp/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRealAnalysis() AnalysisService {
	cfg := &config.Config{NLP: config.NLP{SummarySentences: 3, MaxTextLength: 1000}}
	return NewAnalysisService(cfg, logger.NewNop(), DefaultStrategies(3))
}

func TestBuildResult_Success(t *testing.T) {
	payload := `{"jobId":"job-1","text":"Warga mengeluhkan jalan rusak dan banjir","task":"sentiment"}`

	result, err := buildResult(context.Background(), newRealAnalysis(), payload, "1-0")
	require.NoError(t, err)

	assert.Equal(t, "job-1", result.JobID)
	assert.True(t, result.Success)
	assert.Equal(t, "sentiment", result.Task)
	assert.Empty(t, result.Error)
	assert.False(t, result.CompletedAt.IsZero())

	data, ok := result.Data.(dto.SentimentData)
	require.True(t, ok)
	assert.Equal(t, entity.SentimentNegative, data.Sentiment.Label)
}

func TestBuildResult_AnalysisErrorIsReported(t *testing.T) {
	result, err := buildResult(context.Background(), newRealAnalysis(), `{"jobId":"job-2","text":""}`, "1-0")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Missing required field: text", result.Error)
	assert.Nil(t, result.Data)

	result, err = buildResult(context.Background(), newRealAnalysis(), `{"jobId":"job-3","text":"`+strings.Repeat("a", 1001)+`"}`, "1-0")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ErrTextTooLong.Error(), result.Error)
}

func TestBuildResult_MalformedPayload(t *testing.T) {
	_, err := buildResult(context.Background(), newRealAnalysis(), `{"jobId":`, "1-0")
	assert.Error(t, err)
}

func TestBuildResult_FallsBackToMessageID(t *testing.T) {
	result, err := buildResult(context.Background(), newRealAnalysis(), `{"text":"Halo warga"}`, "1700000000000-0")
	require.NoError(t, err)

	assert.Equal(t, "1700000000000-0", result.JobID)
	assert.Equal(t, "full", result.Task)

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"conclusion"`)
	assert.NotContains(t, string(raw), `"error"`)
}

func TestJobService_EnqueueValidatesBeforePublishing(t *testing.T) {
	cfg := &config.Config{NLP: config.NLP{MaxTextLength: 5}}
	svc := NewJobService(cfg, logger.NewNop(), nil)

	_, err := svc.Enqueue(context.Background(), &dto.AnalyzeRequest{})
	assert.ErrorIs(t, err, ErrMissingText)

	_, err = svc.Enqueue(context.Background(), &dto.AnalyzeRequest{Text: "terlalu panjang"})
	assert.ErrorIs(t, err, ErrTextTooLong)
}
