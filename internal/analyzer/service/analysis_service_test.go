package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang-warga-nlp/internal/analyzer/config"
	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/analyzer/strategy"
	"golang-warga-nlp/internal/entity"
	"golang-warga-nlp/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyStrategy struct {
	task  entity.Task
	calls int
	docs  []strategy.Document
	fn    func() (interface{}, error)
}

func (s *spyStrategy) GetType() entity.Task { return s.task }

func (s *spyStrategy) Execute(ctx context.Context, doc strategy.Document) (interface{}, error) {
	s.calls++
	s.docs = append(s.docs, doc)
	if s.fn != nil {
		return s.fn()
	}
	return string(s.task), nil
}

func testConfig() *config.Config {
	return &config.Config{NLP: config.NLP{SummarySentences: 3, MaxTextLength: 100}}
}

func newSpyService(spies ...*spyStrategy) AnalysisService {
	strategies := make([]strategy.TaskStrategy, 0, len(spies))
	for _, s := range spies {
		strategies = append(strategies, s)
	}
	return NewAnalysisService(testConfig(), logger.NewNop(), strategies)
}

func TestAnalyze_Validation(t *testing.T) {
	spy := &spyStrategy{task: entity.TaskFull}
	svc := newSpyService(spy)

	_, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{})
	assert.ErrorIs(t, err, ErrMissingText)

	_, err = svc.Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingText)

	_, err = svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: strings.Repeat("a", 101)})
	assert.ErrorIs(t, err, ErrTextTooLong)

	assert.Zero(t, spy.calls)
}

func TestAnalyze_MaxLengthCountsCharacters(t *testing.T) {
	spy := &spyStrategy{task: entity.TaskFull}
	svc := newSpyService(spy)

	_, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: strings.Repeat("é", 100)})
	require.NoError(t, err)
	assert.Equal(t, 1, spy.calls)
}

func TestAnalyze_DispatchesByTask(t *testing.T) {
	spies := []*spyStrategy{
		{task: entity.TaskSummarization},
		{task: entity.TaskSentiment},
		{task: entity.TaskNER},
		{task: entity.TaskFull},
	}
	svc := newSpyService(spies...)

	tests := []struct {
		task string
		want entity.Task
	}{
		{task: "summarization", want: entity.TaskSummarization},
		{task: "sentiment", want: entity.TaskSentiment},
		{task: "ner", want: entity.TaskNER},
		{task: "full", want: entity.TaskFull},
		{task: "", want: entity.TaskFull},
		{task: "classification", want: entity.TaskFull},
	}

	for _, tt := range tests {
		t.Run("task="+tt.task, func(t *testing.T) {
			out, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: "teks", Task: tt.task})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Task)
			assert.Equal(t, string(tt.want), out.Data)
		})
	}

	assert.Equal(t, 1, spies[0].calls)
	assert.Equal(t, 1, spies[1].calls)
	assert.Equal(t, 1, spies[2].calls)
	assert.Equal(t, 3, spies[3].calls)
}

func TestAnalyze_ContextDefaultsToGeneral(t *testing.T) {
	spy := &spyStrategy{task: entity.TaskFull}
	svc := newSpyService(spy)

	out, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: "teks"})
	require.NoError(t, err)
	assert.Equal(t, entity.ContextGeneral, out.Context)

	out, err = svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: "teks", Context: "keuangan"})
	require.NoError(t, err)
	assert.Equal(t, entity.ContextKeuangan, out.Context)

	require.Len(t, spy.docs, 2)
	assert.Equal(t, entity.ContextGeneral, spy.docs[0].Context)
	assert.Equal(t, entity.ContextKeuangan, spy.docs[1].Context)
}

func TestAnalyze_StrategyErrorIsInternal(t *testing.T) {
	cause := errors.New("boom")
	svc := newSpyService(&spyStrategy{task: entity.TaskFull, fn: func() (interface{}, error) { return nil, cause }})

	_, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: "teks"})

	var internal *InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, "NLP analysis failed", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAnalyze_PanicIsInternal(t *testing.T) {
	svc := newSpyService(&spyStrategy{task: entity.TaskFull, fn: func() (interface{}, error) { panic("index out of range") }})

	out, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: "teks"})

	assert.Nil(t, out)
	var internal *InternalError
	require.ErrorAs(t, err, &internal)
	assert.EqualError(t, internal.Cause, "index out of range")
}

func TestAnalyze_MissingStrategyIsInternal(t *testing.T) {
	svc := newSpyService(&spyStrategy{task: entity.TaskNER})

	_, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{Text: "teks", Task: "sentiment"})

	var internal *InternalError
	assert.ErrorAs(t, err, &internal)
}

func TestAnalyze_DefaultStrategies(t *testing.T) {
	svc := NewAnalysisService(testConfig(), logger.NewNop(), DefaultStrategies(3))

	out, err := svc.Analyze(context.Background(), &dto.AnalyzeRequest{
		Text: "Iuran warga bulan ini sebesar Rp 50.000 dan pengelolaan kas sangat transparan",
		Task: "ner",
	})
	require.NoError(t, err)

	data, ok := out.Data.(dto.EntitiesData)
	require.True(t, ok)
	require.Len(t, data.Entities, 1)
	assert.Equal(t, entity.EntityMoney, data.Entities[0].Type)
	assert.Equal(t, "Rp 50.000", data.Entities[0].Value)
}

func TestServiceInfo(t *testing.T) {
	cfg := testConfig()
	cfg.App.Version = "1.2.3"
	svc := NewAnalysisService(cfg, logger.NewNop(), nil)

	info := svc.ServiceInfo()

	assert.True(t, info.Success)
	assert.Equal(t, "1.2.3", info.Version)
	assert.ElementsMatch(t, []string{"summarization", "sentiment", "ner", "full"}, info.SupportedTasks)
	assert.Contains(t, info.SupportedContexts, "general")
	assert.NotEmpty(t, info.Methodology.Techniques)
}
