package strategy

import (
	"context"
	"encoding/json"
	"testing"

	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const report = "Warga RT 04 melaporkan banjir setinggi lutut di Jalan Melati pada 12 Februari 2026. " +
	"Banjir merusak pos ronda dan membuat jalan utama macet sepanjang sore. " +
	"Petugas kebersihan segera membersihkan saluran air yang tersumbat sampah. " +
	"Kerugian warga diperkirakan mencapai Rp 2.500.000 untuk perbaikan pos. " +
	"Untuk bantuan hubungi ketua RT di 081234567890."

func TestStrategies_GetType(t *testing.T) {
	assert.Equal(t, entity.TaskSummarization, NewSummarizationStrategy(3).GetType())
	assert.Equal(t, entity.TaskSentiment, NewSentimentStrategy().GetType())
	assert.Equal(t, entity.TaskNER, NewNERStrategy().GetType())
	assert.Equal(t, entity.TaskFull, NewFullStrategy(3).GetType())
}

func TestSummarizationStrategy_Execute(t *testing.T) {
	out, err := NewSummarizationStrategy(2).Execute(context.Background(), Document{Text: report})
	require.NoError(t, err)

	data, ok := out.(dto.SummarizationData)
	require.True(t, ok)
	assert.Len(t, data.Summary, 2)
}

func TestSentimentStrategy_Execute(t *testing.T) {
	out, err := NewSentimentStrategy().Execute(context.Background(), Document{Text: report})
	require.NoError(t, err)

	data, ok := out.(dto.SentimentData)
	require.True(t, ok)
	assert.Equal(t, entity.SentimentNegative, data.Sentiment.Label)
	assert.Equal(t, data.Sentiment.Score, data.Sentiment.Confidence)
}

func TestNERStrategy_Execute(t *testing.T) {
	out, err := NewNERStrategy().Execute(context.Background(), Document{Text: report})
	require.NoError(t, err)

	data, ok := out.(dto.EntitiesData)
	require.True(t, ok)
	types := map[entity.EntityType]bool{}
	for _, e := range data.Entities {
		types[e.Type] = true
	}
	assert.True(t, types[entity.EntityDate])
	assert.True(t, types[entity.EntityMoney])
	assert.True(t, types[entity.EntityLocation])
	assert.True(t, types[entity.EntityPhone])
}

func TestFullStrategy_Execute(t *testing.T) {
	out, err := NewFullStrategy(3).Execute(context.Background(), Document{Text: report, Context: entity.ContextKeamanan})
	require.NoError(t, err)

	result, ok := out.(entity.AnalysisResult)
	require.True(t, ok)
	assert.Len(t, result.Summary, 3)
	assert.NotEmpty(t, result.Entities)
	assert.Contains(t, result.Conclusion, "Situasi keamanan lingkungan memerlukan perhatian bersama.")
	assert.GreaterOrEqual(t, result.WordCount, result.TokenCount)
	assert.Positive(t, result.TokenCount)
}

func TestFullStrategy_JSONKeys(t *testing.T) {
	out, err := NewFullStrategy(3).Execute(context.Background(), Document{Text: "Halo warga"})
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"summary", "sentiment", "entities", "conclusion", "wordCount", "tokenCount"} {
		assert.Contains(t, decoded, key)
	}
	assert.JSONEq(t, `[]`, string(decoded["summary"]))
	assert.JSONEq(t, `[]`, string(decoded["entities"]))
}
