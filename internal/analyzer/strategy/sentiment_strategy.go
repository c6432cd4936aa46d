package strategy

import (
	"context"

	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/entity"
	"golang-warga-nlp/pkg/nlp"
)

// SentimentStrategy returns the lexicon sentiment only.
type SentimentStrategy struct{}

// NewSentimentStrategy creates a SentimentStrategy.
func NewSentimentStrategy() TaskStrategy {
	return &SentimentStrategy{}
}

// GetType returns the task this strategy handles.
func (s *SentimentStrategy) GetType() entity.Task {
	return entity.TaskSentiment
}

// Execute classifies the document sentiment.
func (s *SentimentStrategy) Execute(ctx context.Context, doc Document) (interface{}, error) {
	return dto.SentimentData{Sentiment: nlp.AnalyzeSentiment(doc.Text)}, nil
}
