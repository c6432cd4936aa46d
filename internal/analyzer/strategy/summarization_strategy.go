package strategy

import (
	"context"

	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/entity"
	"golang-warga-nlp/pkg/nlp"
)

// SummarizationStrategy returns the extractive summary only.
type SummarizationStrategy struct {
	numSentences int
}

// NewSummarizationStrategy creates a SummarizationStrategy selecting numSentences sentences.
func NewSummarizationStrategy(numSentences int) TaskStrategy {
	return &SummarizationStrategy{numSentences: numSentences}
}

// GetType returns the task this strategy handles.
func (s *SummarizationStrategy) GetType() entity.Task {
	return entity.TaskSummarization
}

// Execute summarizes the document.
func (s *SummarizationStrategy) Execute(ctx context.Context, doc Document) (interface{}, error) {
	return dto.SummarizationData{Summary: nlp.Summarize(doc.Text, s.numSentences)}, nil
}
