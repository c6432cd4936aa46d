package strategy

import (
	"context"

	"golang-warga-nlp/internal/entity"
	"golang-warga-nlp/pkg/nlp"
)

// FullStrategy runs every stage and renders the conclusion.
type FullStrategy struct {
	numSentences int
}

// NewFullStrategy creates a FullStrategy whose summary has numSentences sentences.
func NewFullStrategy(numSentences int) TaskStrategy {
	return &FullStrategy{numSentences: numSentences}
}

// GetType returns the task this strategy handles.
func (s *FullStrategy) GetType() entity.Task {
	return entity.TaskFull
}

// Execute produces a complete entity.AnalysisResult.
func (s *FullStrategy) Execute(ctx context.Context, doc Document) (interface{}, error) {
	return Analyze(doc, s.numSentences), nil
}

// Analyze runs the full pipeline synchronously. It is shared with the crawler,
// which analyzes aggregated source content.
func Analyze(doc Document, numSentences int) entity.AnalysisResult {
	summary := nlp.Summarize(doc.Text, numSentences)
	sentiment := nlp.AnalyzeSentiment(doc.Text)
	entities := nlp.ExtractEntities(doc.Text)

	return entity.AnalysisResult{
		Summary:    summary,
		Sentiment:  sentiment,
		Entities:   entities,
		Conclusion: nlp.GenerateConclusion(summary, sentiment, entities, doc.Context),
		WordCount:  nlp.CountWords(doc.Text),
		TokenCount: len(nlp.Tokenize(doc.Text)),
	}
}
