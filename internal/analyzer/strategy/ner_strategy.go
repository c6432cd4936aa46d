package strategy

import (
	"context"

	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/entity"
	"golang-warga-nlp/pkg/nlp"
)

// NERStrategy returns the pattern-based entities only.
type NERStrategy struct{}

// NewNERStrategy creates a NERStrategy.
func NewNERStrategy() TaskStrategy {
	return &NERStrategy{}
}

// GetType returns the task this strategy handles.
func (s *NERStrategy) GetType() entity.Task {
	return entity.TaskNER
}

// Execute extracts entities from the raw document text.
func (s *NERStrategy) Execute(ctx context.Context, doc Document) (interface{}, error) {
	return dto.EntitiesData{Entities: nlp.ExtractEntities(doc.Text)}, nil
}
