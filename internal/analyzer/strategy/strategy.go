package strategy

import (
	"context"

	"golang-warga-nlp/internal/entity"
)

// Document is the input handed to a task strategy.
type Document struct {
	Text    string
	Context entity.Context
}

// TaskStrategy runs one analysis task over a document.
type TaskStrategy interface {
	Execute(ctx context.Context, doc Document) (interface{}, error)
	GetType() entity.Task
}
