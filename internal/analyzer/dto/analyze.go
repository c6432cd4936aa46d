package dto

import (
	"time"

	"golang-warga-nlp/internal/entity"
)

// AnalyzeRequest is the body of POST /api/nlp.
type AnalyzeRequest struct {
	Text    string `json:"text" example:"Kejadian pada 12 Februari 2026 di Jl. Mawar No 5, korban rugi Rp 500.000"`
	Context string `json:"context,omitempty" example:"keamanan"`
	Task    string `json:"task,omitempty" example:"full" enums:"summarization,sentiment,ner,full"`
}

// AnalysisOutput is what the analysis service returns for a request.
// Data holds exactly one of SummarizationData, SentimentData, EntitiesData or entity.AnalysisResult.
type AnalysisOutput struct {
	Task    entity.Task
	Context entity.Context
	Data    interface{}
}

// SummarizationData is the result of the "summarization" task.
type SummarizationData struct {
	Summary []string `json:"summary"`
}

// SentimentData is the result of the "sentiment" task.
type SentimentData struct {
	Sentiment entity.SentimentResult `json:"sentiment"`
}

// EntitiesData is the result of the "ner" task.
type EntitiesData struct {
	Entities []entity.Entity `json:"entities"`
}

// Methodology describes how results were produced.
type Methodology struct {
	Framework  string   `json:"framework"`
	Techniques []string `json:"techniques"`
}

// AnalyzeResponse is the success envelope of POST /api/nlp.
type AnalyzeResponse struct {
	Success     bool        `json:"success"`
	Data        interface{} `json:"data"`
	Methodology Methodology `json:"methodology"`
	Timestamp   time.Time   `json:"timestamp"`
}

// ServiceInfoResponse is the body of GET /api/nlp.
type ServiceInfoResponse struct {
	Success           bool        `json:"success"`
	Service           string      `json:"service"`
	Version           string      `json:"version"`
	SupportedTasks    []string    `json:"supportedTasks"`
	SupportedContexts []string    `json:"supportedContexts"`
	Language          string      `json:"language"`
	Methodology       Methodology `json:"methodology"`
	Timestamp         time.Time   `json:"timestamp"`
}
