package dto

import "time"

// EnqueueJobResponse is returned when an analysis is queued for the worker.
type EnqueueJobResponse struct {
	Success bool   `json:"success"`
	JobID   string `json:"jobId"`
}

// StreamAnalysisRequest is the payload published on the analysis request stream.
type StreamAnalysisRequest struct {
	JobID      string    `json:"jobId"`
	Text       string    `json:"text"`
	Context    string    `json:"context,omitempty"`
	Task       string    `json:"task,omitempty"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

// StreamAnalysisResult is the payload the worker publishes on the result stream.
type StreamAnalysisResult struct {
	JobID       string      `json:"jobId"`
	Success     bool        `json:"success"`
	Task        string      `json:"task,omitempty"`
	Data        interface{} `json:"data,omitempty"`
	Error       string      `json:"error,omitempty"`
	CompletedAt time.Time   `json:"completedAt"`
}
