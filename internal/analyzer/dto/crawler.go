package dto

import (
	"time"

	"golang-warga-nlp/internal/entity"
)

// CrawlerQuery holds the query parameters of GET /api/crawler.
type CrawlerQuery struct {
	Action  string `query:"action"`
	Source  string `query:"source"`
	Context string `query:"context"`
}

// SourceListData lists the crawlable sources.
type SourceListData struct {
	AvailableSources []entity.DataSource `json:"availableSources"`
}

// SourceCrawlData is the result of crawling a single source.
type SourceCrawlData struct {
	Source    string                `json:"source"`
	Content   string                `json:"content"`
	Metadata  entity.SourceMetadata `json:"metadata"`
	CrawledAt time.Time             `json:"crawledAt"`
}

// AggregateCrawlData is the result of crawling every source.
type AggregateCrawlData struct {
	Sources         []string                `json:"sources"`
	CombinedContent string                  `json:"combinedContent"`
	SourceMetadata  []entity.SourceMetadata `json:"sourceMetadata"`
	TotalDocuments  int                     `json:"totalDocuments"`
	CrawledAt       time.Time               `json:"crawledAt"`
}

// ExtractedInfo buckets crawled lines by topic.
type ExtractedInfo struct {
	FinancialData      []string `json:"financialData"`
	SecurityData       []string `json:"securityData"`
	AdministrationData []string `json:"administrationData"`
	NewsData           []string `json:"newsData"`
}

// ExtractData is the result of the "extract" crawler action.
type ExtractData struct {
	ExtractedData ExtractedInfo `json:"extractedData"`
	ExtractedAt   time.Time     `json:"extractedAt"`
}

// CrawlAnalysisData is the result of the "analyze" crawler action.
type CrawlAnalysisData struct {
	Sources    []string              `json:"sources"`
	Context    string                `json:"context"`
	Analysis   entity.AnalysisResult `json:"analysis"`
	AnalyzedAt time.Time             `json:"analyzedAt"`
}

// CrawlReportRequest is the body of POST /api/crawler. An empty list crawls every source.
type CrawlReportRequest struct {
	Sources []string `json:"sources" example:"keuangan,keamanan"`
}

// CrawlReportData aggregates the requested sources and buckets their lines.
type CrawlReportData struct {
	Sources         []string                `json:"sources"`
	TotalDocuments  int                     `json:"totalDocuments"`
	CombinedContent string                  `json:"combinedContent"`
	ExtractedInfo   ExtractedInfo           `json:"extractedInfo"`
	SourceMetadata  []entity.SourceMetadata `json:"sourceMetadata"`
	CrawledAt       time.Time               `json:"crawledAt"`
}

// CrawlerResponse is the success envelope of GET /api/crawler.
type CrawlerResponse struct {
	Success   bool        `json:"success"`
	Action    string      `json:"action"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}
