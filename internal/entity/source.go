package entity

import "time"

// DataSource describes a crawlable collection of community documents.
type DataSource struct {
	ID            string   `json:"id" mapstructure:"id"`
	Name          string   `json:"name" mapstructure:"name"`
	Description   string   `json:"description" mapstructure:"description"`
	DocumentCount int      `json:"documentCount" mapstructure:"document_count"`
	SampleData    []string `json:"sampleData,omitempty" mapstructure:"sample_data"`
	FeedURL       string   `json:"feedUrl,omitempty" mapstructure:"feed_url"`
	PageURL       string   `json:"pageUrl,omitempty" mapstructure:"page_url"`
}

// SourceDocument is the content obtained by crawling one DataSource.
type SourceDocument struct {
	SourceID  string
	Lines     []string
	Metadata  SourceMetadata
	CrawledAt time.Time
}

// SourceMetadata is the public description attached to crawled content.
type SourceMetadata struct {
	Source        string    `json:"source"`
	Description   string    `json:"description"`
	DocumentCount int       `json:"documentCount"`
	LastCrawl     time.Time `json:"lastCrawl"`
}
