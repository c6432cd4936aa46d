package config

import (
	"time"

	"golang-warga-nlp/internal/entity"
	"golang-warga-nlp/pkg/config"
)

// NLP holds settings for the analysis pipeline.
type NLP struct {
	SummarySentences int `mapstructure:"summary_sentences"`
	MaxTextLength    int `mapstructure:"max_text_length"` // in characters, 0 disables the check
}

// RateLimit holds the per-IP limits applied to /api routes.
type RateLimit struct {
	Enabled           bool          `mapstructure:"enabled"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	Burst             int           `mapstructure:"burst"`
	ExpiresIn         time.Duration `mapstructure:"expires_in"`
}

// Crawler holds the data-source crawler configuration.
type Crawler struct {
	Timeout   time.Duration       `mapstructure:"timeout"`
	CacheTTL  time.Duration       `mapstructure:"cache_ttl"`
	UserAgent string              `mapstructure:"user_agent"`
	Sources   []entity.DataSource `mapstructure:"sources"`
}

// Worker holds the Redis stream consumer configuration.
type Worker struct {
	ConsumerName       string        `mapstructure:"consumer_name"`
	BlockDuration      time.Duration `mapstructure:"block_duration"`
	TaskTimeout        time.Duration `mapstructure:"task_timeout"`
	ResultStreamMaxLen int64         `mapstructure:"result_stream_max_len"`
	RetryInterval      time.Duration `mapstructure:"retry_interval"`
	MaxIdle            time.Duration `mapstructure:"max_idle"`
}

// Config holds the full configuration for the NLP service and worker.
type Config struct {
	App       config.App    `mapstructure:"app"`
	Logger    config.Logger `mapstructure:"logger"`
	Redis     config.Redis  `mapstructure:"redis"`
	API       config.API    `mapstructure:"api"`
	NLP       NLP           `mapstructure:"nlp"`
	RateLimit RateLimit     `mapstructure:"rate_limit"`
	Crawler   Crawler       `mapstructure:"crawler"`
	Worker    Worker        `mapstructure:"worker"`
}

var defaults = map[string]interface{}{
	"app.name":                       "warga-nlp-service",
	"app.env":                        "development",
	"app.version":                    "1.0.0",
	"logger.level":                   "info",
	"logger.encoding":                "json",
	"redis.enabled":                  false,
	"redis.host":                     "localhost",
	"redis.port":                     6379,
	"redis.pool_size":                10,
	"redis.stream_max_len":           10000,
	"api.port":                       8080,
	"nlp.summary_sentences":          3,
	"nlp.max_text_length":            50000,
	"rate_limit.enabled":             true,
	"rate_limit.requests_per_minute": 60,
	"rate_limit.burst":               10,
	"rate_limit.expires_in":          "3m",
	"crawler.timeout":                "15s",
	"crawler.cache_ttl":              "5m",
	"crawler.user_agent":             "warga-nlp-crawler/1.0",
	"worker.consumer_name":           "analysis-worker",
	"worker.block_duration":          "2s",
	"worker.task_timeout":            "30s",
	"worker.result_stream_max_len":   10000,
	"worker.retry_interval":          "30s",
	"worker.max_idle":                "1m",
}

// Load loads the service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.LoadWithDefaults(path, defaults, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
