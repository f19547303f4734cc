// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "coauthor-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxResults is the number of articles fetched per category (default 300).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// PageSize is the number of articles requested per API call (default 100).
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// RequestInterval is the minimum spacing between API calls (default 3s).
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval" mapstructure:"request_interval"`

	// MaxRetries bounds retries on HTTP 429/503 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// AnalysisConfig holds settings for the sampling and analysis stages.
type AnalysisConfig struct {
	// SampleSize is the number of author records drawn from a snapshot
	// (default 50). Zero or negative analyzes the whole snapshot.
	SampleSize int `json:"sample_size" yaml:"sample_size" mapstructure:"sample_size"`

	// Seed makes sampling reproducible. Zero seeds from the clock.
	Seed uint64 `json:"seed" yaml:"seed" mapstructure:"seed"`

	// TopN caps the ranked charts (default 10).
	TopN int `json:"top_n" yaml:"top_n" mapstructure:"top_n"`
}

// ChartConfig holds terminal chart settings.
type ChartConfig struct {
	// Width is the chart width in columns. Zero uses the terminal width.
	Width int `json:"width" yaml:"width" mapstructure:"width"`

	// Height is the line-plot height in rows (default 12).
	Height int `json:"height" yaml:"height" mapstructure:"height"`
}

// LogConfig selects the diagnostic log level and format.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all stage configurations.
type Config struct {
	// DataDir holds the per-category snapshot files (default "author_data").
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// OutputDir receives rendered network files (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	Fetch    FetchConfig    `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis" mapstructure:"analysis"`
	Chart    ChartConfig    `json:"chart" yaml:"chart" mapstructure:"chart"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}
