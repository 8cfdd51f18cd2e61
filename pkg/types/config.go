package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound page fetches.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. The content-rendering fetch
	// uses double this value.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds settings for the arXiv fetch client.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`
}
