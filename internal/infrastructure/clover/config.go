package clover

import (
	"errors"
	"time"
)

// Config holds settings for the Clover REST API client. Base URLs come
// from configuration so the same binary can target sandbox or production.
type Config struct {
	// BaseURL is the inventory API endpoint, e.g. https://apisandbox.dev.clover.com
	BaseURL string
	// UploadBaseURL is the media upload endpoint (oloplatform host)
	UploadBaseURL string
	// Timeout is the per-request HTTP timeout
	Timeout time.Duration
	// TotalFallback is reported as the listing total when the platform
	// response carries none
	TotalFallback int64
	// CategoryPageSize is the page size used when scanning categories for
	// a name match
	CategoryPageSize int
}

const (
	// SandboxBaseURL is the Clover sandbox inventory API endpoint
	SandboxBaseURL = "https://apisandbox.dev.clover.com"
	// SandboxUploadBaseURL is the Clover sandbox media upload endpoint
	SandboxUploadBaseURL = "https://sandbox.dev.clover.com"
)

// ErrConfigMissingBaseURL is returned when no API base URL is configured
var ErrConfigMissingBaseURL = errors.New("clover: base URL is required")

// NewSandboxConfig creates a configuration targeting the Clover sandbox
func NewSandboxConfig() *Config {
	return &Config{
		BaseURL:          SandboxBaseURL,
		UploadBaseURL:    SandboxUploadBaseURL,
		Timeout:          15 * time.Second,
		TotalFallback:    1000,
		CategoryPageSize: 100,
	}
}

// Validate validates the configuration and fills optional fields
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.UploadBaseURL == "" {
		c.UploadBaseURL = c.BaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.TotalFallback <= 0 {
		c.TotalFallback = 1000
	}
	if c.CategoryPageSize <= 0 {
		c.CategoryPageSize = 100
	}
	return nil
}
