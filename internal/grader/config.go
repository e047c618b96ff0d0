package grader

import "time"

// Config holds grading orchestrator configuration.
type Config struct {
	// GroupSize is the maximum number of items sent in one completion
	// request. Observed useful range: 4-10.
	GroupSize int

	// MaxConcurrent bounds the number of in-flight completion requests.
	MaxConcurrent int

	// RequestTimeout is the deadline for a single group's request,
	// including its retries.
	RequestTimeout time.Duration

	// MaxTokens is the response token budget per group request.
	MaxTokens int

	// Temperature for grading requests. 0 keeps scoring deterministic.
	Temperature float64

	// MockScoreRatio is the fraction of each item's points awarded in
	// mock mode (no provider configured).
	MockScoreRatio float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		GroupSize:      8,
		MaxConcurrent:  4,
		RequestTimeout: 60 * time.Second,
		MaxTokens:      2048,
		Temperature:    0,
		MockScoreRatio: 0.8,
	}
}
