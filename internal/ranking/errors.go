package ranking

import "fmt"

// ScoringError represents an internal failure while computing a category score.
// No partial result accompanies it.
type ScoringError struct {
	Category string
	Message  string
	Cause    error
}

func (e *ScoringError) Error() string {
	prefix := "scoring failed"
	if e.Category != "" {
		prefix = fmt.Sprintf("scoring failed in %s", e.Category)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
