package domain

import "fmt"

// ValidationError reports a malformed numeric value reaching the
// normalizer. It is not recoverable locally; callers surface it.
type ValidationError struct {
	Field string
	Value int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %d for %q: must be non-negative", e.Value, e.Field)
}
