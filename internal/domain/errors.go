package domain

import "fmt"

// ValidationError rejects a malformed request before it reaches the resolver
// or the reconciliation engine. It is distinct from storage failures so the
// HTTP layer can map the two to different status codes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
