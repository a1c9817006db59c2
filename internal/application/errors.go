package application

import (
	"fmt"

	"sitemeta/internal/domain"
)

// PathError is re-exported for use by commands and adapters.
type PathError = domain.PathError

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
