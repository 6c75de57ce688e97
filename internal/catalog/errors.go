package catalog

import (
	"errors"
	"fmt"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// ValidationError reports a rejected field on a constructor or submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
