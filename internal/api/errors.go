package api

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse indicates the model returned no text content.
var ErrEmptyResponse = errors.New("empty response from model")

// GenerationError reports a failure of the completion capability:
// transport errors, authentication failures, timeouts, or an empty response.
type GenerationError struct {
	// Op names the completion call that failed, e.g. "plan" or "specialist:Research".
	Op string
	// Err is the underlying cause.
	Err error
}

func (e *GenerationError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("generation failed: %v", e.Err)
	}
	return fmt.Sprintf("generation failed (%s): %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsGenerationError reports whether any error in err's chain is a GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
