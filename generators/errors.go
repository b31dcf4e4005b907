package generators

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when generator options are rejected
	// before any value is drawn.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrGenerationFailed is returned when a generator gives up after its retry budget.
	ErrGenerationFailed = errors.New("generation failed")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

func failedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrGenerationFailed, fmt.Sprintf(format, args...))
}
