package colorsep

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colorsep/candidate"
	"github.com/hupe1980/colorsep/internal/resource"
)

var (
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoCandidates is returned when the ink limit leaves nothing to map to.
	ErrNoCandidates = errors.New("no candidate secondaries satisfy the ink limit")
)

// ConfigError reports an invalid setup value.
//
// errors.Is(err, ErrInvalidConfig) holds for every ConfigError. The original
// underlying error (if any) can be accessed via errors.Unwrap.
type ConfigError struct {
	Field  string
	Reason string
	cause  error
}

// NewConfigError returns a ConfigError for field.
func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

func (e *ConfigError) Unwrap() error { return e.cause }

// TransformError reports a failure to set up the colour transform.
type TransformError struct {
	Profile string
	cause   error
}

// NewTransformError wraps cause for profile.
func NewTransformError(profile string, cause error) *TransformError {
	return &TransformError{Profile: profile, cause: cause}
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("profile %q: %v", e.Profile, e.cause)
}

func (e *TransformError) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, candidate.ErrNoPrimaries):
		return &ConfigError{Field: "primaries", Reason: "at least one primary colour is required", cause: err}
	case errors.Is(err, candidate.ErrInvalidTarget):
		return &ConfigError{Field: "target", Reason: "must be a positive integer", cause: err}
	case errors.Is(err, candidate.ErrInvalidInkLimit):
		return &ConfigError{Field: "ink limit", Reason: "must be a non-negative number", cause: err}
	case errors.Is(err, candidate.ErrTooManyCombinations):
		return &ConfigError{Field: "target", Reason: "too many combinations for this many primaries", cause: err}
	case errors.Is(err, resource.ErrMemoryLimitExceeded):
		return &ConfigError{Field: "memory limit", Reason: err.Error(), cause: err}
	}
	return err
}
