package lloyd

import (
	"errors"
	"fmt"

	"github.com/hupe1980/lloyd/internal/kmeans"
)

var (
	// ErrInvalidArgument is matched by every error reporting a rejected argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentError identifies which argument was rejected and why.
//
// It matches ErrInvalidArgument via errors.Is.
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ArgumentError struct {
	Argument string
	Reason   string
	cause    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

func (e *ArgumentError) Unwrap() error { return e.cause }

func invalidArgument(argument, reason string) error {
	return &ArgumentError{Argument: argument, Reason: reason}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ae *kmeans.ArgumentError
	if errors.As(err, &ae) {
		return &ArgumentError{Argument: ae.Argument, Reason: ae.Reason, cause: err}
	}

	return err
}
