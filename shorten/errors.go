package shorten

import (
	"errors"
	"fmt"
)

// Sentinel errors for option decoding.
var (
	// ErrInvalidOptions indicates an options record could not be decoded.
	ErrInvalidOptions = errors.New("invalid shorten options")

	// ErrUnknownFormat indicates Decode was given an unsupported format.
	ErrUnknownFormat = errors.New("unknown options format")
)

// DecodeError wraps a decoder failure with the format it came from.
type DecodeError struct {
	Format Format // Format being decoded ("json", "yaml", "toml")
	Err    error  // Underlying decoder error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s options: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidOptions.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidOptions
}
