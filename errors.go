package matter

import (
	"errors"
	"fmt"
)

// ErrMissingEndBoundary is returned when a document opens with a start
// marker but no matching end marker occurs before end of text. A start
// marker that is absent altogether is not an error; that is the normal
// case for plain documents.
var ErrMissingEndBoundary = errors.New("could not find end marker")

// ErrUnknownHandler is returned when an explicitly requested handler
// name is not registered. It surfaces before any parsing is attempted.
var ErrUnknownHandler = errors.New("unknown handler")

// DecodeError wraps a failure from an underlying metadata codec while
// decoding front matter text. Metadata is never partially populated on
// failure.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s front matter: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a failure from an underlying metadata codec while
// serializing a metadata mapping, e.g. a value type the encoding does
// not support.
type EncodeError struct {
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encoding %s front matter: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
