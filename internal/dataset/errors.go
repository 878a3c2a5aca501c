package dataset

import (
	"errors"
	"fmt"

	"github.com/born-ml/tensorstream/internal/tensor"
)

// Common errors.
var (
	ErrOddRecordCount      = errors.New("odd record count: data and label records must come in pairs")
	ErrIndexOutOfRange     = errors.New("sample index out of range")
	ErrStreamChanged       = errors.New("stream changed between scan and replay")
	ErrNilStream           = errors.New("training stream is nil")
	ErrInvalidDirective    = errors.New("invalid configuration directive")
	ErrMissingTrainingPath = errors.New("configuration has no training path")
)

// FormatError reports a stream whose record count breaks data/label pairing.
type FormatError struct {
	Stream  string // "training" or "testing"
	Records int    // Records found in the stream
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s stream: %d records: %v", e.Stream, e.Records, ErrOddRecordCount)
}

// Unwrap returns ErrOddRecordCount.
func (e *FormatError) Unwrap() error {
	return ErrOddRecordCount
}

// ShapeError reports a pool tensor whose shape differs from the first one of its kind.
type ShapeError struct {
	Kind  string // "data" or "label"
	Index int    // Pool index of the offending tensor
	Want  tensor.Shape
	Got   tensor.Shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s tensor %d: shape %s, expected %s", e.Kind, e.Index, e.Got, e.Want)
}

// Unwrap returns tensor.ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return tensor.ErrShapeMismatch
}
