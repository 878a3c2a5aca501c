package serialization

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/tensorstream/internal/tensor"
)

// StreamWriter appends records to a tensor stream.
type StreamWriter struct {
	w       *bufio.Writer
	file    *os.File // Set when the writer owns a file
	records int
	closed  bool
}

// NewStreamWriter creates a buffered writer over w.
// The caller keeps ownership of w; Close only flushes.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: bufio.NewWriter(w)}
}

// CreateStreamFile creates (or truncates) a stream file at path.
func CreateStreamFile(path string) (*StreamWriter, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for corpus writing
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return &StreamWriter{
		w:    bufio.NewWriter(file),
		file: file,
	}, nil
}

// Write appends t as one record.
// A tensor with no elements would encode as the end-of-records sentinel and
// is rejected with ErrEmptyRecord; use WriteEnd for that.
func (w *StreamWriter) Write(t *tensor.Tensor) error {
	if w.closed {
		return ErrStreamClosed
	}
	if t == nil || t.NumElements() == 0 {
		return fmt.Errorf("record %d: %w", w.records, ErrEmptyRecord)
	}

	h := headerFor(t)
	if err := ValidateRecordHeader(h); err != nil {
		return fmt.Errorf("record %d: %w", w.records, err)
	}
	if err := binary.Write(w.w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("failed to write header of record %d: %w", w.records, err)
	}
	if err := binary.Write(w.w, binary.LittleEndian, t.Data()); err != nil {
		return fmt.Errorf("failed to write payload of record %d: %w", w.records, err)
	}
	w.records++
	return nil
}

// WritePair appends a data record followed by its label record.
// Neither record is written when either one is empty.
func (w *StreamWriter) WritePair(data, label *tensor.Tensor) error {
	for _, t := range []*tensor.Tensor{data, label} {
		if t == nil || t.NumElements() == 0 {
			return fmt.Errorf("pair at record %d: %w", w.records, ErrEmptyRecord)
		}
	}
	if err := w.Write(data); err != nil {
		return err
	}
	return w.Write(label)
}

// WriteEnd appends the zero-element end-of-records sentinel.
// Readers stop at the sentinel even if more bytes follow.
func (w *StreamWriter) WriteEnd() error {
	if w.closed {
		return ErrStreamClosed
	}
	if err := binary.Write(w.w, binary.LittleEndian, RecordHeader{}); err != nil {
		return fmt.Errorf("failed to write end marker: %w", err)
	}
	return nil
}

// Records returns the number of records written.
func (w *StreamWriter) Records() int {
	return w.records
}

// Flush writes buffered data to the underlying writer.
func (w *StreamWriter) Flush() error {
	if w.closed {
		return ErrStreamClosed
	}
	return w.w.Flush()
}

// Close flushes the writer and closes the file it owns, if any.
func (w *StreamWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.w.Flush()
	if w.file != nil {
		if closeErr := w.file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
