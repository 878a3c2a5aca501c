package serialization

import (
	"fmt"
	"io"
)

// CountRecords counts the records in r without materializing them.
//
// Counting stops at end-of-data or at the first zero-element record, which is
// not counted. Payloads are discarded as they are read.
func CountRecords(r io.Reader) (int, error) {
	rr := NewRecordReader(r)
	for {
		h, err := rr.Skip()
		if err == io.EOF {
			return rr.Records(), nil
		}
		if err != nil {
			return rr.Records(), fmt.Errorf("scan: %w", err)
		}
		if h.Elements() == 0 {
			return rr.Records(), nil
		}
	}
}

// Rewind seeks s back to its start.
func Rewind(s io.Seeker) error {
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to start: %w", err)
	}
	return nil
}
