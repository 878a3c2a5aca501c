package serialization

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/born-ml/tensorstream/internal/tensor"
)

// RecordReader decodes records sequentially from a stream.
type RecordReader struct {
	r       *bufio.Reader
	records int // Records consumed so far
}

// NewRecordReader creates a buffered record reader over r.
func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{r: bufio.NewReader(r)}
}

// Reset discards buffered state and switches to src.
// Use it after seeking the underlying stream.
func (rr *RecordReader) Reset(src io.Reader) {
	rr.r.Reset(src)
	rr.records = 0
}

// Records returns the number of records consumed so far.
func (rr *RecordReader) Records() int {
	return rr.records
}

// ReadHeader reads and validates the next record header.
// It returns io.EOF, unwrapped, when the stream ends cleanly before a header.
func (rr *RecordReader) ReadHeader() (RecordHeader, error) {
	var buf [RecordHeaderSize]byte
	if _, err := io.ReadFull(rr.r, buf[:]); err != nil {
		if err == io.EOF {
			return RecordHeader{}, io.EOF
		}
		return RecordHeader{}, fmt.Errorf("%w: header of record %d: %w", ErrTruncatedRecord, rr.records, err)
	}

	h := RecordHeader{
		Samples: binary.LittleEndian.Uint64(buf[0:8]),
		Width:   binary.LittleEndian.Uint64(buf[8:16]),
		Height:  binary.LittleEndian.Uint64(buf[16:24]),
		Maps:    binary.LittleEndian.Uint64(buf[24:32]),
	}
	if err := ValidateRecordHeader(h); err != nil {
		return RecordHeader{}, fmt.Errorf("record %d: %w", rr.records, err)
	}
	return h, nil
}

// Next decodes the next record into a new tensor.
//
// A record describing zero elements is the end-of-records sentinel and is
// returned as an empty tensor with a nil error.
func (rr *RecordReader) Next() (*tensor.Tensor, error) {
	h, err := rr.ReadHeader()
	if err != nil {
		return nil, err
	}
	if h.Elements() == 0 {
		return &tensor.Tensor{}, nil
	}

	data := make([]float32, h.Elements())
	if err := binary.Read(rr.r, binary.LittleEndian, data); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: payload of record %d: %w", ErrTruncatedRecord, rr.records, err)
	}

	t, err := tensor.FromSlice(data, h.Shape())
	if err != nil {
		return nil, fmt.Errorf("record %d: %w", rr.records, err)
	}
	rr.records++
	return t, nil
}

// Skip reads the next record header and discards its payload.
func (rr *RecordReader) Skip() (RecordHeader, error) {
	h, err := rr.ReadHeader()
	if err != nil {
		return RecordHeader{}, err
	}
	if h.Elements() == 0 {
		return h, nil
	}

	size := h.PayloadSize()
	if n, err := io.CopyN(io.Discard, rr.r, size); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return RecordHeader{}, fmt.Errorf("%w: payload of record %d: read %d of %d bytes: %w",
			ErrTruncatedRecord, rr.records, n, size, err)
	}
	rr.records++
	return h, nil
}
