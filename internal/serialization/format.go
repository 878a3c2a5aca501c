package serialization

import (
	"github.com/born-ml/tensorstream/internal/tensor"
)

// Format constants.
const (
	RecordHeaderSize = 32 // four uint64 dimensions
	ElementSize      = 4  // float32
)

// RecordHeader is the fixed-size prefix of every record.
// Field order matches the on-disk layout.
type RecordHeader struct {
	Samples uint64
	Width   uint64
	Height  uint64
	Maps    uint64
}

// Elements returns the number of values in the record payload.
// Call ValidateRecordHeader first; the product is not overflow-checked.
func (h RecordHeader) Elements() uint64 {
	return h.Samples * h.Width * h.Height * h.Maps
}

// PayloadSize returns the payload size in bytes.
func (h RecordHeader) PayloadSize() int64 {
	//nolint:gosec // G115: bounded by MaxRecordElements after validation
	return int64(h.Elements()) * ElementSize
}

// Shape converts the header into a tensor shape.
func (h RecordHeader) Shape() tensor.Shape {
	//nolint:gosec // G115: dimensions bounded by MaxDimension after validation
	return tensor.NewShape(int(h.Samples), int(h.Maps), int(h.Height), int(h.Width))
}

// headerFor builds the record header describing t.
func headerFor(t *tensor.Tensor) RecordHeader {
	//nolint:gosec // G115: tensor dimensions are non-negative
	return RecordHeader{
		Samples: uint64(t.Samples()),
		Width:   uint64(t.Width()),
		Height:  uint64(t.Height()),
		Maps:    uint64(t.Maps()),
	}
}
