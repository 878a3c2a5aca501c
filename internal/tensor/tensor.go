// Package tensor provides the dense float32 tensor used for corpus samples.
package tensor

import (
	"errors"
	"fmt"
)

// Errors returned by CopySample.
var (
	ErrShapeMismatch    = errors.New("tensor shapes do not match")
	ErrSampleOutOfRange = errors.New("sample index out of range")
)

// Tensor is an owned float32 array of shape samples×maps×height×width.
//
// Elements are stored row-major: the element at (x, y, map, sample) lives at
// ((sample*maps+map)*height+y)*width+x. The zero value is an empty tensor.
type Tensor struct {
	shape  Shape
	stride []int
	data   []float32
}

// New allocates a zero-filled tensor.
func New(samples, maps, height, width int) (*Tensor, error) {
	return NewFromShape(NewShape(samples, maps, height, width))
}

// NewFromShape allocates a zero-filled tensor of the given shape.
func NewFromShape(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float32, shape.NumElements()),
	}, nil
}

// FromSlice wraps data in a tensor of the given shape without copying.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %s (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   data,
	}, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

func (t *Tensor) dim(axis int) int {
	if len(t.shape) != Rank {
		return 0
	}
	return t.shape[axis]
}

// Samples returns the sample count.
func (t *Tensor) Samples() int { return t.dim(AxisSamples) }

// Maps returns the channel count.
func (t *Tensor) Maps() int { return t.dim(AxisMaps) }

// Height returns the spatial height.
func (t *Tensor) Height() int { return t.dim(AxisHeight) }

// Width returns the spatial width.
func (t *Tensor) Width() int { return t.dim(AxisWidth) }

// Data returns the underlying element slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (t *Tensor) Data() []float32 {
	return t.data
}

// Index returns the flat offset of element (x, y, m, s).
// Coordinates are not bounds-checked.
func (t *Tensor) Index(x, y, m, s int) int {
	return s*t.stride[AxisSamples] + m*t.stride[AxisMaps] + y*t.stride[AxisHeight] + x
}

// At returns the element at (x, y, m, s).
func (t *Tensor) At(x, y, m, s int) float32 {
	return t.data[t.Index(x, y, m, s)]
}

// Set stores v at (x, y, m, s).
func (t *Tensor) Set(x, y, m, s int, v float32) {
	t.data[t.Index(x, y, m, s)] = v
}

// Sample returns the contiguous elements of sample s.
func (t *Tensor) Sample(s int) []float32 {
	n := t.stride[AxisSamples]
	return t.data[s*n : (s+1)*n]
}

// String returns a short description of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%s)", t.shape)
}

// CopySample copies sample srcSample of src into sample dstSample of dst.
//
// Both tensors must agree on maps, height and width, and both sample indices
// must be in range. A nil tensor is a shape mismatch. Nothing is written when
// an error is returned.
func CopySample(src *Tensor, srcSample int, dst *Tensor, dstSample int) error {
	if src == nil || dst == nil {
		return fmt.Errorf("%w: nil tensor", ErrShapeMismatch)
	}
	if !src.shape.SampleShapeEqual(dst.shape) {
		return fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, src.shape, dst.shape)
	}
	if srcSample < 0 || srcSample >= src.Samples() {
		return fmt.Errorf("%w: source sample %d of %d", ErrSampleOutOfRange, srcSample, src.Samples())
	}
	if dstSample < 0 || dstSample >= dst.Samples() {
		return fmt.Errorf("%w: destination sample %d of %d", ErrSampleOutOfRange, dstSample, dst.Samples())
	}
	copy(dst.Sample(dstSample), src.Sample(srcSample))
	return nil
}
