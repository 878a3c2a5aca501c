package tensor

import "fmt"

// Axis positions within a Shape.
const (
	AxisSamples = iota
	AxisMaps
	AxisHeight
	AxisWidth

	// Rank is the number of dimensions of every tensor.
	Rank
)

// Shape represents the dimensions of a tensor: samples, maps, height, width.
type Shape []int

// NewShape builds a Shape from its four dimensions.
func NewShape(samples, maps, height, width int) Shape {
	return Shape{samples, maps, height, width}
}

// NumElements returns the total number of elements in the tensor.
// An empty shape has no elements.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has Rank dimensions, all >= 0.
func (s Shape) Validate() error {
	if len(s) != Rank {
		return fmt.Errorf("invalid rank %d (must be %d)", len(s), Rank)
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// SampleShapeEqual reports whether two shapes agree on maps, height and width.
// The sample count is ignored.
func (s Shape) SampleShapeEqual(other Shape) bool {
	if len(s) != Rank || len(other) != Rank {
		return false
	}
	return s[AxisMaps] == other[AxisMaps] &&
		s[AxisHeight] == other[AxisHeight] &&
		s[AxisWidth] == other[AxisWidth]
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as "samples×maps×height×width".
func (s Shape) String() string {
	if len(s) != Rank {
		return fmt.Sprintf("%v", []int(s))
	}
	return fmt.Sprintf("%d×%d×%d×%d", s[AxisSamples], s[AxisMaps], s[AxisHeight], s[AxisWidth])
}
