// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor type used by tensorstream corpora.
//
// A Tensor is a dense float32 array of shape samples×maps×height×width.
// Training loops allocate multi-sample tensors as batch buffers and let the
// dataset copy individual samples into them with CopySample.
//
// Example:
//
//	batch, _ := tensor.New(8, 3, 375, 1242)
//	sample, _ := tensor.New(1, 3, 375, 1242)
//	if err := tensor.CopySample(sample, 0, batch, 5); err != nil {
//	    log.Fatal(err)
//	}
package tensor

import (
	"github.com/born-ml/tensorstream/internal/tensor"
)

// Tensor is a dense float32 tensor of shape samples×maps×height×width.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor: samples, maps, height, width.
type Shape = tensor.Shape

// Errors returned by CopySample.
var (
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrSampleOutOfRange = tensor.ErrSampleOutOfRange
)

// New allocates a zero-filled tensor.
func New(samples, maps, height, width int) (*Tensor, error) {
	return tensor.New(samples, maps, height, width)
}

// FromSlice wraps data in a tensor of the given shape without copying.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// NewShape builds a Shape from its four dimensions.
func NewShape(samples, maps, height, width int) Shape {
	return tensor.NewShape(samples, maps, height, width)
}

// CopySample copies sample srcSample of src into sample dstSample of dst.
func CopySample(src *Tensor, srcSample int, dst *Tensor, dstSample int) error {
	return tensor.CopySample(src, srcSample, dst, dstSample)
}
