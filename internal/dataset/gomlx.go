package dataset

import (
	"github.com/gomlx/gomlx/pkg/core/tensors"

	"github.com/born-ml/tensorstream/internal/tensor"
)

// ToGomlx copies t into a new GoMLX tensor with the same dimensions.
func ToGomlx(t *tensor.Tensor) *tensors.Tensor {
	return tensors.FromFlatDataAndDimensions(t.Data(), []int(t.Shape())...)
}

// ToGomlx converts the batch into GoMLX tensors for a training step.
func (b *Batch) ToGomlx() (data, labels, weights *tensors.Tensor) {
	return ToGomlx(b.Data), ToGomlx(b.Labels), ToGomlx(b.Weights)
}
