package dataset

import (
	"fmt"

	"github.com/born-ml/tensorstream/internal/parallel"
	"github.com/born-ml/tensorstream/internal/tensor"
)

// Batch holds destination tensors for a fixed number of samples.
type Batch struct {
	Data    *tensor.Tensor // size × InputMaps × Height × Width
	Labels  *tensor.Tensor // size × LabelMaps × Height × Width
	Weights *tensor.Tensor // size × 1 × Height × Width
}

// NewBatch allocates a batch of size samples shaped after d.
func NewBatch(d *TensorStreamDataset, size int) (*Batch, error) {
	data, err := tensor.New(size, d.InputMaps(), d.Height(), d.Width())
	if err != nil {
		return nil, fmt.Errorf("data: %w", err)
	}
	labels, err := tensor.New(size, d.LabelMaps(), d.Height(), d.Width())
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	weights, err := tensor.New(size, 1, d.Height(), d.Width())
	if err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}
	return &Batch{Data: data, Labels: labels, Weights: weights}, nil
}

// Size returns the number of sample slots.
func (b *Batch) Size() int {
	return b.Data.Samples()
}

// LoadTraining fills slot i with training pair indices[i]. Large batches are
// filled on several goroutines; the first failing slot's error is returned.
func (b *Batch) LoadTraining(d *TensorStreamDataset, indices []int) error {
	return b.load(d.TrainingSample, indices)
}

// LoadTesting fills slot i with testing pair indices[i].
func (b *Batch) LoadTesting(d *TensorStreamDataset, indices []int) error {
	return b.load(d.TestingSample, indices)
}

type sampleFunc func(data, label, weight *tensor.Tensor, slot, index int) error

func (b *Batch) load(get sampleFunc, indices []int) error {
	if len(indices) > b.Size() {
		return fmt.Errorf("%d indices for a batch of %d", len(indices), b.Size())
	}
	// Slots occupy disjoint ranges of the destination tensors.
	return parallel.For(len(indices), func(slot int) error {
		if err := get(b.Data, b.Labels, b.Weights, slot, indices[slot]); err != nil {
			return fmt.Errorf("slot %d: %w", slot, err)
		}
		return nil
	}, parallel.DefaultConfig())
}
