// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides the public API for loading tensor-stream corpora.
//
// This package wraps the internal dataset implementation and exports a clean
// public API for building a corpus from record streams or configuration files
// and for fetching samples by index.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/tensorstream/dataset"
//	    "github.com/born-ml/tensorstream/tensor"
//	)
//
//	d, err := dataset.FromConfiguration("kitti.set")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, _ := tensor.New(1, d.InputMaps(), d.Height(), d.Width())
//	label, _ := tensor.New(1, d.LabelMaps(), d.Height(), d.Width())
//	weight, _ := tensor.New(1, 1, d.Height(), d.Width())
//	if err := d.TrainingSample(data, label, weight, 0, 42); err != nil {
//	    // skip the sample
//	}
package dataset

import (
	"io"

	"github.com/gomlx/gomlx/pkg/core/tensors"

	"github.com/born-ml/tensorstream/internal/dataset"
	"github.com/born-ml/tensorstream/tensor"
)

// TensorStreamDataset is an immutable corpus of data/label pairs.
type TensorStreamDataset = dataset.TensorStreamDataset

// Options configures corpus construction.
type Options = dataset.Options

// Configuration describes where a corpus lives and how to load it.
type Configuration = dataset.Configuration

// Batch holds destination tensors for a fixed number of samples.
type Batch = dataset.Batch

// WeightFunc maps a pixel coordinate to its error weight.
type WeightFunc = dataset.WeightFunc

// ErrorFunction selects one of the built-in weighting strategies.
type ErrorFunction = dataset.ErrorFunction

// Built-in weighting strategies.
const (
	ErrorUniform = dataset.ErrorUniform
	ErrorKITTI   = dataset.ErrorKITTI
)

// KITTIHorizonRow is the first image row weighted by KITTIWeight.
const KITTIHorizonRow = dataset.KITTIHorizonRow

// Manifest is the YAML form of a Configuration.
type Manifest = dataset.Manifest

// Partition selects the training or testing half of the corpus.
type Partition = dataset.Partition

// Corpus partitions.
const (
	PartitionTraining = dataset.PartitionTraining
	PartitionTesting  = dataset.PartitionTesting
)

// ChannelStats summarizes one input map over a partition.
type ChannelStats = dataset.ChannelStats

// Task identifies the learning problem a dataset serves.
type Task = dataset.Task

// TaskSemanticSegmentation is the task of every tensor-stream corpus.
const TaskSemanticSegmentation = dataset.TaskSemanticSegmentation

// Error types.
type (
	FormatError = dataset.FormatError
	ShapeError  = dataset.ShapeError
)

// Common errors.
var (
	ErrOddRecordCount      = dataset.ErrOddRecordCount
	ErrIndexOutOfRange     = dataset.ErrIndexOutOfRange
	ErrInvalidDirective    = dataset.ErrInvalidDirective
	ErrMissingTrainingPath = dataset.ErrMissingTrainingPath
	ErrStreamChanged       = dataset.ErrStreamChanged
	ErrNilStream           = dataset.ErrNilStream
)

// New builds a corpus from a training and a testing record stream.
// testing may be nil when there is no testing data.
func New(training, testing io.ReadSeeker, opts Options) (*TensorStreamDataset, error) {
	return dataset.New(training, testing, opts)
}

// FromConfiguration loads a configuration file and opens its dataset.
//
// Files ending in .yaml or .yml are read as YAML manifests; anything else
// as a line-oriented directive file.
func FromConfiguration(path string) (*TensorStreamDataset, error) {
	return dataset.FromConfiguration(path)
}

// ParseConfiguration reads a line-oriented directive stream.
func ParseConfiguration(r io.Reader) (*Configuration, error) {
	return dataset.ParseConfiguration(r)
}

// ParseManifest reads a YAML manifest. Unknown keys are rejected.
func ParseManifest(r io.Reader) (*Configuration, error) {
	return dataset.ParseManifest(r)
}

// LoadConfigFile reads a directive file or YAML manifest and resolves its
// corpus paths against the file's directory.
func LoadConfigFile(path string) (*Configuration, error) {
	return dataset.LoadConfigFile(path)
}

// ParseErrorFunction resolves a weighting strategy by name.
func ParseErrorFunction(name string) (ErrorFunction, bool) {
	return dataset.ParseErrorFunction(name)
}

// ToGomlx copies t into a new GoMLX tensor with the same dimensions.
func ToGomlx(t *tensor.Tensor) *tensors.Tensor {
	return dataset.ToGomlx(t)
}

// NewBatch allocates a batch of size samples shaped after d.
func NewBatch(d *TensorStreamDataset, size int) (*Batch, error) {
	return dataset.NewBatch(d, size)
}

// UniformWeight weights every pixel equally.
func UniformWeight(x, y int) float32 {
	return dataset.UniformWeight(x, y)
}

// KITTIWeight ignores errors in the upper band of KITTI road frames.
func KITTIWeight(x, y int) float32 {
	return dataset.KITTIWeight(x, y)
}
