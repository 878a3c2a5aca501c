package dataset

import (
	"fmt"
	"io"

	"k8s.io/klog/v2"

	"github.com/born-ml/tensorstream/internal/serialization"
	"github.com/born-ml/tensorstream/internal/tensor"
)

// Task identifies the learning problem a dataset serves.
type Task int

// Supported tasks.
const (
	TaskSemanticSegmentation Task = iota
)

// String returns a human-readable task name.
func (t Task) String() string {
	switch t {
	case TaskSemanticSegmentation:
		return "semantic segmentation"
	default:
		return "unknown"
	}
}

// Options configures corpus construction.
type Options struct {
	Classes       int        // Number of label classes
	ClassNames    []string   // Class names in label-map order
	ErrorFunction WeightFunc // Per-pixel error weight; nil selects UniformWeight
}

// TensorStreamDataset is an immutable corpus of data/label pairs.
//
// Pool indices [0, TrainingSamples()) hold the training partition and
// [TrainingSamples(), TrainingSamples()+TestingSamples()) the testing one.
// A constructed dataset is never modified, so concurrent sample reads are
// safe as long as callers do not share destination tensors.
type TensorStreamDataset struct {
	classes    int
	classNames []string

	trainingPairs int
	testingPairs  int

	data   []*tensor.Tensor
	labels []*tensor.Tensor

	width     int
	height    int
	inputMaps int
	labelMaps int

	errorCache *tensor.Tensor // Shared by every sample, never written after New
}

// New builds a corpus from a training and a testing record stream.
//
// Each stream is scanned to count its records, rewound and replayed into the
// pool. testing may be nil when there is no testing data. Both streams must
// hold an even number of records; otherwise New returns a *FormatError.
// Every data tensor must share the shape of the first one, and likewise for
// labels; otherwise New returns a *ShapeError.
//
// New does not take ownership of the streams.
func New(training, testing io.ReadSeeker, opts Options) (*TensorStreamDataset, error) {
	klog.V(1).Info("Instance created.")

	if training == nil {
		return nil, ErrNilStream
	}

	trainingRecords, err := countRecords("training", training)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("%d training tensors", trainingRecords/2)

	var testingRecords int
	if testing != nil {
		testingRecords, err = countRecords("testing", testing)
		if err != nil {
			return nil, err
		}
	}
	klog.V(1).Infof("%d testing tensors", testingRecords/2)

	d := &TensorStreamDataset{
		classes:       opts.Classes,
		classNames:    append([]string(nil), opts.ClassNames...),
		trainingPairs: trainingRecords / 2,
		testingPairs:  testingRecords / 2,
	}

	pairs := d.trainingPairs + d.testingPairs
	d.data = make([]*tensor.Tensor, pairs)
	d.labels = make([]*tensor.Tensor, pairs)

	if err := d.replay("training", training, 0, d.trainingPairs); err != nil {
		return nil, err
	}
	if testing != nil {
		if err := d.replay("testing", testing, d.trainingPairs, pairs); err != nil {
			return nil, err
		}
	}

	if err := d.checkShapes(); err != nil {
		return nil, err
	}

	if pairs > 0 {
		d.width = d.data[0].Width()
		d.height = d.data[0].Height()
		d.inputMaps = d.data[0].Maps()
		d.labelMaps = d.labels[0].Maps()
	}

	fn := opts.ErrorFunction
	if fn == nil {
		fn = UniformWeight
	}
	d.errorCache, err = buildErrorCache(d.width, d.height, fn)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("Error cache %dx%d", d.width, d.height)

	return d, nil
}

// countRecords rewinds s and counts its records, which must be even.
func countRecords(name string, s io.ReadSeeker) (int, error) {
	if err := serialization.Rewind(s); err != nil {
		return 0, fmt.Errorf("%s stream: %w", name, err)
	}
	n, err := serialization.CountRecords(s)
	if err != nil {
		return 0, fmt.Errorf("%s stream: %w", name, err)
	}
	if n%2 != 0 {
		return 0, &FormatError{Stream: name, Records: n}
	}
	return n, nil
}

// replay rewinds s and decodes pairs into pool slots [lo, hi).
func (d *TensorStreamDataset) replay(name string, s io.ReadSeeker, lo, hi int) error {
	if err := serialization.Rewind(s); err != nil {
		return fmt.Errorf("%s stream: %w", name, err)
	}

	rr := serialization.NewRecordReader(s)
	next := func() (*tensor.Tensor, error) {
		t, err := rr.Next()
		if err == io.EOF || (err == nil && t.NumElements() == 0) {
			return nil, fmt.Errorf("%s stream: %w: ended after %d records", name, ErrStreamChanged, rr.Records())
		}
		if err != nil {
			return nil, fmt.Errorf("%s stream: %w", name, err)
		}
		return t, nil
	}

	for i := lo; i < hi; i++ {
		data, err := next()
		if err != nil {
			return err
		}
		label, err := next()
		if err != nil {
			return err
		}
		d.data[i] = data
		d.labels[i] = label
	}
	return nil
}

// checkShapes verifies that every pair matches the first pair's shapes.
func (d *TensorStreamDataset) checkShapes() error {
	if len(d.data) == 0 {
		return nil
	}
	wantData := d.data[0].Shape()
	wantLabel := d.labels[0].Shape()
	for i := 1; i < len(d.data); i++ {
		if got := d.data[i].Shape(); !got.Equal(wantData) {
			return &ShapeError{Kind: "data", Index: i, Want: wantData, Got: got}
		}
		if got := d.labels[i].Shape(); !got.Equal(wantLabel) {
			return &ShapeError{Kind: "label", Index: i, Want: wantLabel, Got: got}
		}
	}
	return nil
}

// Task returns TaskSemanticSegmentation.
func (d *TensorStreamDataset) Task() Task {
	return TaskSemanticSegmentation
}

// Width returns the spatial width of every sample.
func (d *TensorStreamDataset) Width() int {
	return d.width
}

// Height returns the spatial height of every sample.
func (d *TensorStreamDataset) Height() int {
	return d.height
}

// InputMaps returns the channel count of data tensors.
func (d *TensorStreamDataset) InputMaps() int {
	return d.inputMaps
}

// LabelMaps returns the channel count of label tensors.
func (d *TensorStreamDataset) LabelMaps() int {
	return d.labelMaps
}

// Classes returns the number of label classes.
func (d *TensorStreamDataset) Classes() int {
	return d.classes
}

// ClassNames returns a copy of the class names.
func (d *TensorStreamDataset) ClassNames() []string {
	return append([]string(nil), d.classNames...)
}

// TrainingSamples returns the number of training pairs.
func (d *TensorStreamDataset) TrainingSamples() int {
	return d.trainingPairs
}

// TestingSamples returns the number of testing pairs.
func (d *TensorStreamDataset) TestingSamples() int {
	return d.testingPairs
}

// SupportsTesting reports whether the corpus has testing pairs.
func (d *TensorStreamDataset) SupportsTesting() bool {
	return d.testingPairs > 0
}

// ErrorCache returns the shared error-weight tensor (1×1×height×width).
// The tensor must not be modified.
func (d *TensorStreamDataset) ErrorCache() *tensor.Tensor {
	return d.errorCache
}

// TrainingSample copies training pair index and the error weights into
// sample slot of the destination tensors.
//
// It returns ErrIndexOutOfRange for an index outside [0, TrainingSamples())
// and a tensor copy error when a destination does not fit.
func (d *TensorStreamDataset) TrainingSample(data, label, weight *tensor.Tensor, slot, index int) error {
	if index < 0 || index >= d.trainingPairs {
		return fmt.Errorf("%w: training index %d, have %d", ErrIndexOutOfRange, index, d.trainingPairs)
	}
	return d.copyPair(index, data, label, weight, slot)
}

// TestingSample is TrainingSample for the testing partition.
func (d *TensorStreamDataset) TestingSample(data, label, weight *tensor.Tensor, slot, index int) error {
	if index < 0 || index >= d.testingPairs {
		return fmt.Errorf("%w: testing index %d, have %d", ErrIndexOutOfRange, index, d.testingPairs)
	}
	return d.copyPair(d.trainingPairs+index, data, label, weight, slot)
}

func (d *TensorStreamDataset) copyPair(pool int, data, label, weight *tensor.Tensor, slot int) error {
	if err := tensor.CopySample(d.data[pool], 0, data, slot); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if err := tensor.CopySample(d.labels[pool], 0, label, slot); err != nil {
		return fmt.Errorf("label: %w", err)
	}
	if err := tensor.CopySample(d.errorCache, 0, weight, slot); err != nil {
		return fmt.Errorf("weight: %w", err)
	}
	return nil
}
