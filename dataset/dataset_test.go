package dataset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorstream/dataset"
	"github.com/born-ml/tensorstream/internal/serialization"
	"github.com/born-ml/tensorstream/tensor"
)

func TestPublicAPI(t *testing.T) {
	var buf bytes.Buffer
	w := serialization.NewStreamWriter(&buf)
	data, err := tensor.New(1, 3, 2, 2)
	require.NoError(t, err)
	label, err := tensor.New(1, 2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, w.WritePair(data, label))
	require.NoError(t, w.Close())

	d, err := dataset.New(bytes.NewReader(buf.Bytes()), nil, dataset.Options{
		Classes:       2,
		ClassNames:    []string{"road", "background"},
		ErrorFunction: dataset.KITTIWeight,
	})
	require.NoError(t, err)
	assert.Equal(t, dataset.TaskSemanticSegmentation, d.Task())
	assert.Equal(t, 1, d.TrainingSamples())
	assert.False(t, d.SupportsTesting())

	b, err := dataset.NewBatch(d, 1)
	require.NoError(t, err)
	require.NoError(t, b.LoadTraining(d, []int{0}))
	assert.ErrorIs(t, b.LoadTraining(d, []int{1}), dataset.ErrIndexOutOfRange)

	_, err = dataset.New(bytes.NewReader(buf.Bytes()[:0]), bytes.NewReader(buf.Bytes()[:buf.Len()/2]), dataset.Options{})
	assert.Error(t, err)
}

func TestPublicAPIExtras(t *testing.T) {
	_, err := dataset.New(nil, nil, dataset.Options{})
	assert.ErrorIs(t, err, dataset.ErrNilStream)

	cfg, err := dataset.ParseManifest(strings.NewReader("classes: [road]\nlocalized_error: kitti\ntraining: a.tensor\n"))
	require.NoError(t, err)
	assert.Equal(t, dataset.ErrorKITTI, cfg.ErrorFunction)

	fn, ok := dataset.ParseErrorFunction("default")
	assert.True(t, ok)
	assert.Equal(t, dataset.ErrorUniform, fn)
	assert.Equal(t, float32(0), dataset.KITTIWeight(0, dataset.KITTIHorizonRow-1))

	dir := t.TempDir()
	path := filepath.Join(dir, "c.set")
	require.NoError(t, os.WriteFile(path, []byte("training train.tensor\n"), 0o600))
	cfg, err = dataset.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "train.tensor"), cfg.TrainingPath)

	var buf bytes.Buffer
	w := serialization.NewStreamWriter(&buf)
	data, err := tensor.New(1, 2, 2, 3)
	require.NoError(t, err)
	label, err := tensor.New(1, 1, 2, 3)
	require.NoError(t, err)
	require.NoError(t, w.WritePair(data, label))
	require.NoError(t, w.Close())

	d, err := dataset.New(bytes.NewReader(buf.Bytes()), nil, dataset.Options{})
	require.NoError(t, err)

	stats := d.InputStats(dataset.PartitionTraining)
	assert.IsType(t, []dataset.ChannelStats{}, stats)
	assert.Len(t, stats, 2)
	assert.Nil(t, d.InputStats(dataset.PartitionTesting))

	g := dataset.ToGomlx(d.ErrorCache())
	assert.Equal(t, []int{1, 1, 2, 3}, g.Shape().Dimensions)
}
