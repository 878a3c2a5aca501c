package dataset

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensorstream/internal/serialization"
	"github.com/born-ml/tensorstream/internal/tensor"
)

// Fixture geometry.
const (
	testWidth     = 4
	testHeight    = 3
	testInputMaps = 3
	testLabelMaps = 2
)

// constant returns a singleton tensor filled with v.
func constant(t *testing.T, maps, height, width int, v float32) *tensor.Tensor {
	t.Helper()
	out, err := tensor.New(1, maps, height, width)
	require.NoError(t, err)
	for i := range out.Data() {
		out.Data()[i] = v
	}
	return out
}

// encodePairs writes pairs data/label records. Pair i has data filled with
// base+i and labels filled with -(base+i).
func encodePairs(t *testing.T, pairs int, base float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := serialization.NewStreamWriter(&buf)
	for i := 0; i < pairs; i++ {
		v := base + float32(i)
		require.NoError(t, w.WritePair(
			constant(t, testInputMaps, testHeight, testWidth, v),
			constant(t, testLabelMaps, testHeight, testWidth, -v),
		))
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// corpusStream returns a seekable stream holding pairs records pairs.
func corpusStream(t *testing.T, pairs int, base float32) *bytes.Reader {
	t.Helper()
	return bytes.NewReader(encodePairs(t, pairs, base))
}

// recordStream returns a stream holding n data-shaped records.
func recordStream(t *testing.T, n int) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := serialization.NewStreamWriter(&buf)
	for i := 0; i < n; i++ {
		require.NoError(t, w.Write(constant(t, testInputMaps, testHeight, testWidth, float32(i))))
	}
	require.NoError(t, w.Close())
	return bytes.NewReader(buf.Bytes())
}

// destinations allocates data, label and weight tensors with n slots.
func destinations(t *testing.T, n int) (data, label, weight *tensor.Tensor) {
	t.Helper()
	var err error
	data, err = tensor.New(n, testInputMaps, testHeight, testWidth)
	require.NoError(t, err)
	label, err = tensor.New(n, testLabelMaps, testHeight, testWidth)
	require.NoError(t, err)
	weight, err = tensor.New(n, 1, testHeight, testWidth)
	require.NoError(t, err)
	return data, label, weight
}

// writeFile writes content to path.
func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, content, 0o600))
}
