package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfiguration(t *testing.T) {
	input := strings.Join([]string{
		"# KITTI road",
		"classes 2",
		"road",
		"background",
		"localized_error kitti",
		"training kitti_train.tensor",
		"testing kitti_test.tensor",
		"learning_rate 0.01",
	}, "\n")

	cfg, err := ParseConfiguration(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Classes)
	assert.Equal(t, []string{"road", "background"}, cfg.ClassNames)
	assert.Equal(t, ErrorKITTI, cfg.ErrorFunction)
	assert.Equal(t, "kitti_train.tensor", cfg.TrainingPath)
	assert.Equal(t, "kitti_test.tensor", cfg.TestingPath)
}

func TestParseConfigurationSeparators(t *testing.T) {
	input := "training=a.tensor\r\ntesting\tb.tensor\r\nclasses=1\r\nroad\r\n"

	cfg, err := ParseConfiguration(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "a.tensor", cfg.TrainingPath)
	assert.Equal(t, "b.tensor", cfg.TestingPath)
	assert.Equal(t, []string{"road"}, cfg.ClassNames)
}

func TestParseConfigurationClassNamesVerbatim(t *testing.T) {
	// Class-name lines are never parsed as directives.
	input := "classes 2\ntraining\nsky blue\ntraining real.tensor\n"

	cfg, err := ParseConfiguration(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"training", "sky blue"}, cfg.ClassNames)
	assert.Equal(t, "real.tensor", cfg.TrainingPath)
}

func TestParseConfigurationErrorFunction(t *testing.T) {
	tests := []struct {
		line string
		want ErrorFunction
	}{
		{"localized_error kitti", ErrorKITTI},
		{"localized_error default", ErrorUniform},
		{"localized_error something_else", ErrorUniform},
		{"localized_error", ErrorUniform},
		{"", ErrorUniform},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cfg, err := ParseConfiguration(strings.NewReader(tt.line))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.ErrorFunction)
		})
	}
}

func TestParseConfigurationInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric count", "classes two\n"},
		{"negative count", "classes -1\n"},
		{"missing class names", "classes 3\nroad\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfiguration(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrInvalidDirective)
		})
	}
}

func TestErrorFunctionNames(t *testing.T) {
	for _, f := range []ErrorFunction{ErrorUniform, ErrorKITTI} {
		got, ok := ParseErrorFunction(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}

	got, ok := ParseErrorFunction("KITTI")
	assert.False(t, ok, "names are case-sensitive")
	assert.Equal(t, ErrorUniform, got)
}

func TestKITTIWeight(t *testing.T) {
	assert.Equal(t, float32(0), KITTIWeight(0, 0))
	assert.Equal(t, float32(0), KITTIWeight(600, KITTIHorizonRow-1))
	assert.Equal(t, float32(1), KITTIWeight(600, KITTIHorizonRow))
	assert.Equal(t, float32(1), KITTIWeight(1241, 374))
	assert.Equal(t, float32(1), ErrorUniform.Func()(5, 5))
}

func TestParseManifest(t *testing.T) {
	input := `
classes: [road, background]
localized_error: kitti
training: train.tensor
testing: test.tensor
`
	cfg, err := ParseManifest(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Classes)
	assert.Equal(t, []string{"road", "background"}, cfg.ClassNames)
	assert.Equal(t, ErrorKITTI, cfg.ErrorFunction)
	assert.Equal(t, "train.tensor", cfg.TrainingPath)
	assert.Equal(t, "test.tensor", cfg.TestingPath)
}

func TestParseManifestFallbackAndErrors(t *testing.T) {
	cfg, err := ParseManifest(strings.NewReader("localized_error: fancy\ntraining: a.tensor\n"))
	require.NoError(t, err)
	assert.Equal(t, ErrorUniform, cfg.ErrorFunction)

	cfg, err = ParseManifest(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.TrainingPath)

	_, err = ParseManifest(strings.NewReader("trainig: typo.tensor\n"))
	assert.ErrorIs(t, err, ErrInvalidDirective)
}

func TestFromConfiguration(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "train.tensor"), encodePairs(t, 3, 0))
	writeFile(t, filepath.Join(dir, "test.tensor"), encodePairs(t, 1, 10))
	writeFile(t, filepath.Join(dir, "road.set"), []byte(
		"classes 2\nroad\nbackground\nlocalized_error kitti\ntraining train.tensor\ntesting test.tensor\n"))

	d, err := FromConfiguration(filepath.Join(dir, "road.set"))
	require.NoError(t, err)
	assert.Equal(t, 3, d.TrainingSamples())
	assert.Equal(t, 1, d.TestingSamples())
	assert.Equal(t, []string{"road", "background"}, d.ClassNames())

	// Fixture height is below the KITTI horizon, so every weight is zero.
	for _, v := range d.ErrorCache().Data() {
		assert.Equal(t, float32(0), v)
	}

	// The pool is a copy: samples stay readable after the streams are closed.
	data, label, weight := destinations(t, 1)
	require.NoError(t, d.TestingSample(data, label, weight, 0, 0))
	assert.Equal(t, float32(10), data.At(0, 0, 0, 0))
}

func TestFromConfigurationManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "train.tensor"), encodePairs(t, 2, 0))
	writeFile(t, filepath.Join(dir, "corpus.yaml"), []byte("classes: [a, b, c]\ntraining: train.tensor\n"))

	d, err := FromConfiguration(filepath.Join(dir, "corpus.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Classes())
	assert.Equal(t, 2, d.TrainingSamples())
	assert.False(t, d.SupportsTesting())
}

func TestLoadConfigFileResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere.tensor")
	writeFile(t, filepath.Join(dir, "c.set"), []byte("training sub/train.tensor\ntesting "+abs+"\n"))

	cfg, err := LoadConfigFile(filepath.Join(dir, "c.set"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub", "train.tensor"), cfg.TrainingPath)
	assert.Equal(t, abs, cfg.TestingPath)
}

func TestOpenErrors(t *testing.T) {
	_, err := (&Configuration{}).Open()
	assert.ErrorIs(t, err, ErrMissingTrainingPath)

	dir := t.TempDir()
	_, err = (&Configuration{TrainingPath: filepath.Join(dir, "missing.tensor")}).Open()
	assert.Error(t, err)

	writeFile(t, filepath.Join(dir, "train.tensor"), encodePairs(t, 1, 0))
	_, err = (&Configuration{
		TrainingPath: filepath.Join(dir, "train.tensor"),
		TestingPath:  filepath.Join(dir, "missing.tensor"),
	}).Open()
	assert.Error(t, err)

	_, err = FromConfiguration(filepath.Join(dir, "missing.set"))
	assert.Error(t, err)
}
