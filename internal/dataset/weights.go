package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/tensorstream/internal/tensor"
)

// WeightFunc maps a pixel coordinate to its error weight.
type WeightFunc func(x, y int) float32

// ErrorFunction selects one of the built-in weighting strategies.
type ErrorFunction int

// Built-in weighting strategies.
const (
	ErrorUniform ErrorFunction = iota
	ErrorKITTI
)

// KITTIHorizonRow is the first image row weighted by KITTIWeight.
// Rows above it are the upper band of KITTI road frames, where ground truth
// is unreliable.
const KITTIHorizonRow = 150

// UniformWeight weights every pixel equally.
func UniformWeight(_, _ int) float32 {
	return 1
}

// KITTIWeight ignores errors above KITTIHorizonRow.
func KITTIWeight(_, y int) float32 {
	if y < KITTIHorizonRow {
		return 0
	}
	return 1
}

// String returns the configuration name of the strategy.
func (f ErrorFunction) String() string {
	switch f {
	case ErrorUniform:
		return "default"
	case ErrorKITTI:
		return "kitti"
	default:
		return "unknown"
	}
}

// Func returns the weighting function of the strategy.
func (f ErrorFunction) Func() WeightFunc {
	switch f {
	case ErrorKITTI:
		return KITTIWeight
	default:
		return UniformWeight
	}
}

// ParseErrorFunction resolves a strategy by name.
// Unknown names yield ErrorUniform and false.
func ParseErrorFunction(name string) (ErrorFunction, bool) {
	switch name {
	case "kitti":
		return ErrorKITTI, true
	case "default":
		return ErrorUniform, true
	default:
		return ErrorUniform, false
	}
}

// UnmarshalYAML decodes a strategy name, falling back to ErrorUniform.
func (f *ErrorFunction) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("localized_error: %w", err)
	}
	*f, _ = ParseErrorFunction(name)
	return nil
}

// buildErrorCache evaluates fn at every pixel of a width×height grid.
func buildErrorCache(width, height int, fn WeightFunc) (*tensor.Tensor, error) {
	cache, err := tensor.New(1, 1, height, width)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate error cache: %w", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cache.Set(x, y, 0, 0, fn(x, y))
		}
	}
	return cache, nil
}
