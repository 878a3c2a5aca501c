// Package viz renders corpus tensors for inspection.
package viz

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/born-ml/tensorstream/internal/tensor"
)

// ErrEmptyTensor is returned when there is nothing to draw.
var ErrEmptyTensor = errors.New("tensor has no elements")

// planeGrid exposes sample 0, map 0 of a tensor as a plotter.GridXYZ.
// Rows are flipped so image row 0 is drawn at the top.
type planeGrid struct {
	t *tensor.Tensor
}

func (g planeGrid) Dims() (c, r int) { return g.t.Width(), g.t.Height() }

func (g planeGrid) Z(c, r int) float64 {
	return float64(g.t.At(c, g.t.Height()-1-r, 0, 0))
}

func (g planeGrid) X(c int) float64 { return float64(c) }
func (g planeGrid) Y(r int) float64 { return float64(r) }

// SaveWeightHeatmap draws the first plane of weights as a heat map.
// The image format follows the extension of path (.png, .svg, .pdf, ...).
func SaveWeightHeatmap(weights *tensor.Tensor, path string) error {
	if weights.NumElements() == 0 {
		return ErrEmptyTensor
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Error weights %dx%d", weights.Width(), weights.Height())
	p.X.Label.Text = "x"
	p.Y.Label.Text = "row (from bottom)"

	h := plotter.NewHeatMap(planeGrid{t: weights}, palette.Heat(16, 1))
	// A constant plane would give the palette an empty range.
	if h.Min == h.Max {
		h.Min -= 0.5
		h.Max += 0.5
	}
	p.Add(h)

	width := 6 * vg.Inch
	height := width * vg.Length(weights.Height()) / vg.Length(weights.Width())
	if height < 2*vg.Inch {
		height = 2 * vg.Inch
	}

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("failed to save heat map: %w", err)
	}
	return nil
}
