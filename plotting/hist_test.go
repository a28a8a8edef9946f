package plotting

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestHistFromEdgesCounts(t *testing.T) {
	h, err := histFromEdges([]float64{0, 1, 2, 3, 4}, []float64{0, 2, 4})
	require.NoError(t, err)
	require.Len(t, h.Bins, 2)
	// [0,2) holds 0 and 1; [2,4] holds 2, 3 and the right edge 4.
	assert.Equal(t, 2.0, h.Bins[0].Weight)
	assert.Equal(t, 3.0, h.Bins[1].Weight)
	assert.Equal(t, 0.0, h.Bins[0].Min)
	assert.Equal(t, 2.0, h.Bins[0].Max)
}

func TestHistFromEdgesDropsOutOfRange(t *testing.T) {
	h, err := histFromEdges([]float64{-5, 1, 99}, []float64{0, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, h.Bins[0].Weight)
}

func TestHistFromEdgesValidation(t *testing.T) {
	_, err := histFromEdges([]float64{1}, []float64{0})
	assert.Error(t, err)
	_, err = histFromEdges([]float64{1}, []float64{2, 1})
	assert.Error(t, err)
}

func TestHistDrawVariants(t *testing.T) {
	p := plot.New()
	vals := []float64{1, 2, 2, 3, 3, 3, 4}

	err := Hist(p, "counted", vals, color.NRGBA{R: 255, A: 255}, HistOptions{Bins: 3})
	require.NoError(t, err)

	err = Hist(p, "edged", vals, color.NRGBA{B: 255, A: 255},
		HistOptions{Edges: []float64{0, 2, 4}, Normalize: true})
	require.NoError(t, err)

	// Empty input draws nothing and is not an error.
	err = Hist(p, "empty", nil, color.NRGBA{A: 255}, HistOptions{})
	require.NoError(t, err)
}

// Legend entries carry a color swatch so groups are tellable apart.
var _ plot.Thumbnailer = swatch{}

func TestSwatchThumbnail(t *testing.T) {
	dc := draw.New(vgimg.New(vg.Points(20), vg.Points(20)))
	assert.NotPanics(t, func() {
		swatch{color.NRGBA{R: 255, A: 255}}.Thumbnail(&dc)
	})
}

func TestGroupColorAlpha(t *testing.T) {
	c := GroupColor(0, 0.5)
	nc, ok := c.(color.NRGBA)
	require.True(t, ok)
	assert.Equal(t, uint8(127), nc.A)

	// Alpha outside (0,1] leaves the cycle color untouched.
	assert.Equal(t, plotutil.Color(1), GroupColor(1, 0))
	assert.Equal(t, plotutil.Color(2), GroupColor(2, 1.5))
}

func TestRange(t *testing.T) {
	min, max := Range([]float64{3, -1, 7})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)
	min, max = Range(nil)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 0.0, max)
}
