// Package plotting renders bamboo data onto gonum/plot surfaces.
// The caller owns the *plot.Plot; these helpers only draw onto it.
package plotting

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// defaultBins is used when neither Bins nor Edges is set.
const defaultBins = 16

// HistOptions configures histogram rendering. Options are forwarded to
// the gonum/plot backend: Bins selects a bin count, Edges overrides it
// with explicit bin boundaries, Alpha sets fill transparency, and
// Normalize rescales each histogram to unit area.
type HistOptions struct {
	Bins      int
	Edges     []float64
	Alpha     float64
	Normalize bool
}

// Hist draws a single histogram of vals onto p with the given fill
// color. When name is non-empty a legend entry is added. Empty input
// draws nothing.
func Hist(p *plot.Plot, name string, vals []float64, c color.Color, opts HistOptions) error {
	if len(vals) == 0 {
		return nil
	}
	var h *plotter.Histogram
	var err error
	if len(opts.Edges) > 0 {
		h, err = histFromEdges(vals, opts.Edges)
	} else {
		n := opts.Bins
		if n <= 0 {
			n = defaultBins
		}
		h, err = plotter.NewHist(plotter.Values(vals), n)
	}
	if err != nil {
		return errors.Wrap(err, "plotting: building histogram")
	}
	if opts.Normalize {
		h.Normalize(1)
	}
	h.FillColor = c
	h.LineStyle.Color = c
	p.Add(h)
	if name != "" {
		p.Legend.Add(name, swatch{c})
	}
	return nil
}

// swatch is a legend thumbnail drawn as a filled rectangle, tying a
// histogram's legend entry to its fill color.
type swatch struct {
	color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.Color, c.ClipPolygonY(pts))
}

// histFromEdges builds a histogram with explicit bin boundaries. Values
// outside [edges[0], edges[len-1]] are dropped; the last bin is closed
// on the right.
func histFromEdges(vals, edges []float64) (*plotter.Histogram, error) {
	if len(edges) < 2 {
		return nil, errors.New("at least two bin edges required")
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, errors.New("bin edges must be strictly increasing")
		}
	}
	bins := make([]plotter.HistogramBin, len(edges)-1)
	for i := range bins {
		bins[i].Min = edges[i]
		bins[i].Max = edges[i+1]
	}
	last := len(bins) - 1
	for _, v := range vals {
		for i := range bins {
			if v >= bins[i].Min && (v < bins[i].Max || (i == last && v == bins[i].Max)) {
				bins[i].Weight++
				break
			}
		}
	}
	h, err := plotter.NewHist(plotter.Values(vals), len(bins))
	if err != nil {
		return nil, err
	}
	h.Bins = bins
	h.Width = edges[len(edges)-1] - edges[0]
	return h, nil
}

// GroupColor returns the i-th color of the plotutil cycle with the given
// alpha applied. Alpha outside (0, 1] means fully opaque.
func GroupColor(i int, alpha float64) color.Color {
	c := plotutil.Color(i)
	if alpha <= 0 || alpha > 1 {
		return c
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(alpha * 255)
	return nc
}

// Range returns the min and max of vals, the natural bounds for bin
// edges covering the data.
func Range(vals []float64) (min, max float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	return floats.Min(vals), floats.Max(vals)
}
