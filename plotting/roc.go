package plotting

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ROCCurve draws a receiver operating characteristic polyline onto p,
// together with the dashed chance diagonal. fpr and tpr must have equal
// length.
func ROCCurve(p *plot.Plot, fpr, tpr []float64, name string) error {
	if len(fpr) != len(tpr) {
		return errors.Errorf("plotting: fpr has %d points, tpr has %d", len(fpr), len(tpr))
	}
	pts := make(plotter.XYs, len(fpr))
	for i := range fpr {
		pts[i].X = fpr[i]
		pts[i].Y = tpr[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "plotting: building ROC line")
	}
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)
	if name != "" {
		p.Legend.Add(name, l)
	}

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return errors.Wrap(err, "plotting: building diagonal")
	}
	diag.LineStyle.Color = color.Gray{Y: 128}
	diag.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(diag)

	p.X.Label.Text = "False positive rate"
	p.Y.Label.Text = "True positive rate"
	return nil
}
