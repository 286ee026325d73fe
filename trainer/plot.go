package trainer

import "github.com/pkg/errors"
import "gonum.org/v1/plot"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/vg"

// PlotTrial saves the loss and accuracy learning curves of series as an image at
// path. The format follows the extension.
func PlotTrial(path, title string, series []EvalResult) error {
	if len(series) == 0 {
		return errors.New("nothing to plot")
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = "global step"

	loss := make(plotter.XYs, len(series))
	acc := make(plotter.XYs, len(series))
	for i, r := range series {
		loss[i].X, loss[i].Y = float64(r.GlobalStep), r.Loss
		acc[i].X, acc[i].Y = float64(r.GlobalStep), r.Accuracy
	}
	for i, curve := range []struct {
		name string
		xys  plotter.XYs
	}{{"loss", loss}, {"accuracy", acc}} {
		l, err := plotter.NewLine(curve.xys)
		if err != nil {
			return err
		}
		l.Color = plotColors[i]
		p.Add(l)
		p.Legend.Add(curve.name, l)
	}
	p.Add(plotter.NewGrid())
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
