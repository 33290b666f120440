package export

import (
	"io"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/alexshd/bridgecalc"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// WritePlot draws the samples as a PNG: index on x, value on a log y axis,
// one series per quantity. Non-positive and non-finite values cannot sit on
// a log axis and are skipped.
func WritePlot(w io.Writer, samples []Sample, title string) error {
	series := groupSamples(samples)

	total := 0
	for _, xys := range series {
		total += len(xys)
	}
	if total < 2 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "n"
	p.Y.Label.Text = "value (m, kg)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	var vs []interface{}
	for _, q := range []bridgecalc.Quantity{bridgecalc.Radius, bridgecalc.Mass} {
		if xys := series[q]; len(xys) > 0 {
			vs = append(vs, string(q), xys)
		}
	}
	if err := plotutil.AddLinePoints(p, vs...); err != nil {
		return err
	}

	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// groupSamples splits samples by quantity, each series sorted by index.
func groupSamples(samples []Sample) map[bridgecalc.Quantity]plotter.XYs {
	series := make(map[bridgecalc.Quantity]plotter.XYs)
	for _, s := range samples {
		if !(s.Value > 0) || math.IsInf(s.Value, 0) || math.IsNaN(s.Index) || math.IsInf(s.Index, 0) {
			continue
		}
		series[s.Quantity] = append(series[s.Quantity], plotter.XY{X: s.Index, Y: s.Value})
	}
	for _, xys := range series {
		sort.SliceStable(xys, func(i, j int) bool { return xys[i].X < xys[j].X })
	}
	return series
}
