// Package effplot draws trigger-efficiency curves from
// numerator/denominator histogram pairs.
package effplot

import (
	"fmt"
	"image/color"
	"math"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Efficiency builds a per-bin efficiency plot from a numerator and
// denominator pair of identically binned histograms. Bins with an empty
// denominator are drawn at zero with no error bar. The vertical errors
// are binomial.
func Efficiency(num, den *hbook.H1D, title, xLabel string) (*plot.Plot, error) {
	nbins := len(den.Binning.Bins)
	if len(num.Binning.Bins) != nbins {
		return nil, fmt.Errorf("effplot: binning mismatch: numerator %d bins, denominator %d bins",
			len(num.Binning.Bins), nbins)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "efficiency"
	p.Y.Min, p.Y.Max = 0, 1.05
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

	errPoints := efficiencyPoints(num, den)
	xerr, err := plotter.NewXErrorBars(errPoints)
	if err != nil {
		return nil, err
	}
	yerr, err := plotter.NewYErrorBars(errPoints)
	if err != nil {
		return nil, err
	}
	xerr.LineStyle.Color = color.RGBA{A: 255}
	yerr.LineStyle.Color = color.RGBA{A: 255}
	p.Add(xerr, yerr)

	return p, nil
}

// efficiencyPoints turns the pair into per-bin ratio points. The x
// error is the flat-distribution sigma of the bin width.
func efficiencyPoints(num, den *hbook.H1D) plotutil.ErrorPoints {
	nbins := len(den.Binning.Bins)
	points := make(plotter.XYs, nbins)
	xErrors := make(plotter.XErrors, nbins)
	yErrors := make(plotter.YErrors, nbins)
	for i, dbin := range den.Binning.Bins {
		binSigma := dbin.XWidth() / 2 / math.Sqrt(3.)
		points[i].X = dbin.XMid()
		xErrors[i].Low = binSigma
		xErrors[i].High = binSigma

		denY := dbin.SumW()
		numY := num.Binning.Bins[i].SumW()
		if denY > 0 {
			points[i].Y = numY / denY
			yErrors[i].Low = math.Sqrt((1 - numY/denY) * numY / math.Pow(denY, 2))
			yErrors[i].High = yErrors[i].Low
		}
	}
	return plotutil.ErrorPoints{XYs: points, XErrors: xErrors, YErrors: yErrors}
}

// Save writes the plot to path, format per file extension.
func Save(p *plot.Plot, path string) error {
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
