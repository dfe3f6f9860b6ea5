package benchmark

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ChartFile is written to the working directory and overwritten on every run.
const ChartFile = "complexity_proof.png"

// ErrEmptySeries is returned when there is nothing to draw.
var ErrEmptySeries = errors.New("benchmark series is empty")

var (
	measuredColor  = color.RGBA{B: 255, A: 255}
	referenceColor = color.RGBA{R: 255, A: 128}
)

// Reference returns a quadratic curve scaled so its last point equals the
// last measured time. A last time of exactly zero gives a flat line at zero.
func Reference(series Series) []float64 {
	if len(series) == 0 {
		return nil
	}

	last := series[len(series)-1]
	lastSize := float64(last.Size)
	scale := 0.0
	if t := last.RawTime.Seconds(); t > 0 && lastSize != 0 {
		scale = t / (lastSize * lastSize)
	}

	ref := make([]float64, len(series))
	for i, r := range series {
		n := float64(r.Size)
		ref[i] = n * n * scale
	}
	return ref
}

// SaveChart plots measured time and the quadratic reference against input
// size and writes the image to ChartFile. It returns the absolute path.
func SaveChart(name string, series Series) (string, error) {
	if len(series) == 0 {
		return "", ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = "Performance Analysis: " + name
	p.X.Label.Text = "Input Size (n)"
	p.Y.Label.Text = "Time (seconds)"
	p.Add(plotter.NewGrid())

	ref := Reference(series)
	measuredXYs := make(plotter.XYs, len(series))
	referenceXYs := make(plotter.XYs, len(series))
	for i, r := range series {
		measuredXYs[i].X = float64(r.Size)
		measuredXYs[i].Y = r.RawTime.Seconds()
		referenceXYs[i].X = float64(r.Size)
		referenceXYs[i].Y = ref[i]
	}

	measured, points, err := plotter.NewLinePoints(measuredXYs)
	if err != nil {
		return "", fmt.Errorf("failed to build measured line: %w", err)
	}
	measured.LineStyle.Color = measuredColor
	points.GlyphStyle.Color = measuredColor
	points.GlyphStyle.Shape = draw.CircleGlyph{}

	reference, err := plotter.NewLine(referenceXYs)
	if err != nil {
		return "", fmt.Errorf("failed to build reference line: %w", err)
	}
	reference.LineStyle.Color = referenceColor
	reference.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	p.Add(measured, points, reference)
	p.Legend.Add("Your Code", measured, points)
	p.Legend.Add("O(n^2) Reference", reference)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(10*vg.Inch, 6*vg.Inch, ChartFile); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}

	path, err := filepath.Abs(ChartFile)
	if err != nil {
		return ChartFile, nil
	}
	return path, nil
}
