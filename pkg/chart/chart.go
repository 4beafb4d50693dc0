// Package chart renders rankings and time series as images.
//
// The output format follows the file extension (png, svg, pdf, ...).
package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/anrid/africa-aid-stats/pkg/stats"
)

// Palette colours the lines of a line chart, in series order.
var Palette = []color.Color{
	color.RGBA{R: 0, G: 128, B: 0, A: 255},
	color.RGBA{R: 218, G: 165, B: 32, A: 255},
	color.RGBA{R: 200, G: 0, B: 0, A: 255},
	color.RGBA{R: 0, G: 0, B: 200, A: 255},
	color.RGBA{R: 128, G: 0, B: 128, A: 255},
	color.RGBA{R: 0, G: 128, B: 128, A: 255},
}

// Metric selects which values of a series a line chart draws.
type Metric func(s stats.Series) []float64

func Aid(s stats.Series) []float64    { return s.Aid }
func Income(s stats.Series) []float64 { return s.Income }

// BarChart draws the mean of every country in ranking order.
func BarChart(title, ylabel string, ranked []stats.Mean, path string) error {
	if len(ranked) == 0 {
		return fmt.Errorf("no countries to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Countries"
	p.Y.Label.Text = ylabel

	values := make(plotter.Values, len(ranked))
	labels := make([]string, len(ranked))
	for i, m := range ranked {
		values[i] = m.Value
		labels[i] = m.Country
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("could not create bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.Add(plotter.NewGrid())

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Y.Min = 0

	width := vg.Length(len(ranked)) * vg.Points(22)
	if width < 10*vg.Inch {
		width = 10 * vg.Inch
	}
	return save(p, width, 8*vg.Inch, path)
}

// LineChart draws one line per series over the years.
func LineChart(title, ylabel string, series []stats.Series, metric Metric, path string) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Years"
	p.Y.Label.Text = ylabel
	p.Legend.Top = true

	for i, s := range series {
		values := metric(s)
		points := make(plotter.XYs, 0, len(values))
		for j, v := range values {
			if j >= len(s.Years) || math.IsNaN(v) {
				continue
			}
			points = append(points, plotter.XY{X: float64(s.Years[j]), Y: v})
		}
		if len(points) == 0 {
			continue
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("could not create line for %s: %w", s.Country, err)
		}
		line.Color = Palette[i%len(Palette)]
		line.Width = vg.Points(2)

		p.Add(line)
		p.Legend.Add(s.Country, line)
	}
	p.Add(plotter.NewGrid())

	return save(p, 16*vg.Inch, 10*vg.Inch, path)
}

func save(p *plot.Plot, w, h vg.Length, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create chart directory: %w", err)
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("could not save chart %s: %w", path, err)
	}
	return nil
}
