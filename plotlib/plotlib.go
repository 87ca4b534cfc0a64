// Package plotlib saves frequency series and distributions as image charts
package plotlib

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"goWordStats/freqlib"
	"goWordStats/statlib"
)

// ErrNothingToPlot is returned when there is no data at all
var ErrNothingToPlot = errors.New("plotlib: nothing to plot")

// Size of saved images, in inches
type Size struct {
	Width  float64
	Height float64
}

// DefaultSize is 8x4 inches
var DefaultSize = Size{Width: 8, Height: 4}

// Line is one named line of a chart
type Line struct {
	Name   string
	Values []float64
}

// Chart is a titled line chart
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
}

// Paths returns one output file per chart: path itself for a single chart,
// otherwise path with -1, -2 ... inserted before the extension
func Paths(path string, n int) []string {
	if n == 1 {
		return []string{path}
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	paths := make([]string, n)
	for i := range paths {
		paths[i] = base + "-" + strconv.Itoa(i+1) + ext
	}
	return paths
}

func newPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Add(plotter.NewGrid())
	return p
}

// SaveLines draws the chart; the image format follows the path extension.
func SaveLines(c Chart, path string, size Size) error {
	p := newPlot(c.Title, c.XLabel, c.YLabel)

	for i, l := range c.Lines {
		pts := make(plotter.XYs, len(l.Values))
		for x, v := range l.Values {
			pts[x].X = float64(x)
			pts[x].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot %s: %w", l.Name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		if l.Name != "" {
			p.Legend.Add(l.Name, line)
		}
	}

	if err := p.Save(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// SaveBars draws a bar chart with one labeled bar per value
func SaveBars(title string, labels []string, values []float64, path string, size Size) error {
	if len(values) == 0 {
		return ErrNothingToPlot
	}

	p := newPlot(title, "", "")
	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(12))
	if err != nil {
		return fmt.Errorf("plot %s: %w", title, err)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = -0.5

	if err := p.Save(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// column returns value i of every record
func column(records []freqlib.Record, i int) []float64 {
	out := make([]float64, len(records))
	for r, rec := range records {
		out[r] = rec.Values[i]
	}
	return out
}

// FrequencyCharts builds one chart per document with a line per column
func FrequencyCharts(series []freqlib.Series, raw bool) []Chart {
	yLabel := "frequency"
	if raw {
		yLabel = "count"
	}

	charts := make([]Chart, 0, len(series))
	for _, s := range series {
		c := Chart{Title: s.Name, XLabel: "block", YLabel: yLabel}
		for i, col := range s.Columns {
			c.Lines = append(c.Lines, Line{Name: col, Values: column(s.Records, i)})
		}
		if len(s.Columns) == 1 {
			c.Lines[0].Name = ""
		}
		charts = append(charts, c)
	}
	return charts
}

// SentenceCharts builds one chart per document with the average line plus optional min and max
// lines, or a single chart comparing the averages of all documents
func SentenceCharts(reports []statlib.SentenceReport, compare, showMin, showMax bool) []Chart {
	avg := func(r statlib.SentenceReport) []float64 {
		out := make([]float64, len(r.Chunks))
		for i, c := range r.Chunks {
			out[i] = c.Avg
		}
		return out
	}

	if compare {
		names := make([]string, 0, len(reports))
		c := Chart{XLabel: "chunk", YLabel: "words per sentence"}
		for _, r := range reports {
			names = append(names, r.Name)
			c.Lines = append(c.Lines, Line{Name: r.Name, Values: avg(r)})
		}
		c.Title = strings.Join(names, ", ")
		return []Chart{c}
	}

	charts := make([]Chart, 0, len(reports))
	for _, r := range reports {
		c := Chart{Title: r.Name, XLabel: "chunk", YLabel: "words per sentence"}
		c.Lines = append(c.Lines, Line{Name: fmt.Sprintf("Avg. num. of words in sentence (%.2f)", r.Summary.Avg), Values: avg(r)})
		if showMin {
			values := make([]float64, len(r.Chunks))
			for i, ch := range r.Chunks {
				values[i] = float64(ch.Min)
			}
			c.Lines = append(c.Lines, Line{Name: fmt.Sprintf("Min num. of words in sentence (%d)", r.Summary.Min), Values: values})
		}
		if showMax {
			values := make([]float64, len(r.Chunks))
			for i, ch := range r.Chunks {
				values[i] = float64(ch.Max)
			}
			c.Lines = append(c.Lines, Line{Name: fmt.Sprintf("Max num. of words in sentence (%d)", r.Summary.Max), Values: values})
		}
		charts = append(charts, c)
	}
	return charts
}

// SaveCharts writes charts to Paths(path, len(charts))
func SaveCharts(charts []Chart, path string, size Size) ([]string, error) {
	if len(charts) == 0 {
		return nil, ErrNothingToPlot
	}
	paths := Paths(path, len(charts))
	for i, c := range charts {
		if err := SaveLines(c, paths[i], size); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// SavePOS writes one bar chart per report, labels carrying the value like "NN - 0.25".
// Reports without tags get no file, the others keep the path of their position.
func SavePOS(reports []statlib.POSReport, path string, size Size) ([]string, error) {
	if len(reports) == 0 {
		return nil, ErrNothingToPlot
	}
	paths := Paths(path, len(reports))
	saved := make([]string, 0, len(reports))
	for i, r := range reports {
		if len(r.Tags) == 0 {
			continue
		}
		labels := make([]string, len(r.Tags))
		values := make([]float64, len(r.Tags))
		for j, s := range r.Tags {
			labels[j] = fmt.Sprintf("%s - %.2f", s.Tag, s.Value)
			values[j] = s.Value
		}
		if err := SaveBars(r.Name, labels, values, paths[i], size); err != nil {
			return nil, err
		}
		saved = append(saved, paths[i])
	}
	return saved, nil
}
