// Package render turns rankings and series windows into their output
// forms: SVG line charts, an ANSI terminal table and JSON.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/lefs/esi-util/internal/model"
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// One color per entity, cycled when the window has more series than the
// palette has entries.
var palette = []color.Color{
	color.RGBA{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF},
	color.RGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF},
	color.RGBA{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF},
	color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF},
	color.RGBA{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF},
	color.RGBA{R: 0x06, G: 0xB6, B: 0xD4, A: 0xFF},
	color.RGBA{R: 0xEC, G: 0x48, B: 0x99, A: 0xFF},
	color.RGBA{R: 0x84, G: 0xCC, B: 0x16, A: 0xFF},
	color.RGBA{R: 0xF9, G: 0x73, B: 0x16, A: 0xFF},
	color.RGBA{R: 0x63, G: 0x66, B: 0xF1, A: 0xFF},
}

// ChartSVG renders the window as an SVG line chart and writes the markup to
// w. One line per entity; missing observations break the line into
// segments instead of being interpolated over.
func ChartSVG(w io.Writer, window *model.SeriesWindow, title string) error {
	p, err := buildChart(window, title)
	if err != nil {
		return err
	}
	writer, err := p.WriterTo(chartWidth, chartHeight, "svg")
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

// ChartFile renders the window and writes the SVG to path. The chart is
// rendered to memory first so a failed write never leaves partial output.
func ChartFile(path string, window *model.SeriesWindow, title string) error {
	var buf bytes.Buffer
	if err := ChartSVG(&buf, window, title); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrRenderTargetUnwritable, path, err)
	}
	return nil
}

func buildChart(window *model.SeriesWindow, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Tick.Marker = periodTicker{periods: window.Periods}
	p.X.Tick.Label.Rotation = -math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, entity := range window.Entities {
		seriesColor := palette[i%len(palette)]
		observations := window.Series[entity]

		for _, segment := range segments(observations) {
			line, err := plotter.NewLine(segment)
			if err != nil {
				return nil, fmt.Errorf("line for %s: %w", entity.Code(), err)
			}
			line.Color = seriesColor
			line.Width = vg.Points(1)
			p.Add(line)
		}

		scatter, err := plotter.NewScatter(validPoints(observations))
		if err != nil {
			return nil, fmt.Errorf("points for %s: %w", entity.Code(), err)
		}
		scatter.GlyphStyle.Color = seriesColor
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(entity.Code(), scatter)
	}

	return p, nil
}

// segments splits a series into runs of consecutive valid observations so
// gaps stay visible.
func segments(observations []model.Observation) []plotter.XYs {
	var out []plotter.XYs
	var current plotter.XYs
	for i, o := range observations {
		if !o.Valid {
			if len(current) > 1 {
				out = append(out, current)
			}
			current = nil
			continue
		}
		current = append(current, plotter.XY{X: float64(i), Y: o.Value})
	}
	if len(current) > 1 {
		out = append(out, current)
	}
	return out
}

func validPoints(observations []model.Observation) plotter.XYs {
	var pts plotter.XYs
	for i, o := range observations {
		if o.Valid {
			pts = append(pts, plotter.XY{X: float64(i), Y: o.Value})
		}
	}
	return pts
}

// periodTicker labels the x axis with period names instead of the raw
// float positions the points use.
type periodTicker struct {
	periods []model.Period
}

func (t periodTicker) Ticks(min, max float64) []plot.Tick {
	// Thin the labels once the window grows past two years so they stay
	// legible.
	step := 1
	if len(t.periods) > 24 {
		step = len(t.periods) / 24
	}
	ticks := make([]plot.Tick, 0, len(t.periods))
	for i, p := range t.periods {
		tick := plot.Tick{Value: float64(i)}
		if i%step == 0 {
			tick.Label = p.String()
		}
		ticks = append(ticks, tick)
	}
	return ticks
}
