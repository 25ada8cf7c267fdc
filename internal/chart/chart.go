// Package chart draws the parallel-coordinates view as a PNG or SVG image
// using github.com/wcharczuk/go-chart/v2.
package chart

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/huangsam/rankviz/schema"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNotEnoughData is returned when the view cannot form a single line segment.
var ErrNotEnoughData = errors.New("chart needs at least two scored axes and one configuration")

// gradient runs from the best ranked line to the worst.
var gradient = []string{
	"440154", "482878", "3e4989", "31688e", "26828e",
	"1f9e89", "35b779", "6ece58", "b5de2b", "fde725",
}

// colorFor picks a gradient step for the i-th of n rows.
func colorFor(i, n int) drawing.Color {
	if n <= 1 {
		return drawing.ColorFromHex(gradient[0])
	}
	step := i * (len(gradient) - 1) / (n - 1)
	return drawing.ColorFromHex(gradient[step])
}

// scoredAxes counts axes where at least one row has a score.
func scoredAxes(view *schema.View) int {
	count := 0
	for i := range view.Axis {
		for _, r := range view.Rows {
			if i < len(r.Scores) && r.Scores[i] != nil {
				count++
				break
			}
		}
	}
	return count
}

// Build assembles the chart without rendering it.
func Build(view *schema.View, width, height int) (*gochart.Chart, error) {
	if view == nil || len(view.Rows) == 0 || scoredAxes(view) < 2 {
		return nil, ErrNotEnoughData
	}

	// Lower z-order is drawn first so top tiers end up on top.
	order := make([]int, len(view.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return schema.StyleOf(view.Rows[order[a]].Tier).ZOrder < schema.StyleOf(view.Rows[order[b]].Tier).ZOrder
	})

	series := make([]gochart.Series, 0, len(view.Rows))
	for _, idx := range order {
		row := view.Rows[idx]
		var xs, ys []float64
		for i, s := range row.Scores {
			if s == nil {
				continue
			}
			xs = append(xs, float64(i))
			ys = append(ys, *s)
		}
		if len(xs) == 0 {
			continue
		}
		style := schema.StyleOf(row.Tier)
		col := colorFor(idx, len(view.Rows)).WithAlpha(uint8(style.Alpha * 255))
		series = append(series, gochart.ContinuousSeries{
			Name:    schema.ConfigName(row.Rank),
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeWidth: style.Width,
				StrokeColor: col,
				DotWidth:    style.Dot,
				DotColor:    col,
			},
		})
	}

	xTicks := make([]gochart.Tick, len(view.Axis))
	for i, a := range view.Axis {
		// Tick labels are drawn on a single line.
		xTicks[i] = gochart.Tick{Value: float64(i), Label: strings.ReplaceAll(a.Label, "\n", " ")}
	}
	yTicks := []gochart.Tick{
		{Value: 0, Label: "0.00"},
		{Value: 0.25, Label: "0.25"},
		{Value: 0.5, Label: "0.50"},
		{Value: 0.75, Label: "0.75"},
		{Value: 1, Label: "1.00"},
	}

	ch := &gochart.Chart{
		Title:      fmt.Sprintf("Configuration ranking (%d of %d)", len(view.Rows), view.TotalConfigs),
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 60}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: float64(len(view.Axis) - 1)},
			Ticks: xTicks,
		},
		YAxis: gochart.YAxis{
			Name:  "Normalized score (1.0 = best)",
			Range: &gochart.ContinuousRange{Min: 0, Max: 1},
			Ticks: yTicks,
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.LegendLeft(ch)}
	return ch, nil
}

// Render draws the view to w in the requested format.
func Render(view *schema.View, format schema.ChartFormat, width, height int, w io.Writer) error {
	ch, err := Build(view, width, height)
	if err != nil {
		return err
	}
	return Encode(ch, format, w)
}

// Encode writes an already built chart to w.
func Encode(ch *gochart.Chart, format schema.ChartFormat, w io.Writer) error {
	provider := gochart.PNG
	if format == schema.SVGChart {
		provider = gochart.SVG
	}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
