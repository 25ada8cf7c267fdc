package chart

import (
	"bytes"
	"testing"

	"github.com/huangsam/rankviz/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func f(v float64) *float64 { return &v }

func sampleView() *schema.View {
	return &schema.View{
		Axis: []schema.AxisInfo{
			{Name: "throughput", Label: "throughput ↑", Direction: schema.Higher},
			{Name: "latency", Label: "latency ↓", Direction: schema.Lower},
			{Name: "average response time", Label: "average ↓\nresponse", Direction: schema.Lower},
		},
		Rows: []schema.RowView{
			{Rank: 1, Tier: schema.TopTier, Scores: []*float64{f(1), f(1), f(0.8)}},
			{Rank: 5, Tier: schema.HighTier, Scores: []*float64{f(0.5), nil, f(0.4)}},
			{Rank: 12, Tier: schema.NormalTier, Scores: []*float64{f(0), f(0), nil}},
			{Rank: 13, Tier: schema.NormalTier, Scores: []*float64{nil, nil, nil}},
		},
		TotalConfigs: 20,
	}
}

func TestBuild(t *testing.T) {
	ch, err := Build(sampleView(), 800, 600)
	require.NoError(t, err)

	// The row without scores has no series.
	require.Len(t, ch.Series, 3)
	assert.Equal(t, schema.ConfigName(1), ch.Series[len(ch.Series)-1].GetName(), "top tier is drawn last")

	first := ch.Series[0].(gochart.ContinuousSeries)
	assert.Equal(t, []float64{0, 1}, first.XValues)
	assert.Equal(t, schema.StyleOf(schema.NormalTier).Width, first.Style.StrokeWidth)

	require.Len(t, ch.XAxis.Ticks, 3)
	assert.Equal(t, "average ↓ response", ch.XAxis.Ticks[2].Label)
	assert.Equal(t, 1.0, ch.YAxis.Range.GetMax())
}

func TestBuildNotEnoughData(t *testing.T) {
	tests := []struct {
		name string
		view *schema.View
	}{
		{"nil view", nil},
		{"no rows", &schema.View{Axis: sampleView().Axis}},
		{"one axis", &schema.View{
			Axis: []schema.AxisInfo{{Name: "latency"}},
			Rows: []schema.RowView{{Rank: 1, Scores: []*float64{f(0.5)}}},
		}},
		{"second axis unscored", &schema.View{
			Axis: []schema.AxisInfo{{Name: "a"}, {Name: "b"}},
			Rows: []schema.RowView{{Rank: 1, Scores: []*float64{f(0.5), nil}}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.view, 800, 600)
			assert.ErrorIs(t, err, ErrNotEnoughData)
		})
	}
}

func TestRender(t *testing.T) {
	var png bytes.Buffer
	require.NoError(t, Render(sampleView(), schema.PNGChart, 800, 600, &png))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, Render(sampleView(), schema.SVGChart, 800, 600, &svg))
	assert.Contains(t, svg.String(), "<svg")
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, drawingHex(gradient[0]), colorFor(0, 1))
	assert.Equal(t, drawingHex(gradient[0]), colorFor(0, 5))
	assert.Equal(t, drawingHex(gradient[len(gradient)-1]), colorFor(4, 5))
}

func drawingHex(hex string) drawing.Color { return drawing.ColorFromHex(hex) }
