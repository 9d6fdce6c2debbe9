package export

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/njnx/polar-plant-eunjin-dashboard/internal/logging"
	"github.com/njnx/polar-plant-eunjin-dashboard/internal/optimum"
)

// WriteProfilePNG renders one variable's mean fresh-weight curve as a PNG:
// a line+marker series over the grouped values with the winning group drawn
// as a separate highlighted point.
func WriteProfilePNG(w io.Writer, p optimum.Profile, outcome string) error {
	xs := make([]float64, len(p.Groups))
	ys := make([]float64, len(p.Groups))
	for i, g := range p.Groups {
		xs[i] = g.Value
		ys[i] = g.Mean
	}
	// go-chart refuses a single-point x-range; pad by nudging a duplicate.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1e-9)
		ys = append(ys, ys[0])
	}

	best := p.Groups[p.Best]
	ch := chart.Chart{
		Title:      fmt.Sprintf("%s vs mean %s", p.Variable, outcome),
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 28}},
		XAxis:      chart.XAxis{Name: p.Variable},
		YAxis:      chart.YAxis{Name: outcome},
		Width:      800,
		Height:     400,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    p.Variable,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					DotColor:    chart.ColorBlue,
					DotWidth:    3,
				},
			},
			chart.ContinuousSeries{
				Name:    "optimum",
				XValues: []float64{best.Value},
				YValues: []float64{best.Mean},
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotColor:    drawing.ColorFromHex("e53935"),
					DotWidth:    7,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render %s chart: %w", p.Variable, err)
	}
	logging.Export("chart export: %s (%d group(s))", p.Variable, len(p.Groups))
	return nil
}
