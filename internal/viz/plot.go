// Package viz renders control traces as terminal plots.
package viz

import (
	"github.com/guptarohit/asciigraph"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

// Plot renders a trace with a caption, sized for a standard terminal.
func Plot(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotSeries overlays the measurement and the setpoint so overshoot and
// settling are visible at a glance.
func PlotSeries(measures []float64, setpoint float64, caption string) string {
	target := make([]float64, len(measures))
	for i := range target {
		target[i] = setpoint
	}
	return asciigraph.PlotMany([][]float64{measures, target},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
