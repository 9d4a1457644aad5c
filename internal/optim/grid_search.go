// Package optim searches gain combinations for a control loop.
package optim

import (
	"context"
	"math"

	"github.com/rickhull/pid-controller-ng/internal/loop"
)

// BuildLoop constructs a fresh loop for one gain combination. A fresh
// loop per evaluation keeps accumulated controller and plant state from
// leaking between candidates.
type BuildLoop func(gains map[string]float64) (*loop.Loop, loop.Config, error)

// GridSearch exhaustively evaluates the cross product of candidate gain
// values and keeps the combination minimizing a named metric.
type GridSearch struct {
	gainNames  []string
	candidates [][]float64
}

func NewGridSearch(gains []string, candidates [][]float64) *GridSearch {
	return &GridSearch{gainNames: gains, candidates: candidates}
}

func (g *GridSearch) Search(ctx context.Context, build BuildLoop, metricName string) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestGains map[string]float64

	g.searchRecursive(ctx, 0, make(map[string]float64), build, metricName, &best, &bestGains)

	return bestGains, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	build BuildLoop,
	metricName string,
	best *float64,
	bestGains *map[string]float64,
) {
	if depth == len(g.gainNames) {
		l, cfg, err := build(current)
		if err != nil {
			return
		}

		result, err := l.Run(ctx, cfg)
		if err != nil {
			return
		}

		val := result.Metrics[metricName]
		if val < *best {
			*best = val
			*bestGains = make(map[string]float64)
			for k, v := range current {
				(*bestGains)[k] = v
			}
		}
		return
	}

	name := g.gainNames[depth]
	for _, val := range g.candidates[depth] {
		next := make(map[string]float64)
		for k, v := range current {
			next[k] = v
		}
		next[name] = val

		g.searchRecursive(ctx, depth+1, next, build, metricName, best, bestGains)
	}
}
