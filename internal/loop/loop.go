// Package loop drives a controller and a plant against each other on a
// fixed cadence: each tick the controller sees the plant's output and
// the plant absorbs the controller's.
package loop

import (
	"context"
	"fmt"

	"github.com/rickhull/pid-controller-ng/pid"
)

type Config struct {
	Dt       float64
	Duration float64
}

// Metric accumulates a scalar summary over a run.
type Metric interface {
	Name() string
	Observe(t, measure, output float64)
	Value() float64
	Reset()
}

// Observer is notified once per tick.
type Observer interface {
	OnTick(t, measure, output float64)
}

type Result struct {
	Times    []float64
	Measures []float64
	Outputs  []float64
	Metrics  map[string]float64
}

type Loop struct {
	controller pid.Updatable
	plant      pid.Updatable
	metrics    []Metric
	observers  []Observer
}

func New(controller, plant pid.Updatable) *Loop {
	return &Loop{
		controller: controller,
		plant:      plant,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (l *Loop) AddMetric(m Metric)     { l.metrics = append(l.metrics, m) }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

// Run ticks the loop for cfg.Duration seconds of simulated time,
// recording the measurement and control output at each step.
func (l *Loop) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:    make([]float64, 0, steps),
		Measures: make([]float64, 0, steps),
		Outputs:  make([]float64, 0, steps),
		Metrics:  make(map[string]float64),
	}

	for _, m := range l.metrics {
		m.Reset()
	}

	t := 0.0
	measure := l.plant.Output()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		out := l.controller.Update(measure)
		measure = l.plant.Update(out)
		t += cfg.Dt

		for _, m := range l.metrics {
			m.Observe(t, measure, out)
		}
		for _, obs := range l.observers {
			obs.OnTick(t, measure, out)
		}

		result.Times = append(result.Times, t)
		result.Measures = append(result.Measures, measure)
		result.Outputs = append(result.Outputs, out)
	}

	for _, m := range l.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
