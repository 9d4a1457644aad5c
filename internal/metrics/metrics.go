// Package metrics provides run-level summaries for control loops.
package metrics

import "math"

// ControlEffort reports the mean absolute control output over a run.
type ControlEffort struct {
	name    string
	sum     float64
	samples int
}

func NewControlEffort() *ControlEffort {
	return &ControlEffort{name: "control_effort"}
}

func (c *ControlEffort) Name() string { return c.name }

func (c *ControlEffort) Observe(t, measure, output float64) {
	c.sum += math.Abs(output)
	c.samples++
}

func (c *ControlEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *ControlEffort) Reset() {
	c.sum = 0
	c.samples = 0
}

// Overshoot reports the peak excursion of the measurement past the
// setpoint, in measurement units. Zero means the setpoint was never
// crossed from below.
type Overshoot struct {
	name     string
	setpoint float64
	peak     float64
}

func NewOvershoot(setpoint float64) *Overshoot {
	return &Overshoot{name: "overshoot", setpoint: setpoint}
}

func (o *Overshoot) Name() string { return o.name }

func (o *Overshoot) Observe(t, measure, output float64) {
	if over := measure - o.setpoint; over > o.peak {
		o.peak = over
	}
}

func (o *Overshoot) Value() float64 { return o.peak }

func (o *Overshoot) Reset() { o.peak = 0 }

// SettlingTime reports the last time the measurement sat outside a
// tolerance band around the setpoint. A run that never enters the band
// reports its final violation time.
type SettlingTime struct {
	name     string
	setpoint float64
	band     float64
	lastExit float64
}

func NewSettlingTime(setpoint, band float64) *SettlingTime {
	return &SettlingTime{name: "settling_time", setpoint: setpoint, band: band}
}

func (s *SettlingTime) Name() string { return s.name }

func (s *SettlingTime) Observe(t, measure, output float64) {
	if math.Abs(measure-s.setpoint) > s.band {
		s.lastExit = t
	}
}

func (s *SettlingTime) Value() float64 { return s.lastExit }

func (s *SettlingTime) Reset() { s.lastExit = 0 }
