package pid

import "fmt"

// DefaultDt is the timestep used when callers have no cadence of their own.
const DefaultDt = 0.001

// StatefulController tracks setpoint-relative error across updates:
// the current error, the previous error, and the error integrated
// over time. It carries no control law of its own; subtypes decide
// what the output is.
type StatefulController struct {
	Setpoint float64

	dt      float64
	measure float64
	err     float64
	lastErr float64
	sumErr  float64
}

// NewStateful creates a controller driving toward setpoint with a fixed
// timestep. dt must be positive.
func NewStateful(setpoint, dt float64) (*StatefulController, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", dt)
	}
	return &StatefulController{Setpoint: setpoint, dt: dt}, nil
}

// observe runs one tick of error bookkeeping: save the previous error,
// store the measurement, recompute the error, and integrate it.
//
// When the error changes sign relative to the previous tick (a setpoint
// crossing) the accumulator restarts at err*dt instead of accumulating.
// Without the reset the integral keeps growing through an overshoot and
// drives a prolonged overcorrection. An exactly zero error matches
// either sign, so touching the setpoint does not trigger a reset.
func (s *StatefulController) observe(measure float64) {
	s.lastErr = s.err
	s.measure = measure
	s.err = s.Setpoint - measure

	if (s.err > 0 && s.lastErr < 0) || (s.err < 0 && s.lastErr > 0) {
		s.sumErr = s.err * s.dt
	} else {
		s.sumErr += s.err * s.dt
	}
}

// Update stores the measurement, refreshes the error state, and returns
// the output.
func (s *StatefulController) Update(measure float64) float64 {
	s.observe(measure)
	return s.Output()
}

// Output exposes the current error, the minimal observable output of a
// controller with no control law.
func (s *StatefulController) Output() float64 { return s.err }

// Dt returns the fixed timestep.
func (s *StatefulController) Dt() float64 { return s.dt }

// SetDt changes the timestep. dt must be positive.
func (s *StatefulController) SetDt(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", dt)
	}
	s.dt = dt
	return nil
}

// Measure returns the last input supplied via Update.
func (s *StatefulController) Measure() float64 { return s.measure }

// Err returns the current error, Setpoint - Measure.
func (s *StatefulController) Err() float64 { return s.err }

// LastErr returns the error from the previous update.
func (s *StatefulController) LastErr() float64 { return s.lastErr }

// SumErr returns the error integrated over time.
func (s *StatefulController) SumErr() float64 { return s.sumErr }

func (s *StatefulController) String() string {
	return fmt.Sprintf("setpoint=%.3f measure=%.3f err=%.3f sum_err=%.3f",
		s.Setpoint, s.measure, s.err, s.sumErr)
}
