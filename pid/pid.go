package pid

import "fmt"

// Default gains: pure proportional action with unit gain.
const (
	DefaultKp = 1.0
	DefaultKi = 0.0
	DefaultKd = 0.0
)

// PIDController computes a bounded control output from the error state
// of an embedded StatefulController. Gains are freely mutable between
// updates; each term and the final output may carry an optional clamp.
type PIDController struct {
	StatefulController

	Kp, Ki, Kd float64

	// Per-term and output clamps; nil leaves a value unclamped.
	// Build ranges with NewRange so lo <= hi is enforced.
	PRange, IRange, DRange, ORange *Range

	proportion float64
	integral   float64
	derivative float64
	output     float64
}

// NewPID creates a PID controller driving toward setpoint with a fixed
// timestep. dt must be positive.
func NewPID(setpoint, dt float64) (*PIDController, error) {
	s, err := NewStateful(setpoint, dt)
	if err != nil {
		return nil, err
	}
	return &PIDController{
		StatefulController: *s,
		Kp:                 DefaultKp,
		Ki:                 DefaultKi,
		Kd:                 DefaultKd,
	}, nil
}

// Update refreshes the error state from the measurement, recomputes the
// three terms, clamps each into its range when one is set, and returns
// the clamped sum.
func (p *PIDController) Update(measure float64) float64 {
	p.observe(measure)

	p.proportion = clamp(p.PRange, p.Kp*p.err)
	p.integral = clamp(p.IRange, p.Ki*p.sumErr)
	p.derivative = clamp(p.DRange, p.Kd*(p.err-p.lastErr)/p.dt)

	p.output = clamp(p.ORange, p.proportion+p.integral+p.derivative)
	return p.output
}

// Output returns the most recently computed control output.
func (p *PIDController) Output() float64 { return p.output }

// Proportion returns the proportional term from the last update.
func (p *PIDController) Proportion() float64 { return p.proportion }

// Integral returns the integral term from the last update.
func (p *PIDController) Integral() float64 { return p.integral }

// Derivative returns the derivative term from the last update.
func (p *PIDController) Derivative() float64 { return p.derivative }

func (p *PIDController) String() string {
	return fmt.Sprintf("kp=%.3f ki=%.3f kd=%.3f p=%.3f i=%.3f d=%.3f out=%.3f",
		p.Kp, p.Ki, p.Kd, p.proportion, p.integral, p.derivative, p.output)
}
