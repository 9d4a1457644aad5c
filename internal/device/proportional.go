package device

import "fmt"

// Proportional is a stateless error-based controller: output is the
// gain times the distance from the setpoint. It is the simplest
// control law that can drive a plant in a loop.
type Proportional struct {
	Setpoint float64
	Gain     float64

	measure float64
}

func NewProportional(setpoint, gain float64) *Proportional {
	return &Proportional{Setpoint: setpoint, Gain: gain}
}

func (p *Proportional) Update(measure float64) float64 {
	p.measure = measure
	return p.Output()
}

func (p *Proportional) Output() float64 {
	return p.Gain * (p.Setpoint - p.measure)
}

func (p *Proportional) String() string {
	return fmt.Sprintf("Proportional: setpoint=%.3f gain=%.3f out=%.3f",
		p.Setpoint, p.Gain, p.Output())
}
