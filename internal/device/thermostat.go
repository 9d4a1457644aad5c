package device

import "fmt"

// Thermostat is an on/off call-for-heat controller. With a zero
// hysteresis it calls for heat exactly when the temperature is below
// the setpoint; a positive hysteresis holds the last decision inside
// the band [Setpoint-Hysteresis, Setpoint+Hysteresis] to keep a relay
// from chattering.
type Thermostat struct {
	Setpoint   float64
	Hysteresis float64

	measure float64
	heating bool
}

func NewThermostat(setpoint, hysteresis float64) *Thermostat {
	return &Thermostat{Setpoint: setpoint, Hysteresis: hysteresis}
}

// Update stores the temperature and returns 1 while calling for heat,
// 0 otherwise.
func (t *Thermostat) Update(temp float64) float64 {
	t.measure = temp
	switch {
	case temp < t.Setpoint-t.Hysteresis:
		t.heating = true
	case temp >= t.Setpoint+t.Hysteresis:
		t.heating = false
	}
	return t.Output()
}

func (t *Thermostat) Output() float64 {
	if t.heating {
		return 1
	}
	return 0
}

func (t *Thermostat) String() string {
	state := "idle"
	if t.heating {
		state = "heat"
	}
	return fmt.Sprintf("Thermostat: setpoint=%.1f measure=%.1f (%s)",
		t.Setpoint, t.measure, state)
}
