package device

import "fmt"

// Heater emits its fixed wattage whenever the drive knob is above zero.
type Heater struct {
	Watts float64
	knob  float64
}

func NewHeater(watts float64) *Heater {
	return &Heater{Watts: watts}
}

// Update stores the drive signal and returns the heat output in watts.
func (h *Heater) Update(knob float64) float64 {
	h.knob = knob
	return h.Output()
}

func (h *Heater) Output() float64 {
	if h.knob > 0 {
		return h.Watts
	}
	return 0
}

func (h *Heater) String() string {
	state := "off"
	if h.knob > 0 {
		state = "on"
	}
	return fmt.Sprintf("Heater: %.0fW (%s)", h.Watts, state)
}
