package device

import "fmt"

// Default room parameters: a small, leaky space that a 1.5kW heater
// can warm at a visible rate.
const (
	DefaultRoomTemp     = 15.0
	DefaultAmbient      = 5.0
	DefaultHeatCapacity = 50_000.0 // J per degree C
	DefaultLoss         = 100.0    // W per degree C above ambient
)

// Room is a first-order thermal plant: heat input raises the
// temperature against a leak toward ambient. Each Update advances one
// timestep of Dt seconds.
type Room struct {
	TempC        float64
	AmbientC     float64
	HeatCapacity float64
	Loss         float64
	Dt           float64

	heatW float64
}

func NewRoom(dt float64) *Room {
	return &Room{
		TempC:        DefaultRoomTemp,
		AmbientC:     DefaultAmbient,
		HeatCapacity: DefaultHeatCapacity,
		Loss:         DefaultLoss,
		Dt:           dt,
	}
}

// Update applies heatW watts for one timestep and returns the new
// temperature.
func (r *Room) Update(heatW float64) float64 {
	r.heatW = heatW
	net := heatW - r.Loss*(r.TempC-r.AmbientC)
	r.TempC += net * r.Dt / r.HeatCapacity
	return r.Output()
}

func (r *Room) Output() float64 { return r.TempC }

func (r *Room) String() string {
	return fmt.Sprintf("Room: %.2fC (ambient %.1fC, %.0fW in)",
		r.TempC, r.AmbientC, r.heatW)
}
