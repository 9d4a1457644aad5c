package device

import (
	"fmt"
	"sort"

	"github.com/rickhull/pid-controller-ng/pid"
)

// Params carries named construction values for registry plants.
type Params struct {
	Dt       float64
	Setpoint float64
	Watts    float64
}

var plants = map[string]func(Params) pid.Updatable{
	"room": func(p Params) pid.Updatable {
		return NewRoom(p.Dt)
	},
	"doubler": func(p Params) pid.Updatable {
		return NewDoubler()
	},
	"heater": func(p Params) pid.Updatable {
		return NewHeater(p.Watts)
	},
}

// NewPlant constructs a named demo plant.
func NewPlant(name string, p Params) (pid.Updatable, error) {
	fn, ok := plants[name]
	if !ok {
		return nil, fmt.Errorf("unknown plant: %s", name)
	}
	return fn(p), nil
}

// ListPlants returns the registered plant names, sorted.
func ListPlants() []string {
	names := make([]string, 0, len(plants))
	for name := range plants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
