package config

var Presets = map[string]map[string]*Config{
	"room": {
		"comfort": {
			Plant: "room", Setpoint: 20.0, Dt: 1.0, Duration: 3600.0,
			Gains:  GainsConfig{Kp: 0.5, Ki: 0.005},
			Limits: LimitsConfig{Output: []float64{0, 1}},
			Watts:  2000.0,
		},
		"cold-start": {
			Plant: "room", Setpoint: 22.0, Dt: 1.0, Duration: 7200.0,
			Gains:  GainsConfig{Kp: 0.8, Ki: 0.01, Kd: 0.1},
			Limits: LimitsConfig{Output: []float64{0, 1}},
			Watts:  3000.0,
		},
		"gentle": {
			Plant: "room", Setpoint: 18.0, Dt: 5.0, Duration: 7200.0,
			Gains:  GainsConfig{Kp: 0.2, Ki: 0.002},
			Limits: LimitsConfig{Output: []float64{0, 0.5}},
			Watts:  2000.0,
		},
	},
	"doubler": {
		"demo": {
			Plant: "doubler", Setpoint: 10.0, Dt: 0.001, Duration: 0.1,
			Gains: GainsConfig{Kp: 0.4},
		},
	},
}

func GetPreset(plant, preset string) *Config {
	plantPresets, ok := Presets[plant]
	if !ok {
		return nil
	}
	cfg, ok := plantPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(plant string) []string {
	plantPresets, ok := Presets[plant]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(plantPresets))
	for name := range plantPresets {
		names = append(names, name)
	}
	return names
}
