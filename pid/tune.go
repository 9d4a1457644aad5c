package pid

import "fmt"

// TuneMode selects which Ziegler-Nichols closed-loop rule Tune applies.
type TuneMode string

const (
	TuneP   TuneMode = "P"
	TunePI  TuneMode = "PI"
	TunePID TuneMode = "PID"
)

// Tune derives controller constants from the ultimate gain ku and the
// oscillation period tu observed at marginal stability, using the
// classic Ziegler-Nichols table. The returned map holds "kp" and, where
// the mode defines them, "ki", "kd", "ti", "td"; keys a mode does not
// define are absent, not zero. ku and tu must be positive.
func Tune(mode TuneMode, ku, tu float64) (map[string]float64, error) {
	if ku <= 0 {
		return nil, fmt.Errorf("ku must be positive, got %f", ku)
	}
	if tu <= 0 {
		return nil, fmt.Errorf("tu must be positive, got %f", tu)
	}

	switch mode {
	case TuneP:
		return map[string]float64{"kp": 0.5 * ku}, nil
	case TunePI:
		kp := 0.45 * ku
		ti := tu / 1.2
		return map[string]float64{"kp": kp, "ki": kp / ti, "ti": ti}, nil
	case TunePID:
		kp := 0.6 * ku
		ti := tu / 2
		td := tu / 8
		return map[string]float64{
			"kp": kp,
			"ki": kp / ti,
			"kd": kp * td,
			"ti": ti,
			"td": td,
		}, nil
	default:
		return nil, fmt.Errorf("unknown tuning mode: %q", mode)
	}
}
