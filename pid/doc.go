// Package pid implements discrete-time feedback controllers.
//
// The package is built around a single update contract: anything that
// accepts an input and recomputes an output satisfies [Updatable].
// [StatefulController] layers setpoint-relative error bookkeeping on top
// of that contract, and [PIDController] extends it with three
// independently gained and clamped terms:
//
//   - proportional: Kp * error
//   - integral:     Ki * accumulated error (with zero-crossing reset)
//   - derivative:   Kd * error slope
//
// # Usage
//
//	ctl, err := pid.NewPID(20.0, pid.DefaultDt) // setpoint, timestep
//	ctl.Kp, ctl.Ki = 1.5, 0.2
//	out := ctl.Update(18.4) // feed a measurement, get a control output
//
// Gains may be derived empirically with [Tune] (Ziegler-Nichols).
//
// Controllers are not safe for concurrent Update calls: each update is a
// read-modify-write over the error accumulator. Serialize access with a
// mutex if a controller is shared across goroutines.
package pid
