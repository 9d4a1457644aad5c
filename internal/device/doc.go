// Package device provides small example implementations of the
// [pid.Updatable] contract used for demonstration and closed-loop
// testing:
//
//   - [Heater]: fixed-wattage heat source driven by a knob
//   - [Thermostat]: on/off call-for-heat with optional hysteresis
//   - [Doubler]: passthrough demo, output = 2 * input
//   - [Proportional]: simple error-based controller
//   - [Room]: first-order thermal plant to close a loop against
//
// Devices are thin consumers of the control core: construction,
// Update, and a readable String form.
package device
