package pid

// Updatable is the contract shared by every controllable or sensed
// entity in a control loop: store an input, recompute the output,
// return it. Output re-reads the most recent result without supplying
// new input. Conformance is checked at compile time; a type with no
// output computation simply cannot satisfy the interface.
type Updatable interface {
	Update(input float64) float64
	Output() float64
}
