package device

import "fmt"

// Doubler returns twice its input. It exists to demonstrate the
// smallest possible Updatable implementation.
type Doubler struct {
	input float64
}

func NewDoubler() *Doubler {
	return &Doubler{}
}

func (d *Doubler) Update(input float64) float64 {
	d.input = input
	return d.Output()
}

func (d *Doubler) Output() float64 { return 2 * d.input }

func (d *Doubler) String() string {
	return fmt.Sprintf("Doubler: %.3f -> %.3f", d.input, d.Output())
}
