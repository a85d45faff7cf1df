package interp_test

import (
	"fmt"

	"github.com/GeoffIX/PoserLib/host"
	"github.com/GeoffIX/PoserLib/interp"
)

// ExampleEstimate evaluates a two-point keyed operation, which is linear
// between the keys and flat outside them.
func ExampleEstimate() {
	points := []host.ControlPoint{{Key: 0, Value: 0}, {Key: 1, Value: 90}}

	for _, x := range []float64{-1, 0.25, 0.5, 2} {
		fmt.Printf("%.2f -> %.2f\n", x, interp.Estimate(points, x))
	}

	// Output:
	// -1.00 -> 0.00
	// 0.25 -> 22.50
	// 0.50 -> 45.00
	// 2.00 -> 90.00
}
