package booster_test

import (
	"fmt"

	"github.com/dkrasov/wrapgrid/booster"
)

// ExampleParseKind decodes a wire letter and round-trips it back through
// String.
func ExampleParseKind() {
	k, err := booster.ParseKind('F')
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(k == booster.FastWheels, k.String())
	// Output:
	// true F
}
