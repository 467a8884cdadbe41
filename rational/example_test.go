package rational_test

import (
	"fmt"

	"github.com/dkrasov/wrapgrid/rational"
)

// ExampleNewFrac demonstrates construction and reduction to lowest terms.
func ExampleNewFrac() {
	r := rational.NewFrac(6, 8)
	fmt.Printf("%d/%d\n", r.Num, r.Den)
	// Output:
	// 3/4
}

// ExampleRational_Floor demonstrates Floor and Ceil on a non-integer
// rational, including the negative case rounding toward -Inf.
func ExampleRational_Floor() {
	r := rational.NewFrac(-7, 2)
	fmt.Println(r.Floor(), r.Ceil())
	// Output:
	// -4 -3
}
