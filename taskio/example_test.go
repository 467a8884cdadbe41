package taskio_test

import (
	"fmt"

	"github.com/dkrasov/wrapgrid/taskio"
)

// ExampleParseDescriptor decodes a single-line task description into its
// polygon, start point, and booster placements.
func ExampleParseDescriptor() {
	desc, err := taskio.ParseDescriptor("(0,0),(3,0),(3,3),(0,3)#(0,0)##F(2,0)")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(desc.Polygon), desc.Start, len(desc.Boosters))
	// Output:
	// 4 {0 0} 1
}
