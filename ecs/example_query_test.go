package ecs_test

import (
	"fmt"

	"github.com/plus3/loom/ecs"
)

// ExampleQuery demonstrates filtering entities by required and excluded
// components and iterating the matches.
func ExampleQuery() {
	w := ecs.NewWorld()

	w.NewEntity("name", "scout", "speed", 12)
	w.NewEntity("name", "tank", "speed", 4, "armored", true)
	w.NewEntity("name", "wall", "armored", true)

	w.Query().With("name", "speed").Without("armored").Each(func(e ecs.Entity, components ...any) {
		fmt.Printf("%s moves at %d\n", components[0], components[1])
	})

	fmt.Printf("mobile: %d\n", w.Query().With("speed").Count())
	fmt.Printf("armored: %d\n", w.Query().With("armored").Count())

	// Output:
	// scout moves at 12
	// mobile: 2
	// armored: 2
}
