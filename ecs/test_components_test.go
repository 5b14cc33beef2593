package ecs_test

import (
	"sort"

	"github.com/plus3/loom/ecs"
)

// Common component keys used across the test suite. Values are arbitrary
// user data; the tests mix plain scalars with table-shaped values.
const (
	position = "position"
	velocity = "velocity"
	health   = "health"
	shield   = "shield"
	tag      = "tag"
)

func vec(x, y float64) map[string]any {
	return map[string]any{"x": x, "y": y}
}

// collectTags drains a query over the tag component into a sorted slice.
func collectTags(w *ecs.World) []int {
	var tags []int
	w.Query().With(tag).Each(func(e ecs.Entity, components ...any) {
		tags = append(tags, components[0].(int))
	})
	sort.Ints(tags)
	return tags
}
