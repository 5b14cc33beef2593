/*
Package ecs provides an archetype-based Entity-Component-System for games
and simulations.

Entities with the same component signature share an archetype, which stores
each component in its own contiguous column for cache-friendly iteration.
Components are identified by opaque string keys and carry arbitrary values;
the core stores and retrieves them without interpretation.

Core concepts:

  - Entity: a generation-stamped 64-bit handle to a game object.
  - Component: a (key, value) pair attached to an entity.
  - Archetype: the set of entities sharing one component signature.
  - Query: a (required, excluded) component filter over archetypes.
  - System: a callback bound to a query, dispatched each tick.

Basic usage:

	w := ecs.NewWorld()

	player := w.NewEntity(
		"position", map[string]any{"x": 0.0, "y": 0.0},
		"health", 100,
	)

	w.Query().With("position", "health").Each(func(e ecs.Entity, components ...any) {
		pos := components[0].(map[string]any)
		pos["x"] = pos["x"].(float64) + 1
	})

	player.Destroy()

Structural mutation (adding or removing components) migrates the entity
between archetypes through a lazily cached archetype graph, so repeated
shapes settle into O(1) transitions. Queries compile to archetype lists and
are cached until the next structural change.

A Scheduler drives systems in priority order with optional named groups and
cooperative tasks. Worlds also carry prefab and pattern registries, reactive
add/remove hooks, snapshot serialization, and a stats surface for debug
overlays (see the debugui subpackage).

Worlds are single-threaded: all mutation happens on the calling goroutine.
*/
package ecs
