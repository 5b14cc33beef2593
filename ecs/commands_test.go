package ecs_test

import (
	"testing"

	"github.com/plus3/loom/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsFlush(t *testing.T) {
	w := ecs.NewWorld()
	c := ecs.NewCommands()

	e := w.NewEntity(health, 10)
	doomed := w.NewEntity(tag, 1)

	c.Add(e.Id, position, vec(3, 4))
	c.Remove(e.Id, health)
	c.Destroy(doomed.Id)
	c.Spawn(tag, 2)

	// Nothing happens until the flush.
	assert.True(t, doomed.Valid())
	assert.False(t, e.Has(position))

	c.Flush(w)

	assert.False(t, doomed.Valid())
	assert.True(t, e.Has(position))
	assert.False(t, e.Has(health))
	assert.Equal(t, 1, w.Query().With(tag).Count())
}

func TestCommandsDroppedForDestroyedEntities(t *testing.T) {
	w := ecs.NewWorld()
	c := ecs.NewCommands()

	e := w.NewEntity(health, 10)
	c.Destroy(e.Id)
	c.Add(e.Id, position, vec(0, 0))
	c.Flush(w)

	assert.False(t, e.Valid())
	assert.Equal(t, 0, w.Query().With(position).Count())
}

func TestCommandsSurviveMigration(t *testing.T) {
	w := ecs.NewWorld()
	c := ecs.NewCommands()

	e := w.NewEntity(health, 10)
	c.Add(e.Id, shield, 5)

	// A migration between queue and flush does not strand the operation;
	// ids are stable across archetype moves.
	e.Add(position, vec(0, 0))
	c.Flush(w)

	v, ok := e.Get(shield)
	require.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestCommandsDefer(t *testing.T) {
	w := ecs.NewWorld()
	c := ecs.NewCommands()

	var order []string
	c.Spawn(tag, 1)
	c.Defer(func() { order = append(order, "deferred") })
	c.Flush(w)
	order = append(order, "after")

	assert.Equal(t, []string{"deferred", "after"}, order)
	assert.Equal(t, 1, w.Query().With(tag).Count())

	// The buffer reset: a second flush is a no-op.
	c.Flush(w)
	assert.Equal(t, 1, w.Query().With(tag).Count())
}

func TestWorldResources(t *testing.T) {
	w := ecs.NewWorld()

	w.Resources().Set("gravity", 9.81)
	g, ok := w.Resources().Get("gravity")
	require.True(t, ok)
	assert.Equal(t, 9.81, g)

	w.Resources().Set("gravity", 1.62)
	g, _ = w.Resources().Get("gravity")
	assert.Equal(t, 1.62, g)

	w.Resources().Remove("gravity")
	_, ok = w.Resources().Get("gravity")
	assert.False(t, ok)
	assert.Equal(t, 0, w.Resources().Len())
}
