package ecs

// Commands buffers structural operations for execution at a chosen point,
// typically the end of a frame. Systems that want to batch their mutations
// instead of applying them mid-iteration queue them here and flush once.
// Entity ids are stable across archetype migrations, so queued operations
// against an entity that has since moved still apply; operations against an
// entity that has since been destroyed are dropped.
type Commands struct {
	spawns   [][]any
	destroys []EntityId
	adds     []addCommand
	removes  []removeCommand
	defers   []func()
}

type addCommand struct {
	entity EntityId
	key    string
	value  any
}

type removeCommand struct {
	entity EntityId
	key    string
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity creation from (string key, value) pairs.
func (c *Commands) Spawn(pairs ...any) {
	c.spawns = append(c.spawns, pairs)
}

// Destroy queues an entity destruction.
func (c *Commands) Destroy(entity EntityId) {
	c.destroys = append(c.destroys, entity)
}

// Add queues a component addition.
func (c *Commands) Add(entity EntityId, key string, value any) {
	c.adds = append(c.adds, addCommand{entity: entity, key: key, value: value})
}

// Remove queues a component removal.
func (c *Commands) Remove(entity EntityId, key string) {
	c.removes = append(c.removes, removeCommand{entity: entity, key: key})
}

// Defer queues an arbitrary function, run after all structural operations.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued operations to the world and resets the buffer.
// Order: destroys, removes, adds, spawns, then deferred functions.
func (c *Commands) Flush(w *World) {
	for _, id := range c.destroys {
		w.Entity(id).Destroy()
	}
	for _, cmd := range c.removes {
		w.Entity(cmd.entity).Remove(cmd.key)
	}
	for _, cmd := range c.adds {
		w.Entity(cmd.entity).Add(cmd.key, cmd.value)
	}
	for _, pairs := range c.spawns {
		w.NewEntity(pairs...)
	}
	for _, fn := range c.defers {
		fn()
	}
	c.spawns = c.spawns[:0]
	c.destroys = c.destroys[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
