package ecs

import "sort"

// EntityId encodes both the generation (upper 32 bits) and the registry slot (lower 32 bits).
// The generation detects use-after-destroy: a recycled slot gets a new generation, so
// handles created before the recycle no longer resolve.
type EntityId uint64

// NewEntityId creates an EntityId from a registry slot and generation
func NewEntityId(slot uint32, generation uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(slot))
}

// Slot extracts the registry slot from the entity ID
func (e EntityId) Slot() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Entity is a cheap, copyable handle to an entity in a World.
// The zero Entity is invalid; all operations on it are no-ops.
type Entity struct {
	Id    EntityId
	world *World
}

// Valid reports whether the handle still refers to a live entity.
// A handle goes stale when the entity is destroyed, even if the
// registry slot has since been recycled for a new entity.
func (e Entity) Valid() bool {
	if e.world == nil {
		return false
	}
	return e.world.registry.valid(e.Id)
}

// Has reports whether the entity currently carries the component key.
func (e Entity) Has(key string) bool {
	if e.world == nil {
		return false
	}
	rec, ok := e.world.registry.record(e.Id)
	if !ok {
		return false
	}
	return rec.arch.contains(key)
}

// Get returns the component value for key, or (nil, false) if the entity
// is invalid or does not carry the component.
func (e Entity) Get(key string) (any, bool) {
	if e.world == nil {
		return nil, false
	}
	rec, ok := e.world.registry.record(e.Id)
	if !ok {
		return nil, false
	}
	col, ok := rec.arch.columns[key]
	if !ok {
		return nil, false
	}
	return col[rec.row], true
}

// Components returns the entity's component keys in signature order.
// Returns nil for invalid handles.
func (e Entity) Components() []string {
	if e.world == nil {
		return nil
	}
	rec, ok := e.world.registry.record(e.Id)
	if !ok {
		return nil
	}
	keys := make([]string, len(rec.arch.signature))
	copy(keys, rec.arch.signature)
	return keys
}

// Add attaches a component to the entity, migrating it to the archetype
// reached by adding key. If the entity already carries key, the value is
// overwritten in place: no migration happens and no add hooks fire.
// Otherwise the move invalidates the query cache and fires add hooks for key.
// Adding to an invalid handle is a no-op.
func (e Entity) Add(key string, value any) {
	w := e.world
	if w == nil {
		return
	}
	rec, ok := w.registry.record(e.Id)
	if !ok {
		return
	}
	if col, present := rec.arch.columns[key]; present {
		col[rec.row] = value
		return
	}
	target := w.archetypeAdd(rec.arch, key)
	w.migrate(e.Id, rec, target, key, value)
	w.clearQueryCache()
	w.hooks.fireAdd(key, e, value)
}

// Remove detaches a component from the entity, migrating it to the archetype
// reached by removing key. Removing an absent key is a no-op and fires nothing.
// On removal the query cache is invalidated and remove hooks fire with the
// removed value.
func (e Entity) Remove(key string) {
	w := e.world
	if w == nil {
		return
	}
	rec, ok := w.registry.record(e.Id)
	if !ok {
		return
	}
	col, present := rec.arch.columns[key]
	if !present {
		return
	}
	removed := col[rec.row]
	target := w.archetypeRemove(rec.arch, key)
	w.migrate(e.Id, rec, target, "", nil)
	w.clearQueryCache()
	w.hooks.fireRemove(key, e, removed)
}

// Destroy removes the entity from the world. Remove hooks fire for every
// component it carries, in signature order, while the handle is still valid.
// The registry slot then returns to the free list and its generation is
// bumped when the slot is reused, so existing handles to this entity stop
// resolving. Destroying an invalid
// handle is a no-op.
func (e Entity) Destroy() {
	w := e.world
	if w == nil {
		return
	}
	rec, ok := w.registry.record(e.Id)
	if !ok {
		return
	}
	if w.hooks.hasRemoveHooks() {
		sig := rec.arch.signature
		keys := make([]string, len(sig))
		copy(keys, sig)
		values := make([]any, len(keys))
		for i, key := range keys {
			values[i] = rec.arch.columns[key][rec.row]
		}
		for i, key := range keys {
			w.hooks.fireRemove(key, e, values[i])
		}
		// Hooks may have mutated the world; refresh before touching rows.
		rec, ok = w.registry.record(e.Id)
		if !ok {
			return
		}
	}
	if moved, swapped := rec.arch.swapRemoveRow(rec.row); swapped {
		w.registry.setRow(moved, rec.row)
	}
	w.registry.release(e.Id)
	w.clearQueryCache()
}

// sortedKeys returns the keys of a component map in lexical order, so
// operations that walk a map fire hooks deterministically.
func sortedKeys(components map[string]any) []string {
	keys := make([]string, 0, len(components))
	for key := range components {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
