package ecs

import (
	"fmt"
	"sort"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

// World is the root ECS container: the entity registry, the archetype table
// and graph, the per-component reverse index, the query cache, prefab and
// pattern registries, reactive hooks, and named resources. A World is not
// safe for concurrent use; all mutation happens on the calling goroutine.
type World struct {
	registry   *entityRegistry
	components *componentRegistry

	archetypes    map[mask.Mask]*Archetype
	archetypeList []*Archetype
	origin        *Archetype
	index         map[string][]*Archetype

	queryCache map[string][]*Archetype

	hooks     *hookRegistry
	prefabs   map[string]map[string]any
	patterns  map[string][]string
	resources *Resources
}

// NewWorld creates an empty world. The empty signature gets its dedicated
// archetype up front; entities created without components live there.
func NewWorld() *World {
	w := &World{
		registry:   newEntityRegistry(),
		components: newComponentRegistry(),
		archetypes: make(map[mask.Mask]*Archetype),
		index:      make(map[string][]*Archetype),
		queryCache: make(map[string][]*Archetype),
		hooks:      newHookRegistry(),
		prefabs:    make(map[string]map[string]any),
		patterns:   make(map[string][]string),
		resources:  &Resources{},
	}
	w.origin = w.archetypeFor(nil)
	return w
}

// NewEntity creates an entity from (string key, value) pairs:
//
//	e := w.NewEntity("position", Vec2{1, 2}, "health", 100)
//
// The entity starts in the empty archetype and each pair goes through the
// normal add path, so archetype edges warm up and add hooks fire per
// component in argument order. Malformed pairs are a programmer error.
func (w *World) NewEntity(pairs ...any) Entity {
	if len(pairs)%2 != 0 {
		panic(bark.AddTrace(fmt.Errorf("%w: odd argument count %d", ErrComponentPairs, len(pairs))))
	}
	id := w.registry.newId()
	row := w.origin.appendRow(id)
	w.registry.setRecord(id, w.origin, row)
	w.clearQueryCache()
	e := Entity{Id: id, world: w}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(bark.AddTrace(fmt.Errorf("%w: argument %d is %T, not string", ErrComponentPairs, i, pairs[i])))
		}
		e.Add(key, pairs[i+1])
	}
	return e
}

// Entity rehydrates a handle from a raw id. The handle is only usable if the
// id still names a live entity in this world.
func (w *World) Entity(id EntityId) Entity {
	return Entity{Id: id, world: w}
}

// EachEntity visits every live entity, including those carrying no
// components. Intended for debug surfaces; gameplay iteration should go
// through queries.
func (w *World) EachEntity(fn func(e Entity)) {
	for _, a := range w.archetypeList {
		for _, id := range a.entities {
			fn(Entity{Id: id, world: w})
		}
	}
}

// Resources returns the world's named resource set: world-global values that
// belong to no entity (clocks, RNGs, asset handles).
func (w *World) Resources() *Resources {
	return w.resources
}

// Clear destroys all entities and archetypes and resets the id space.
// Prefab, pattern, and hook registrations survive; pattern archetypes are
// recreated on demand.
func (w *World) Clear() {
	w.registry.reset()
	w.components = newComponentRegistry()
	w.archetypes = make(map[mask.Mask]*Archetype)
	w.archetypeList = w.archetypeList[:0]
	w.index = make(map[string][]*Archetype)
	w.origin = w.archetypeFor(nil)
	w.clearQueryCache()
}

// archetypeFor resolves or creates the archetype for a set of component keys.
// Creation registers the archetype in the reverse index for each of its keys
// and invalidates the query cache.
func (w *World) archetypeFor(keys []string) *Archetype {
	signature := canonicalSignature(keys)
	m := w.components.maskFor(signature)
	if a, ok := w.archetypes[m]; ok {
		return a
	}
	a := newArchetype(signature, m)
	w.archetypes[m] = a
	w.archetypeList = append(w.archetypeList, a)
	for _, key := range signature {
		w.index[key] = append(w.index[key], a)
	}
	w.clearQueryCache()
	return a
}

// archetypeAdd returns the archetype reached from a by adding key. Edges are
// cached lazily and one-directional; a hit makes repeated transitions O(1).
func (w *World) archetypeAdd(a *Archetype, key string) *Archetype {
	if a.contains(key) {
		return a
	}
	if target, ok := a.addEdge[key]; ok {
		return target
	}
	signature := make([]string, 0, len(a.signature)+1)
	signature = append(signature, a.signature...)
	signature = append(signature, key)
	target := w.archetypeFor(signature)
	a.addEdge[key] = target
	return target
}

// archetypeRemove returns the archetype reached from a by removing key.
func (w *World) archetypeRemove(a *Archetype, key string) *Archetype {
	if !a.contains(key) {
		return a
	}
	if target, ok := a.removeEdge[key]; ok {
		return target
	}
	signature := make([]string, 0, len(a.signature)-1)
	for _, k := range a.signature {
		if k != key {
			signature = append(signature, k)
		}
	}
	target := w.archetypeFor(signature)
	a.removeEdge[key] = target
	return target
}

// migrate moves an entity from its current archetype to target, carrying
// every shared column value. addedKey, when non-empty, names the one column
// present only in target and receives addedValue. The vacated source row is
// swap-removed and the displaced entity's record, if any, is fixed up.
func (w *World) migrate(id EntityId, rec entityRecord, target *Archetype, addedKey string, addedValue any) {
	row := target.appendRow(id)
	for key, col := range target.columns {
		if key == addedKey {
			col[row] = addedValue
			continue
		}
		col[row] = rec.arch.columns[key][rec.row]
	}
	w.registry.setRecord(id, target, row)
	if moved, swapped := rec.arch.swapRemoveRow(rec.row); swapped {
		w.registry.setRow(moved, rec.row)
	}
}

func (w *World) clearQueryCache() {
	clear(w.queryCache)
}

// canonicalSignature sorts and deduplicates component keys. Signatures are
// canonical so that any key order resolves to the same archetype.
func canonicalSignature(keys []string) []string {
	signature := make([]string, len(keys))
	copy(signature, keys)
	sort.Strings(signature)
	out := signature[:0]
	for i, key := range signature {
		if i > 0 && key == signature[i-1] {
			continue
		}
		out = append(out, key)
	}
	return out
}
