package ecs

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// RegisterPrefab registers a named component bundle. Spawn instantiates it;
// the template values are deep-copied per spawn, so instances never alias
// the template or each other through map- or slice-shaped values.
func (w *World) RegisterPrefab(name string, components map[string]any) {
	tmpl := make(map[string]any, len(components))
	for key, value := range components {
		tmpl[key] = deepCopyValue(value)
	}
	w.prefabs[name] = tmpl
}

// Spawn creates an entity from a registered prefab, then applies the
// optional override maps on top. Every component goes through the normal add
// path in lexical key order, so add hooks fire per component; an override of
// a template key overwrites in place without re-firing. Spawning an
// unregistered name is a programmer error.
func (w *World) Spawn(name string, overrides ...map[string]any) Entity {
	tmpl, ok := w.prefabs[name]
	if !ok {
		panic(bark.AddTrace(fmt.Errorf("%w: %q", ErrUnknownPrefab, name)))
	}
	e := w.NewEntity()
	for _, key := range sortedKeys(tmpl) {
		e.Add(key, deepCopyValue(tmpl[key]))
	}
	for _, override := range overrides {
		for _, key := range sortedKeys(override) {
			e.Add(key, deepCopyValue(override[key]))
		}
	}
	return e
}

// RegisterPattern records a named archetype signature and creates its
// archetype up front. Patterns answer strict-membership queries: only
// entities whose signature equals the pattern's, not supersets.
func (w *World) RegisterPattern(name string, keys ...string) {
	signature := canonicalSignature(keys)
	w.patterns[name] = signature
	w.archetypeFor(signature)
}

// Pattern returns handles for the entities currently in the pattern's exact
// archetype. Contrast with Query, which matches subset-wise. Asking for an
// unregistered name is a programmer error.
func (w *World) Pattern(name string) []Entity {
	signature, ok := w.patterns[name]
	if !ok {
		panic(bark.AddTrace(fmt.Errorf("%w: %q", ErrUnknownPattern, name)))
	}
	a := w.archetypeFor(signature)
	out := make([]Entity, len(a.entities))
	for i, id := range a.entities {
		out[i] = Entity{Id: id, world: w}
	}
	return out
}

// deepCopyValue copies table-shaped values (string-keyed maps and slices)
// recursively; everything else is returned as-is. This is the aliasing
// boundary for prefab instantiation.
func deepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = deepCopyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return value
	}
}
