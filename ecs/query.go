package ecs

import (
	"sort"
	"strings"
)

// Query is a declarative (required, excluded) component filter over
// archetypes. Build one with World.Query, constrain it with With and
// Without, then drain it through Each, Count, or First.
//
// A query with no With keys matches nothing: scanning the whole world
// unqualified is almost always a bug, so opting in requires stating the
// required set explicitly.
type Query struct {
	world   *World
	with    []string
	without []string
}

// Query starts a new query against the world.
func (w *World) Query() *Query {
	return &Query{world: w}
}

// With adds required component keys. An archetype matches only if it carries
// every required key (subset match: With("a") matches {a} and {a, b}).
func (q *Query) With(keys ...string) *Query {
	q.with = append(q.with, keys...)
	return q
}

// Without adds excluded component keys. An archetype matches only if it
// carries none of them.
func (q *Query) Without(keys ...string) *Query {
	q.without = append(q.without, keys...)
	return q
}

// match resolves the query to its archetype list, consulting the world's
// query cache first. Planning walks the smallest reverse-index bucket among
// the required keys and filters by mask. The cache is cleared wholesale on
// any structural mutation, so a cached list is always current.
func (q *Query) match() []*Archetype {
	if len(q.with) == 0 {
		return nil
	}
	w := q.world
	key := q.cacheKey()
	if cached, ok := w.queryCache[key]; ok {
		return cached
	}
	var matched []*Archetype
	withMask, known := w.components.maskLookup(q.with)
	if known {
		withoutMask, _ := w.components.maskLookup(q.without)
		bucket := w.index[q.with[0]]
		for _, k := range q.with[1:] {
			if b := w.index[k]; len(b) < len(bucket) {
				bucket = b
			}
		}
		for _, a := range bucket {
			if a.mask.ContainsAll(withMask) && a.mask.ContainsNone(withoutMask) {
				matched = append(matched, a)
			}
		}
	}
	w.queryCache[key] = matched
	return matched
}

// cacheKey normalizes the query to "+k" and "-k" terms in sorted order, so
// equivalent queries share one cache entry.
func (q *Query) cacheKey() string {
	terms := make([]string, 0, len(q.with)+len(q.without))
	for _, k := range q.with {
		terms = append(terms, "+"+k)
	}
	for _, k := range q.without {
		terms = append(terms, "-"+k)
	}
	sort.Strings(terms)
	return strings.Join(terms, "")
}

// Each visits every matching entity, passing the required components
// positionally in With order. The component slice is reused between calls;
// callbacks must not retain it.
//
// The matched archetypes and their rows are snapshotted before the walk, so
// callbacks may freely add, remove, destroy, and create entities: entities
// destroyed or migrated out of the match mid-walk are skipped, and entities
// that start matching mid-walk are only seen by later walks.
func (q *Query) Each(fn func(e Entity, components ...any)) {
	matched := q.match()
	if len(matched) == 0 {
		return
	}
	w := q.world
	withMask, _ := w.components.maskLookup(q.with)
	withoutMask, _ := w.components.maskLookup(q.without)
	kinds := len(w.components.keys)

	snapshots := make([][]EntityId, len(matched))
	for i, a := range matched {
		snapshots[i] = append([]EntityId(nil), a.entities...)
	}

	components := make([]any, len(q.with))
	for _, ids := range snapshots {
		for _, id := range ids {
			rec, ok := w.registry.record(id)
			if !ok {
				continue
			}
			if n := len(w.components.keys); n != kinds {
				// A callback interned new keys; an exclusion unknown when the
				// walk started may now name a real component.
				kinds = n
				withoutMask, _ = w.components.maskLookup(q.without)
			}
			arch := rec.arch
			if !arch.mask.ContainsAll(withMask) || !arch.mask.ContainsNone(withoutMask) {
				continue
			}
			for i, key := range q.with {
				components[i] = arch.columns[key][rec.row]
			}
			fn(Entity{Id: id, world: w}, components...)
		}
	}
}

// Count returns the number of matching entities.
func (q *Query) Count() int {
	total := 0
	for _, a := range q.match() {
		total += a.Len()
	}
	return total
}

// First returns a handle to the first matching entity, or false if the
// query matches nothing.
func (q *Query) First() (Entity, bool) {
	for _, a := range q.match() {
		if a.Len() > 0 {
			return Entity{Id: a.entities[0], world: q.world}, true
		}
	}
	return Entity{}, false
}
