package ecs

import "github.com/TheBitDrifter/mask"

// Archetype holds every entity that shares exactly one component signature.
// Each component is stored in its own contiguous column (struct-of-arrays),
// indexed by the same row as the entity-id array.
type Archetype struct {
	signature  []string
	mask       mask.Mask
	entities   []EntityId
	columns    map[string][]any
	addEdge    map[string]*Archetype
	removeEdge map[string]*Archetype
}

// newArchetype creates an empty archetype for the given canonical signature.
// The signature must already be sorted and duplicate-free.
func newArchetype(signature []string, m mask.Mask) *Archetype {
	a := &Archetype{
		signature:  signature,
		mask:       m,
		columns:    make(map[string][]any, len(signature)),
		addEdge:    make(map[string]*Archetype),
		removeEdge: make(map[string]*Archetype),
	}
	for _, key := range signature {
		a.columns[key] = nil
	}
	return a
}

// Signature returns the sorted component keys identifying this archetype.
func (a *Archetype) Signature() []string {
	keys := make([]string, len(a.signature))
	copy(keys, a.signature)
	return keys
}

// Len returns the number of entities currently stored.
func (a *Archetype) Len() int {
	return len(a.entities)
}

func (a *Archetype) contains(key string) bool {
	_, ok := a.columns[key]
	return ok
}

// appendRow appends the entity with zeroed component slots and returns the
// new row. Callers fill the columns before the row becomes observable.
func (a *Archetype) appendRow(id EntityId) int {
	a.entities = append(a.entities, id)
	for key := range a.columns {
		a.columns[key] = append(a.columns[key], nil)
	}
	return len(a.entities) - 1
}

// swapRemoveRow removes the row by moving the last row into its place.
// Returns the entity that was moved, if any; the caller must update that
// entity's registry record with its new row. The vacated last slot in every
// column is cleared so released values do not linger.
func (a *Archetype) swapRemoveRow(row int) (EntityId, bool) {
	last := len(a.entities) - 1
	var moved EntityId
	swapped := row != last
	if swapped {
		moved = a.entities[last]
		a.entities[row] = moved
		for key := range a.columns {
			a.columns[key][row] = a.columns[key][last]
		}
	}
	a.entities[last] = 0
	a.entities = a.entities[:last]
	for key := range a.columns {
		a.columns[key][last] = nil
		a.columns[key] = a.columns[key][:last]
	}
	return moved, swapped
}
