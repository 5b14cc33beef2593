package ecs

import "github.com/kamstrup/intmap"

// entityRecord locates a live entity: the archetype holding it and its row
// within that archetype's columns.
type entityRecord struct {
	arch *Archetype
	row  int
}

// entityRegistry allocates, recycles, and validates entity identifiers.
// Records are keyed by the full 64-bit id, so a stale handle (old generation
// on a recycled slot) simply misses the map.
type entityRegistry struct {
	records     *intmap.Map[EntityId, entityRecord]
	generations []uint32
	free        []uint32
	nextSlot    uint32
}

func newEntityRegistry() *entityRegistry {
	return &entityRegistry{
		records: intmap.New[EntityId, entityRecord](256),
	}
}

// newId pops a recycled slot if one exists, bumping its generation, or
// allocates the next sequential slot at generation zero.
func (r *entityRegistry) newId() EntityId {
	if n := len(r.free); n > 0 {
		slot := r.free[n-1]
		r.free = r.free[:n-1]
		r.generations[slot]++
		return NewEntityId(slot, r.generations[slot])
	}
	slot := r.nextSlot
	r.nextSlot++
	r.generations = append(r.generations, 0)
	return NewEntityId(slot, 0)
}

func (r *entityRegistry) record(id EntityId) (entityRecord, bool) {
	return r.records.Get(id)
}

func (r *entityRegistry) setRecord(id EntityId, arch *Archetype, row int) {
	r.records.Put(id, entityRecord{arch: arch, row: row})
}

// setRow updates only the row of an existing record. Used after swap-remove
// moves the last row of an archetype into a vacated slot.
func (r *entityRegistry) setRow(id EntityId, row int) {
	rec, ok := r.records.Get(id)
	if !ok {
		return
	}
	rec.row = row
	r.records.Put(id, rec)
}

// release frees the id for reuse. The generation is bumped at the next
// allocation, not here; until then the deleted record alone makes the old
// id fail valid().
func (r *entityRegistry) release(id EntityId) {
	r.records.Del(id)
	r.free = append(r.free, id.Slot())
}

func (r *entityRegistry) valid(id EntityId) bool {
	_, ok := r.records.Get(id)
	return ok
}

func (r *entityRegistry) liveCount() int {
	return r.records.Len()
}

func (r *entityRegistry) reset() {
	r.records.Clear()
	r.generations = r.generations[:0]
	r.free = r.free[:0]
	r.nextSlot = 0
}
