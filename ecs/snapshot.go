package ecs

// SnapshotEntity is one live entity's id and full component map.
type SnapshotEntity struct {
	Id         EntityId
	Components map[string]any
}

// Snapshot is an in-memory dump of a world's entity state: the id space
// (next slot, per-slot generations, free list) and every live entity's
// components. Component values are carried as-is, without copying; values
// holding non-serializable resources are the caller's responsibility, and
// wire encoding (JSON, MessagePack, ...) is the caller's choice.
type Snapshot struct {
	NextSlot    uint32
	Generations []uint32
	FreeSlots   []uint32
	Entities    []SnapshotEntity
}

// Serialize dumps the world's entity state. Entities appear in archetype
// creation order, rows in storage order, which is deterministic absent
// mutation. Prefabs, patterns, hooks, systems, and resources are not part
// of the snapshot; they are registrations, not state.
func (w *World) Serialize() *Snapshot {
	snap := &Snapshot{
		NextSlot:    w.registry.nextSlot,
		Generations: append([]uint32(nil), w.registry.generations...),
		FreeSlots:   append([]uint32(nil), w.registry.free...),
		Entities:    make([]SnapshotEntity, 0, w.registry.liveCount()),
	}
	for _, a := range w.archetypeList {
		for row, id := range a.entities {
			components := make(map[string]any, len(a.signature))
			for _, key := range a.signature {
				components[key] = a.columns[key][row]
			}
			snap.Entities = append(snap.Entities, SnapshotEntity{Id: id, Components: components})
		}
	}
	return snap
}

// Deserialize clears the world and rebuilds it from a snapshot. The id
// space is restored exactly, so handles serialized before the dump resolve
// again and stale generations stay stale. Each entity is re-created through
// the standard add path, which re-fires add hooks; wrap the call with
// SuspendHooks to load silently:
//
//	w.SuspendHooks(true)
//	w.Deserialize(snap)
//	w.SuspendHooks(false)
func (w *World) Deserialize(snap *Snapshot) {
	w.Clear()
	w.registry.nextSlot = snap.NextSlot
	w.registry.generations = append(w.registry.generations[:0], snap.Generations...)
	w.registry.free = append(w.registry.free[:0], snap.FreeSlots...)

	for _, ent := range snap.Entities {
		row := w.origin.appendRow(ent.Id)
		w.registry.setRecord(ent.Id, w.origin, row)
		e := Entity{Id: ent.Id, world: w}
		for _, key := range sortedKeys(ent.Components) {
			e.Add(key, ent.Components[key])
		}
	}
	w.clearQueryCache()
}
