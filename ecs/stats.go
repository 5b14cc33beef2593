package ecs

import "time"

// ArchetypeStats describes one archetype for the debug surface.
type ArchetypeStats struct {
	Signature   []string
	EntityCount int
}

// Stats is a point-in-time summary of a world's storage.
type Stats struct {
	EntityCount        int
	ArchetypeCount     int
	PrefabCount        int
	PatternCount       int
	ResourceCount      int
	ArchetypeBreakdown []ArchetypeStats
}

// CollectStats gathers world storage statistics. Cheap enough to call every
// frame from a debug overlay.
func (w *World) CollectStats() Stats {
	stats := Stats{
		EntityCount:        w.registry.liveCount(),
		ArchetypeCount:     len(w.archetypeList),
		PrefabCount:        len(w.prefabs),
		PatternCount:       len(w.patterns),
		ResourceCount:      w.resources.Len(),
		ArchetypeBreakdown: make([]ArchetypeStats, 0, len(w.archetypeList)),
	}
	for _, a := range w.archetypeList {
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			Signature:   a.Signature(),
			EntityCount: a.Len(),
		})
	}
	return stats
}

// SystemStats describes one system's last dispatch.
type SystemStats struct {
	Priority int
	Group    string
	Enabled  bool
	LastRun  time.Duration
}

// SchedulerStats is a point-in-time summary of a scheduler.
type SchedulerStats struct {
	SystemCount int
	GroupCount  int
	Systems     []SystemStats
}

// CollectStats gathers scheduler statistics, covering ungrouped and grouped
// systems in dispatch order.
func (s *Scheduler) CollectStats() SchedulerStats {
	stats := SchedulerStats{
		GroupCount: len(s.groups),
	}
	for _, sys := range s.systems {
		stats.Systems = append(stats.Systems, systemStats(sys, ""))
	}
	for _, g := range s.groups {
		for _, sys := range g.systems {
			stats.Systems = append(stats.Systems, systemStats(sys, g.Name))
		}
	}
	stats.SystemCount = len(stats.Systems)
	return stats
}

func systemStats(sys *System, group string) SystemStats {
	return SystemStats{
		Priority: sys.priority,
		Group:    group,
		Enabled:  sys.Enabled,
		LastRun:  time.Duration(sys.lastRunNanos),
	}
}
