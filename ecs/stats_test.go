package ecs

import (
	"testing"
	"time"
)

func TestWorldStats(t *testing.T) {
	w := NewWorld()

	stats := w.CollectStats()
	if stats.EntityCount != 0 {
		t.Errorf("expected 0 entities, got %d", stats.EntityCount)
	}
	if stats.ArchetypeCount != 1 {
		t.Errorf("expected only the empty archetype, got %d", stats.ArchetypeCount)
	}

	w.NewEntity("position", 1, "velocity", 2)
	w.NewEntity("position", 3, "velocity", 4)
	w.NewEntity("health", 5)

	w.RegisterPrefab("crate", map[string]any{"health": 10})
	w.RegisterPattern("movers", "position", "velocity")
	w.Resources().Set("clock", time.Now())

	stats = w.CollectStats()

	if stats.EntityCount != 3 {
		t.Errorf("expected 3 entities, got %d", stats.EntityCount)
	}
	// empty, {position}, {position, velocity}, {health}
	if stats.ArchetypeCount != 4 {
		t.Errorf("expected 4 archetypes, got %d", stats.ArchetypeCount)
	}
	if stats.PrefabCount != 1 {
		t.Errorf("expected 1 prefab, got %d", stats.PrefabCount)
	}
	if stats.PatternCount != 1 {
		t.Errorf("expected 1 pattern, got %d", stats.PatternCount)
	}
	if stats.ResourceCount != 1 {
		t.Errorf("expected 1 resource, got %d", stats.ResourceCount)
	}

	foundPair := false
	foundHealth := false
	for _, arch := range stats.ArchetypeBreakdown {
		if len(arch.Signature) == 2 && arch.EntityCount == 2 {
			foundPair = true
		}
		if len(arch.Signature) == 1 && arch.Signature[0] == "health" && arch.EntityCount == 1 {
			foundHealth = true
		}
	}
	if !foundPair || !foundHealth {
		t.Errorf("archetype breakdown incorrect: %+v", stats.ArchetypeBreakdown)
	}
}

func TestSchedulerStats(t *testing.T) {
	w := NewWorld()
	s := NewScheduler(w)

	s.Register(w.Query().With("tag"), func(e Entity, dt float64, components ...any) {
		time.Sleep(time.Millisecond)
	}, 5)
	s.AddGroup("phys")
	s.RegisterInGroup("phys", w.Query().With("tag"), func(e Entity, dt float64, components ...any) {})

	w.NewEntity("tag", 1)
	s.Update(0.016)

	stats := s.CollectStats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.GroupCount != 1 {
		t.Errorf("expected 1 group, got %d", stats.GroupCount)
	}
	if len(stats.Systems) != 2 {
		t.Fatalf("expected 2 system entries, got %d", len(stats.Systems))
	}
	if stats.Systems[0].Priority != 5 || stats.Systems[0].Group != "" {
		t.Errorf("ungrouped system entry incorrect: %+v", stats.Systems[0])
	}
	if stats.Systems[1].Group != "phys" {
		t.Errorf("grouped system entry incorrect: %+v", stats.Systems[1])
	}
	if stats.Systems[0].LastRun <= 0 {
		t.Errorf("expected a measured run duration, got %v", stats.Systems[0].LastRun)
	}
}
