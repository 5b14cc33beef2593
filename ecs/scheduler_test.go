package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/loom/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerPriorityAndGrouping(t *testing.T) {
	w := ecs.NewWorld()
	s := ecs.NewScheduler(w)

	var trace []string
	s.AddGroup("phys")
	s.Register(w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
		trace = append(trace, "1")
	}, 10)
	s.Register(w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
		trace = append(trace, "2")
	}, 5)
	s.RegisterInGroup("phys", w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
		trace = append(trace, "3")
	})

	w.NewEntity(tag, 1)
	s.Update(0.016)

	// Ungrouped systems run first in ascending priority, then groups.
	assert.Equal(t, []string{"2", "1", "3"}, trace)
}

func TestSchedulerPriorityTiesInRegistrationOrder(t *testing.T) {
	w := ecs.NewWorld()
	s := ecs.NewScheduler(w)

	var trace []string
	for _, label := range []string{"a", "b", "c"} {
		label := label
		s.Register(w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
			trace = append(trace, label)
		})
	}

	w.NewEntity(tag, 1)
	s.Update(1.0)
	assert.Equal(t, []string{"a", "b", "c"}, trace)
}

func TestSchedulerUpdateGroup(t *testing.T) {
	w := ecs.NewWorld()
	s := ecs.NewScheduler(w)

	var trace []string
	s.AddGroup("render")
	s.Register(w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
		trace = append(trace, "ungrouped")
	})
	s.RegisterInGroup("render", w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
		trace = append(trace, "render")
	})

	w.NewEntity(tag, 1)
	s.UpdateGroup("render", 0.016)

	assert.Equal(t, []string{"render"}, trace)
}

func TestSchedulerUnknownGroupPanics(t *testing.T) {
	w := ecs.NewWorld()
	s := ecs.NewScheduler(w)

	assert.Panics(t, func() {
		s.RegisterInGroup("nope", w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {})
	})
	assert.Panics(t, func() { s.UpdateGroup("nope", 1.0) })
}

func TestSchedulerDisabledSystemAndGroup(t *testing.T) {
	w := ecs.NewWorld()
	s := ecs.NewScheduler(w)

	runs := 0
	sys := s.Register(w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
		runs++
	})
	g := s.AddGroup("fx")
	groupRuns := 0
	s.RegisterInGroup("fx", w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
		groupRuns++
	})

	w.NewEntity(tag, 1)

	sys.Enabled = false
	g.Enabled = false
	s.Update(1.0)
	assert.Equal(t, 0, runs)
	assert.Equal(t, 0, groupRuns)

	sys.Enabled = true
	g.Enabled = true
	s.Update(1.0)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, groupRuns)
}

func TestSchedulerDeltaTimePassedThrough(t *testing.T) {
	w := ecs.NewWorld()
	s := ecs.NewScheduler(w)

	var got float64
	s.Register(w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
		got = dt
	})

	w.NewEntity(tag, 1)
	s.Update(0.25)
	assert.Equal(t, 0.25, got)
}

func TestSchedulerCooperativeTask(t *testing.T) {
	w := ecs.NewWorld()
	s := ecs.NewScheduler(w)

	queryRuns := 0
	sys := s.Register(w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
		queryRuns++
	})
	w.NewEntity(tag, 1)

	// While the task is attached it is resumed once per tick instead of the
	// query; after it reports done it is detached.
	ticks := 0
	sys.AttachTask(func(dt float64) bool {
		ticks++
		return ticks == 3
	})

	for range 5 {
		s.Update(1.0)
	}

	assert.Equal(t, 3, ticks)
	assert.Equal(t, 2, queryRuns)
}

func TestSchedulerClearTask(t *testing.T) {
	w := ecs.NewWorld()
	s := ecs.NewScheduler(w)

	sys := s.Register(w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {})
	resumed := false
	sys.AttachTask(func(dt float64) bool {
		resumed = true
		return false
	})
	sys.ClearTask()

	s.Update(1.0)
	assert.False(t, resumed)
}

func TestSchedulerRunCancellation(t *testing.T) {
	w := ecs.NewWorld()
	s := ecs.NewScheduler(w)

	ticks := 0
	s.Register(w.Query().With(tag), func(e ecs.Entity, dt float64, components ...any) {
		ticks++
	})
	w.NewEntity(tag, 1)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		s.Run(ctx, 1*time.Millisecond)
		done <- true
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
	require.Greater(t, ticks, 0)
}
