package ecs

import (
	"context"
	"fmt"
	"time"

	"github.com/TheBitDrifter/bark"
)

// Scheduler owns system registration and tick dispatch for a world.
// Execution is single-threaded and cooperative: each tick runs every enabled
// ungrouped system in priority order, then every enabled group in insertion
// order, each group's enabled systems again in priority order.
type Scheduler struct {
	world   *World
	systems []*System
	groups  []*Group
	byName  map[string]*Group
	nextSeq int
}

// NewScheduler creates a scheduler for the given world.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{
		world:  world,
		byName: make(map[string]*Group),
	}
}

// Register adds an ungrouped system bound to the query. The optional
// priority defaults to zero; lower priorities dispatch first.
func (s *Scheduler) Register(query *Query, fn SystemFunc, priority ...int) *System {
	sys := s.newSystem(query, fn, priority)
	s.systems = insertByPriority(s.systems, sys)
	return sys
}

// AddGroup adds a named system group, enabled by default. Adding a name
// twice returns the existing group. The optional parallel hint marks the
// group's systems as candidates for concurrent dispatch; the core scheduler
// never acts on it.
func (s *Scheduler) AddGroup(name string, parallelHint ...bool) *Group {
	if g, ok := s.byName[name]; ok {
		return g
	}
	g := &Group{Name: name, Enabled: true}
	if len(parallelHint) > 0 {
		g.Parallel = parallelHint[0]
	}
	s.groups = append(s.groups, g)
	s.byName[name] = g
	return g
}

// RegisterInGroup adds a system to a named group. The group must already
// exist; registering into an unknown group is a programmer error.
func (s *Scheduler) RegisterInGroup(group string, query *Query, fn SystemFunc, priority ...int) *System {
	g, ok := s.byName[group]
	if !ok {
		panic(bark.AddTrace(fmt.Errorf("%w: %q", ErrUnknownGroup, group)))
	}
	sys := s.newSystem(query, fn, priority)
	g.systems = insertByPriority(g.systems, sys)
	return sys
}

// Update runs one tick: ungrouped systems first, then groups in insertion
// order. Disabled systems and groups are skipped at dispatch time.
func (s *Scheduler) Update(dt float64) {
	for _, sys := range s.systems {
		s.dispatch(sys, dt)
	}
	for _, g := range s.groups {
		if !g.Enabled {
			continue
		}
		for _, sys := range g.systems {
			s.dispatch(sys, dt)
		}
	}
}

// UpdateGroup runs only the named group's systems for this tick.
func (s *Scheduler) UpdateGroup(name string, dt float64) {
	g, ok := s.byName[name]
	if !ok {
		panic(bark.AddTrace(fmt.Errorf("%w: %q", ErrUnknownGroup, name)))
	}
	if !g.Enabled {
		return
	}
	for _, sys := range g.systems {
		s.dispatch(sys, dt)
	}
}

// Run ticks the scheduler at the given interval until the context is
// cancelled, passing the measured elapsed time as dt.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Update(dt)
		}
	}
}

// dispatch runs a single system: a pending cooperative task is resumed with
// dt and detached once done; otherwise the system's query drives its
// callback across every matching entity.
func (s *Scheduler) dispatch(sys *System, dt float64) {
	if !sys.Enabled {
		return
	}
	start := time.Now()
	if sys.task != nil {
		if sys.task(dt) {
			sys.task = nil
		}
	} else {
		sys.query.Each(func(e Entity, components ...any) {
			sys.fn(e, dt, components...)
		})
	}
	sys.lastRunNanos = time.Since(start).Nanoseconds()
}

func (s *Scheduler) newSystem(query *Query, fn SystemFunc, priority []int) *System {
	sys := &System{
		Enabled: true,
		query:   query,
		fn:      fn,
		seq:     s.nextSeq,
	}
	s.nextSeq++
	if len(priority) > 0 {
		sys.priority = priority[0]
	}
	return sys
}

// insertByPriority keeps a system list sorted by (priority, registration
// order) so dispatch never re-sorts.
func insertByPriority(systems []*System, sys *System) []*System {
	at := len(systems)
	for i, other := range systems {
		if sys.priority < other.priority {
			at = i
			break
		}
	}
	systems = append(systems, nil)
	copy(systems[at+1:], systems[at:])
	systems[at] = sys
	return systems
}
