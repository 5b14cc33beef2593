package ecs

// SystemFunc is the per-entity behavior of a system. The scheduler drives it
// through the system's query each tick, passing the frame's delta time and
// the required components in the query's With order. The component slice is
// reused between calls and must not be retained.
type SystemFunc func(e Entity, dt float64, components ...any)

// Task is a long-running cooperative unit of work attached to a system.
// The scheduler resumes it once per tick with the frame's delta time instead
// of running the system's query; when it returns true it is finished and is
// detached, and the system goes back to normal query dispatch.
type Task func(dt float64) (done bool)

// System binds a query to a callback with a dispatch priority. Systems run
// each tick in ascending priority order; ties dispatch in registration
// order. Set Enabled to false to skip a system from the next dispatch on.
type System struct {
	Enabled bool

	query    *Query
	fn       SystemFunc
	priority int
	seq      int
	task     Task

	lastRunNanos int64
}

// Priority returns the system's dispatch priority (lower runs first).
func (s *System) Priority() int {
	return s.priority
}

// AttachTask hands the system a cooperative task. Until the task reports
// done, the scheduler resumes it each tick instead of running the query.
func (s *System) AttachTask(t Task) {
	s.task = t
}

// ClearTask drops the system's task without resuming it again.
func (s *System) ClearTask() {
	s.task = nil
}

// Group is a named, ordered collection of systems updated together, after
// all ungrouped systems. Parallel is an advisory hint that the group's
// systems touch disjoint state; the scheduler still dispatches serially.
type Group struct {
	Name     string
	Enabled  bool
	Parallel bool

	systems []*System
}

// Systems returns the group's systems in dispatch order.
func (g *Group) Systems() []*System {
	out := make([]*System, len(g.systems))
	copy(out, g.systems)
	return out
}
