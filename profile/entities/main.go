// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/plus3/loom/ecs"
)

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := ecs.NewWorld()
		query := w.Query().With("pos", "vel")

		for range iters {
			for i := 0; i < numEntities; i++ {
				w.NewEntity("pos", i, "vel", i)
			}
			var live []ecs.Entity
			query.Each(func(e ecs.Entity, components ...any) {
				live = append(live, e)
			})
			for _, e := range live {
				e.Destroy()
			}
		}
	}
}
