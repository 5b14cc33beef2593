// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/plus3/loom/ecs"
)

func main() {
	rounds := 50
	iters := 10000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := ecs.NewWorld()
		for i := 0; i < numEntities; i++ {
			w.NewEntity("pos", i, "vel", 1)
		}

		query := w.Query().With("pos", "vel")
		for range iters {
			query.Each(func(e ecs.Entity, components ...any) {
				e.Add("pos", components[0].(int)+components[1].(int))
			})
		}
	}
}
