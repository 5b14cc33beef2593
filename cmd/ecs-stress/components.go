package main

import (
	"fmt"
	"math/rand"

	"github.com/plus3/loom/ecs"
)

// componentKeys is the pool of component kinds the stress run draws from.
// Mixing scalar and table-shaped values exercises both column storage and
// the prefab-style deep structures.
var componentKeys = func() []string {
	keys := make([]string, componentCount)
	for i := range keys {
		keys[i] = fmt.Sprintf("comp_%02d", i)
	}
	return keys
}()

func randomValue(rng *rand.Rand, kind int) any {
	switch kind % 3 {
	case 0:
		return rng.Intn(1000)
	case 1:
		return rng.Float64() * 100
	default:
		return map[string]any{"x": rng.Float64(), "y": rng.Float64()}
	}
}

// spawnRandomEntity creates an entity with n distinct random components.
func spawnRandomEntity(w *ecs.World, rng *rand.Rand, n int) ecs.Entity {
	pairs := make([]any, 0, n*2)
	seen := make(map[int]bool, n)
	for len(seen) < n {
		kind := rng.Intn(componentCount)
		if seen[kind] {
			continue
		}
		seen[kind] = true
		pairs = append(pairs, componentKeys[kind], randomValue(rng, kind))
	}
	return w.NewEntity(pairs...)
}

// registerStressSystems binds one system per component kind slice, spread
// across priorities and a couple of groups, so a tick touches every
// archetype shape.
func registerStressSystems(w *ecs.World, s *ecs.Scheduler, rng *rand.Rand) int {
	s.AddGroup("even")
	s.AddGroup("odd")

	registered := 0
	for i := 0; i < systemCount; i++ {
		key := componentKeys[i%componentCount]
		fn := func(e ecs.Entity, dt float64, components ...any) {
			if v, ok := components[0].(int); ok {
				e.Add(key, v+1)
			}
		}
		switch i % 3 {
		case 0:
			s.Register(w.Query().With(key), fn, i)
		case 1:
			s.RegisterInGroup("even", w.Query().With(key), fn, i)
		default:
			s.RegisterInGroup("odd", w.Query().With(key), fn, i)
		}
		registered++
	}
	return registered
}

// churn applies random structural mutation: destroys, spawns, and component
// add/removes. This keeps the archetype graph and query cache under
// realistic pressure instead of settling into a static shape.
func churn(w *ecs.World, rng *rand.Rand, live []ecs.Entity) []ecs.Entity {
	for i := 0; i < len(live)/100+1; i++ {
		idx := rng.Intn(len(live))
		e := live[idx]
		switch rng.Intn(4) {
		case 0:
			e.Destroy()
			live[idx] = spawnRandomEntity(w, rng, rng.Intn(5)+1)
		case 1:
			kind := rng.Intn(componentCount)
			e.Add(componentKeys[kind], randomValue(rng, kind))
		case 2:
			e.Remove(componentKeys[rng.Intn(componentCount)])
		default:
			// leave it alone this round
		}
	}
	return live
}
