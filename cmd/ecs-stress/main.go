package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/loom/ecs"
)

const (
	componentCount = 48
	systemCount    = 50
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	seed := flag.Int64("seed", 1, "Seed for the deterministic churn RNG.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting ECS stress test...")

	rng := rand.New(rand.NewSource(*seed))

	// 1. Setup world and scheduler
	world := ecs.NewWorld()
	scheduler := ecs.NewScheduler(world)
	systems := registerStressSystems(world, scheduler, rng)

	// 2. Populate the world
	log.Printf("Populating world with %d entities...\n", *entityCount)
	live := make([]ecs.Entity, *entityCount)
	for i := range live {
		live[i] = spawnRandomEntity(world, rng, rng.Intn(5)+1)
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		ComponentKinds: componentCount,
		Systems:        systems,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: TimingStats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Update(float64(deltaTime) / float64(time.Second))
			live = churn(world, rng, live)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	stats := world.CollectStats()
	report.FinalEntities = stats.EntityCount
	report.FinalArchetypes = stats.ArchetypeCount

	log.Println("Simulation finished.")

	// 4. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
