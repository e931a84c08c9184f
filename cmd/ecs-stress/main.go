// Command ecs-stress exercises the ECS runtime with generated component
// and system sets, then prints a throughput and memory report.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/ajwinter/amethyst/ecs"
)

//go:generate go run ./gen -components 16 -systems 8 -out world_gen.go

const (
	componentCount = 16
	systemCount    = 8
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "total duration the test runs for")
	entityCount := flag.Int("entities", 10000, "number of entities to create up front")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "include GC pause metrics in the report")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Info().Msg("starting stress test")

	registry := ecs.NewComponentRegistry()
	RegisterAllGeneratedComponents(registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)
	RegisterAllGeneratedSystems(scheduler)

	log.Info().Int("entities", *entityCount).Msg("populating storage")
	for i := 0; i < *entityCount; i++ {
		SpawnRandomEntity(storage, rand.Intn(5)+1)
	}

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentCount,
		Systems:        systemCount,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Dur("duration", *duration).Msg("running simulation")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			now := time.Now()
			dt := now.Sub(lastFrameTime).Seconds()
			lastFrameTime = now

			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info().Int64("updates", report.TotalUpdates).Msg("simulation finished")

	fmt.Println()
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("report generation failed")
	}
}
