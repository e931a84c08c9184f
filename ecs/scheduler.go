package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// queryExecutor is implemented by Query[T]; the scheduler rebuilds each
// system's query caches right before that system runs.
type queryExecutor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	name    string
	after   []string
	queries []queryExecutor
	stats   *systemStatsInternal
}

// Scheduler owns the ordered set of systems for a storage and executes
// them once per tick. Systems run in registration order unless they
// declare dependencies through DependentSystem, in which case the
// scheduler topologically reorders them.
type Scheduler struct {
	storage *Storage
	systems []*registeredSystem
}

// NewScheduler creates a scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
	}
}

// Register adds a system, initializes its Query and Singleton fields, and
// re-resolves the execution order against declared dependencies.
func (s *Scheduler) Register(system System) {
	reg := &registeredSystem{
		system: system,
		name:   systemName(system),
		stats: &systemStatsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	}

	if dep, ok := system.(DependentSystem); ok {
		reg.after = dep.RunAfter()
	}

	reg.queries = s.initializeFields(system)
	s.systems = append(s.systems, reg)
	s.sortSystems()
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

// initializeFields binds Query and Singleton struct fields to the
// scheduler's storage and collects the query fields for per-frame cache
// rebuilds.
func (s *Scheduler) initializeFields(system System) []queryExecutor {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	var queries []queryExecutor
	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()
		if !strings.HasPrefix(typeName, "Query[") && !strings.HasPrefix(typeName, "Singleton[") {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on field: " + fieldType.Name)
		}
		initMethod.Call([]reflect.Value{reflect.ValueOf(s.storage)})

		if strings.HasPrefix(typeName, "Query[") {
			queries = append(queries, field.Addr().Interface().(queryExecutor))
		}
	}

	return queries
}

// sortSystems performs a stable topological sort over declared
// dependencies. Dependencies naming unregistered systems are treated as
// satisfied; a dependency cycle panics.
func (s *Scheduler) sortSystems() {
	registered := make(map[string]bool, len(s.systems))
	for _, reg := range s.systems {
		registered[reg.name] = true
	}

	placed := make(map[string]bool, len(s.systems))
	sorted := make([]*registeredSystem, 0, len(s.systems))
	remaining := append([]*registeredSystem(nil), s.systems...)

	for len(remaining) > 0 {
		progressed := false
		for i, reg := range remaining {
			ready := true
			for _, dep := range reg.after {
				if registered[dep] && !placed[dep] {
					ready = false
					break
				}
			}
			if !ready {
				continue
			}

			sorted = append(sorted, reg)
			placed[reg.name] = true
			remaining = append(remaining[:i], remaining[i+1:]...)
			progressed = true
			break
		}

		if !progressed {
			panic("scheduler: dependency cycle between systems")
		}
	}

	s.systems = sorted
}

// Once executes all registered systems once with the given delta time and
// flushes the frame's command buffer.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage)

	for _, reg := range s.systems {
		for _, q := range reg.queries {
			q.Execute()
		}

		start := time.Now()
		reg.system.Execute(frame)
		duration := time.Since(start)

		stats := reg.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.storage)
}

// Run executes all systems repeatedly at the given interval until the
// context is cancelled.
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
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, reg := range s.systems {
		internal := reg.stats

		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           reg.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
