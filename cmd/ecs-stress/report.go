package main

import (
	"io"
	"runtime"
	"sort"
	"text/template"
	"time"
)

// Report collects the stress run's configuration and results for
// rendering to the console.
type Report struct {
	Duration   time.Duration
	Entities   int
	Components int
	Systems    int

	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats summarizes a series of duration samples.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P95     time.Duration
	Samples []time.Duration
}

// Finalize computes the summary values from the recorded samples.
func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := append([]time.Duration(nil), s.Samples...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.P95 = sorted[len(sorted)*95/100]

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Avg = total / time.Duration(len(sorted))
}

const reportTemplate = `# ECS Stress Test Report

## Configuration
- Run Duration:         {{.Duration}}
- Initial Entities:     {{.Entities}}
- Generated Components: {{.Components}}
- Generated Systems:    {{.Systems}}

## Throughput
- Total Updates: {{.TotalUpdates}}
- Total Time:    {{.TotalTime}}
- Frame Time:    avg {{.UpdateTime.Avg}} / min {{.UpdateTime.Min}} / max {{.UpdateTime.Max}} / p95 {{.UpdateTime.P95}}

## Memory (bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Total Alloc: {{.MemStatsStart.TotalAlloc}} -> {{.MemStatsEnd.TotalAlloc}} (delta {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}})
- Sys Memory:  {{.MemStatsStart.Sys}} -> {{.MemStatsEnd.Sys}} (delta {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}})
- GC Cycles:   {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pauses
- Total GC Pause: {{ns .MemStatsEnd.PauseTotalNs}}
{{end}}`

// Generate renders the report to w.
func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
