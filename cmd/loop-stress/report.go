package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/stagecraft/game"
)

type Report struct {
	// Configuration
	RunID    string
	Seed     uint64
	Duration time.Duration
	Entities int
	Width    int
	Height   int

	// Results
	TotalTime      time.Duration
	UpdateTime     Stats
	Loop           game.LoopStats
	Respawns       int
	FinalEntities  int
	FrameHash      uint64
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// TicksPerSecond is the achieved tick rate over the whole run
func (r *Report) TicksPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.Loop.Ticks) / r.TotalTime.Seconds()
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P50 = percentile(sorted, 50)
	s.P99 = percentile(sorted, 99)
}

// percentile uses nearest rank on already sorted samples
func percentile(sorted []time.Duration, p int) time.Duration {
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Loop Stress Test Report

## Test Configuration
- **Run ID:** {{.RunID}}
- **Seed:** {{.Seed}}
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}
- **Viewport:** {{.Width}}x{{.Height}}

## Performance Results
- **Total Ticks:** {{.Loop.Ticks}}
- **Total Test Time:** {{.TotalTime}}
- **Ticks Per Second:** {{printf "%.1f" .TicksPerSecond}}
- **Respawned Entities:** {{.Respawns}}
- **Final Entities:** {{.FinalEntities}}
- **Hook Failures:** {{.Loop.HookFailures}}
- **Final Frame Hash:** {{printf "%016x" .FrameHash}}
- **Frame Time (Step):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **P50:** {{.UpdateTime.P50}}
  - **P99:** {{.UpdateTime.P99}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Tick Time (Game):**
  - **Avg:** {{.Loop.AvgDuration}}
  - **Min:** {{.Loop.MinDuration}}
  - **Max:** {{.Loop.MaxDuration}}

## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc | mb}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc | mb}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys | mb}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{usub64 .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"usub64": func(a, b uint64) uint64 {
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
