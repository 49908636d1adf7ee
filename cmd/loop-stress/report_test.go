package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/stagecraft/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStatsFinalize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var s Stats
		s.Finalize()
		assert.Zero(t, s.Avg)
		assert.Zero(t, s.Max)
	})

	t.Run("samples", func(t *testing.T) {
		s := Stats{Samples: []time.Duration{4, 1, 3, 2, 10}}
		s.Finalize()

		assert.Equal(t, time.Duration(1), s.Min)
		assert.Equal(t, time.Duration(10), s.Max)
		assert.Equal(t, time.Duration(4), s.Avg)
		assert.Equal(t, time.Duration(3), s.P50)
		assert.Equal(t, time.Duration(10), s.P99)
		assert.Equal(t, []time.Duration{4, 1, 3, 2, 10}, s.Samples)
	})
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		RunID:          "run-1",
		Seed:           9,
		Duration:       time.Second,
		Entities:       50,
		Width:          320,
		Height:         240,
		TotalTime:      2 * time.Second,
		Loop:           game.LoopStats{Ticks: 120, HookFailures: 1},
		Respawns:       7,
		FinalEntities:  51,
		FrameHash:      0xabc,
		GCPauseMetrics: true,
	}
	r.MemStatsEnd.HeapAlloc = 2 * 1024 * 1024

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Loop Stress Test Report")
	assert.Contains(t, out, "**Run ID:** run-1")
	assert.Contains(t, out, "**Viewport:** 320x240")
	assert.Contains(t, out, "**Final Frame Hash:** 0000000000000abc")
	assert.Contains(t, out, "**Total Ticks:** 120")
	assert.Contains(t, out, "**Ticks Per Second:** 60.0")
	assert.Contains(t, out, "**Respawned Entities:** 7")
	assert.Contains(t, out, "**Hook Failures:** 1")
	assert.Contains(t, out, "Heap Alloc:     0.00 (start) -> 2.00 (end) -> delta: 2.00")
	assert.Contains(t, out, "## GC Pause Durations")
}

func TestRunWritesSnapshot(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height = 64, 48

	path := t.TempDir() + "/frame.png"
	err := run(zaptest.NewLogger(t), cfg, options{
		duration:     20 * time.Millisecond,
		entities:     20,
		emitterEvery: 5,
		snapshot:     path,
		seed:         3,
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
