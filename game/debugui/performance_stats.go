package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stagecraft/game"
)

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Record adds a frame delta, in seconds, to the history
func (ps *PerformanceStats) Record(deltaTime float64) {
	ps.frameHistory[ps.frameIndex] = float32(deltaTime * 1000.0)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the recorded history in milliseconds
func (ps *PerformanceStats) AverageFrameTime() float32 {
	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	return avgFrameTime / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(g *game.Game, stats *game.LoopStats) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if stats != nil {
		ps.Record(stats.LastDelta)
	}

	imgui.Text(fmt.Sprintf("Total Entities: %d", g.Scene().Len()))
	imgui.Text(fmt.Sprintf("Hook Failures: %d", g.HookFailures()))

	avgFrameTime := ps.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if stats != nil && imgui.TreeNodeStr("Tick Details") {
		imgui.BulletText(fmt.Sprintf("Ticks: %d", stats.Ticks))
		imgui.BulletText(fmt.Sprintf("Last: %v", stats.LastDuration))
		imgui.BulletText(fmt.Sprintf("Min: %v", stats.MinDuration))
		imgui.BulletText(fmt.Sprintf("Max: %v", stats.MaxDuration))
		imgui.BulletText(fmt.Sprintf("Avg: %v", stats.AvgDuration))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Layer Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("LayerStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Layer")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, layer := range layerCounts(g.Scene()) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", layer.Layer))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", layer.Count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// LayerCount is the number of entities on one layer
type LayerCount struct {
	Layer int
	Count int
}

// layerCounts relies on the scene's render order being sorted by layer
func layerCounts(scene *game.Scene) []LayerCount {
	var counts []LayerCount
	for e := range scene.Ordered() {
		if n := len(counts); n > 0 && counts[n-1].Layer == e.Layer {
			counts[n-1].Count++
			continue
		}
		counts = append(counts, LayerCount{Layer: e.Layer, Count: 1})
	}
	return counts
}
