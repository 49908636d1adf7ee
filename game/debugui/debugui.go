// Package debugui renders a Dear ImGui inspector for a running game: an entity browser,
// an editor for the selected entity, a camera panel and frame statistics.
// Render must be called between the ImGui backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stagecraft/game"
)

// InputState tracks whether ImGui is consuming mouse or keyboard input this frame.
// Games should ignore their own input while the matching flag is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Inspector owns every debug panel for one game
type Inspector struct {
	game *game.Game
	loop *game.Loop

	Browser     *EntityBrowser
	Editor      *EntityEditor
	Camera      *CameraPanel
	Performance *PerformanceStats

	// Items are extra render functions run after the built-in panels
	Items []func()

	input InputState
}

// NewInspector creates the panels for g. loop may be nil, in which case
// the performance panel only shows scene counts.
func NewInspector(g *game.Game, loop *game.Loop) *Inspector {
	return &Inspector{
		game:        g,
		loop:        loop,
		Browser:     NewEntityBrowser(100),
		Editor:      NewEntityEditor(),
		Camera:      NewCameraPanel(),
		Performance: NewPerformanceStats(120),
	}
}

// Input returns the capture state recorded by the last Render
func (i *Inspector) Input() InputState {
	return i.input
}

// Render draws every panel
func (i *Inspector) Render() {
	io := imgui.CurrentIO()
	i.input.WantCaptureMouse = io.WantCaptureMouse()
	i.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	i.Browser.Render(i.game.Scene())

	selected := i.Browser.Selected()
	i.Editor.Render(i.game, selected)
	i.Camera.Render(i.game, selected)

	var stats *game.LoopStats
	if i.loop != nil {
		s := i.loop.Stats()
		stats = &s
	}
	i.Performance.Render(i.game, stats)

	for _, item := range i.Items {
		item()
	}
}
