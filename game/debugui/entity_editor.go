package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stagecraft/game"
)

// EntityEditor shows and edits the selected entity's public fields
type EntityEditor struct{}

func NewEntityEditor() *EntityEditor {
	return &EntityEditor{}
}

func (ee *EntityEditor) Render(g *game.Game, selected game.EntityId) {
	if !imgui.BeginV("Entity Editor", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected == 0 {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	e, ok := g.Get(selected)
	if !ok {
		imgui.Text(fmt.Sprintf("Entity %d:%d was removed", selected.Index(), selected.Generation()))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %d:%d", selected.Index(), selected.Generation()))

	kinds := e.Stages()
	stages := make([]string, len(kinds))
	for i, k := range kinds {
		stages[i] = string(k)
	}
	imgui.Text(fmt.Sprintf("Stages: %s", strings.Join(stages, " -> ")))
	imgui.Separator()

	floatField("X", &e.X)
	floatField("Y", &e.Y)
	floatField("Width", &e.Width)
	floatField("Height", &e.Height)

	if imgui.TreeNodeStr("Physics") {
		floatField("Velocity X", &e.Velocity.X)
		floatField("Velocity Y", &e.Velocity.Y)
		floatField("Gravity", &e.Gravity)
		floatField("Bounce", &e.Bounce)
		imgui.TreePop()
	}

	layer := int32(e.Layer)
	imgui.Text("Layer:")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputInt("##layer", &layer) {
		layer := int(layer)
		g.Defer(func() { g.Add(e, layer) })
	}

	imgui.Separator()
	if imgui.Button("Remove") {
		g.Defer(func() { g.Remove(e) })
	}

	imgui.End()
}

func floatField(name string, v *float64) {
	f := float32(*v)
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat(fmt.Sprintf("##%s", name), &f) {
		*v = float64(f)
	}
}
