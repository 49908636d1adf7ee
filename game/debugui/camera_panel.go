package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stagecraft/game"
)

// CameraPanel shows the camera state and can retarget it to the selected entity
type CameraPanel struct{}

func NewCameraPanel() *CameraPanel {
	return &CameraPanel{}
}

func (cp *CameraPanel) Render(g *game.Game, selected game.EntityId) {
	if !imgui.BeginV("Camera", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	cam := g.Camera()
	imgui.Text(fmt.Sprintf("Position: %.1f, %.1f", cam.X, cam.Y))

	if target := cam.Target(); target != 0 {
		imgui.Text(fmt.Sprintf("Target: %d:%d", target.Index(), target.Generation()))
	} else {
		imgui.Text("Target: none")
	}

	if b, ok := cam.Bounds(); ok {
		imgui.Text(fmt.Sprintf("Bounds: %.0f,%.0f %.0fx%.0f", b.X, b.Y, b.Width, b.Height))
	} else {
		imgui.Text("Bounds: none")
	}

	zoom := float32(cam.Zoom)
	imgui.Text("Zoom:")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputFloat("##zoom", &zoom) && zoom > 0 {
		cam.Zoom = float64(zoom)
	}

	imgui.Separator()
	if imgui.Button("Follow Selected") && selected != 0 {
		g.SetCamera(retarget(cam, selected))
	}
	imgui.SameLine()
	if imgui.Button("Release") {
		g.SetCamera(retarget(cam, 0))
	}

	imgui.End()
}

// retarget builds a config that keeps the camera's bounds and zoom
func retarget(cam *game.Camera, target game.EntityId) game.CameraConfig {
	cfg := game.CameraConfig{Target: target, Zoom: cam.Zoom}
	if b, ok := cam.Bounds(); ok {
		cfg.Bounds = &b
	}
	return cfg
}
