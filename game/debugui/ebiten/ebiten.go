// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// It satisfies the ebiten runner's Overlay, running Render inside each ImGui frame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Render func()
}

// NewImguiBackend creates the ImGui context and the ebiten window it draws into
func NewImguiBackend(title string, width, height int, render func()) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{EbitenBackend: backend, Render: render}
}

func (b *ImguiBackend) Update() error {
	b.BeginFrame()
	if b.Render != nil {
		b.Render()
	}
	b.EndFrame()
	return nil
}

func (b *ImguiBackend) Draw(screen *ebiten.Image) {
	b.EbitenBackend.Draw(screen)
}

func (b *ImguiBackend) Layout(outsideWidth, outsideHeight int) {
	b.EbitenBackend.Layout(outsideWidth, outsideHeight)
}
