package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stagecraft/game"
	"github.com/plus3/stagecraft/input"
)

// Overlay is drawn on top of every frame, e.g. a debug UI
type Overlay interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Runner adapts a game.Loop to ebiten.Game. Input is polled in Update and the
// loop is stepped once per Draw, so every frame is a full redraw.
type Runner struct {
	loop    *game.Loop
	surface *Surface
	input   *input.Manager
	overlay Overlay

	keys    []ebiten.Key
	buttons []int
	gamepad []ebiten.GamepadID
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithInput feeds polled key and gamepad state into m every update
func WithInput(m *input.Manager) RunnerOption {
	return func(r *Runner) {
		r.input = m
	}
}

// WithOverlay draws o after each frame
func WithOverlay(o Overlay) RunnerOption {
	return func(r *Runner) {
		r.overlay = o
	}
}

func NewRunner(loop *game.Loop, opts ...RunnerOption) *Runner {
	r := &Runner{
		loop:    loop,
		surface: NewSurface(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Surface returns the surface handed to the loop
func (r *Runner) Surface() *Surface {
	return r.surface
}

func (r *Runner) Update() error {
	if r.loop.Stopped() {
		return ebiten.Termination
	}

	if r.input != nil {
		r.pollInput()
	}

	if r.overlay != nil {
		return r.overlay.Update()
	}
	return nil
}

func (r *Runner) Draw(screen *ebiten.Image) {
	r.surface.SetTarget(screen)
	r.loop.Step(r.surface)

	if r.overlay != nil {
		r.overlay.Draw(screen)
	}
}

func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if r.overlay != nil {
		r.overlay.Layout(outsideWidth, outsideHeight)
	}
	cfg := r.loop.Game().Config()
	return cfg.Width, cfg.Height
}

func (r *Runner) pollInput() {
	r.keys = inpututil.AppendPressedKeys(r.keys[:0])
	names := make([]string, len(r.keys))
	for i, k := range r.keys {
		names[i] = k.String()
	}
	r.input.SetPressedKeys(names)

	r.buttons = r.buttons[:0]
	r.gamepad = ebiten.AppendGamepadIDs(r.gamepad[:0])
	if len(r.gamepad) > 0 {
		id := r.gamepad[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
				if ebiten.IsStandardGamepadButtonPressed(id, b) {
					r.buttons = append(r.buttons, int(b))
				}
			}
		}
	}
	r.input.SetPressedButtons(r.buttons)
}

// Run opens a window sized from the game config and blocks until the window closes or the loop stops
func Run(r *Runner) error {
	cfg := r.loop.Game().Config()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	return ebiten.RunGame(r)
}
