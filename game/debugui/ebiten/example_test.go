package ebiten_test

import (
	backend "github.com/plus3/stagecraft/backend/ebiten"
	"github.com/plus3/stagecraft/game"
	"github.com/plus3/stagecraft/game/debugui"
	debugui_ebiten "github.com/plus3/stagecraft/game/debugui/ebiten"
)

func Example() {
	g, err := game.New(game.DefaultConfig())
	if err != nil {
		panic(err)
	}

	g.Add(game.NewEntity(10, 10, 32, 32), 0)

	loop := game.NewLoop(g, nil)
	inspector := debugui.NewInspector(g, loop)

	cfg := g.Config()
	overlay := debugui_ebiten.NewImguiBackend(cfg.Title, cfg.Width, cfg.Height, inspector.Render)

	runner := backend.NewRunner(loop, backend.WithOverlay(overlay))
	if err := backend.Run(runner); err != nil {
		panic(err)
	}
}
