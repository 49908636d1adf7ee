package debugui

import (
	"testing"

	"github.com/plus3/stagecraft/game"
	"github.com/plus3/stagecraft/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScene() (*game.Scene, []*game.Entity) {
	scene := game.NewScene()

	a := game.NewEntity(5, 1, 1, 1)
	game.AddPhysics(a, game.PhysicsConfig{Gravity: 9})
	b := game.NewEntity(1, 2, 1, 1)
	c := game.NewEntity(3, 3, 1, 1)
	c.OnUpdate(func(e *game.Entity, dt float64) {})

	scene.Add(a, 1)
	scene.Add(b, 0)
	scene.Add(c, 1)

	return scene, []*game.Entity{a, b, c}
}

func TestCollectEntities(t *testing.T) {
	scene, entities := newScene()

	rows := collectEntities(scene, nil)

	require.Len(t, rows, 3)
	assert.Equal(t, entities[1].ID(), rows[0].ID)
	assert.Equal(t, 0, rows[0].Order)
	assert.Equal(t, []string{"physics"}, rows[1].Stages)
	assert.Equal(t, 1, rows[2].Layer)
	assert.Equal(t, 3.0, rows[2].X)
}

func TestSortEntities(t *testing.T) {
	scene, entities := newScene()
	rows := collectEntities(scene, nil)

	sortEntities(rows, 4, true)
	assert.Equal(t, entities[1].ID(), rows[0].ID)
	assert.Equal(t, entities[0].ID(), rows[2].ID)

	sortEntities(rows, 0, false)
	assert.Equal(t, []int{2, 1, 0}, []int{rows[0].Order, rows[1].Order, rows[2].Order})

	sortEntities(rows, 2, true)
	assert.Equal(t, 0, rows[0].Layer)
}

func TestFilterEntities(t *testing.T) {
	scene, entities := newScene()
	rows := collectEntities(scene, nil)

	assert.Len(t, filterEntities(rows, ""), 3)

	physics := filterEntities(rows, "PHYS")
	require.Len(t, physics, 1)
	assert.Equal(t, entities[0].ID(), physics[0].ID)

	assert.Len(t, filterEntities(rows, "layer 1"), 2)
	assert.Empty(t, filterEntities(rows, "nothing"))
}

func TestEntityBrowserPage(t *testing.T) {
	eb := NewEntityBrowser(10)

	start, end := eb.page(25)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	eb.currentPage = 2
	start, end = eb.page(25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = eb.page(5)
	assert.Equal(t, 0, eb.currentPage)
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
}

func TestLayerCounts(t *testing.T) {
	scene, _ := newScene()
	assert.Equal(t, []LayerCount{{Layer: 0, Count: 1}, {Layer: 1, Count: 2}}, layerCounts(scene))
	assert.Empty(t, layerCounts(game.NewScene()))
}

func TestPerformanceStatsRecord(t *testing.T) {
	ps := NewPerformanceStats(4)
	ps.Record(0.010)
	ps.Record(0.030)

	assert.InDelta(t, 10.0, ps.AverageFrameTime(), 1e-4)

	for range 4 {
		ps.Record(0.016)
	}
	assert.InDelta(t, 16.0, ps.AverageFrameTime(), 1e-4)
}

func TestRetarget(t *testing.T) {
	g, err := game.New(game.DefaultConfig())
	require.NoError(t, err)

	bounds := vmath.Rect{Width: 100, Height: 100}
	g.SetCamera(game.CameraConfig{Target: 7, Bounds: &bounds, Zoom: 2})

	cfg := retarget(g.Camera(), 9)
	assert.Equal(t, game.EntityId(9), cfg.Target)
	assert.Equal(t, 2.0, cfg.Zoom)
	require.NotNil(t, cfg.Bounds)
	assert.Equal(t, bounds, *cfg.Bounds)
}
