package field

import (
	"context"
	"testing"

	"HexTerrain/internal/behaviour"
	"HexTerrain/internal/config"
	"HexTerrain/internal/hexgrid"
	"HexTerrain/internal/renderer"
	"HexTerrain/scripts"
)

func newField(t *testing.T, radius int) (*Field, *behaviour.ComponentManager) {
	t.Helper()
	cfg := config.Default().Field
	cfg.FieldRadius = radius
	cm := behaviour.NewComponentManager()
	f := New(cfg, cm)
	if err := f.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	return f, cm
}

func indicatorAt(t *testing.T, f *Field, k hexgrid.Key) *scripts.Indicator {
	t.Helper()
	ind, ok := behaviour.FindComponent[*scripts.Indicator](f.Indicator(k))
	if !ok {
		t.Fatalf("No indicator at %v", k)
	}
	return ind
}

func TestRebuildSpawnsOneIndicatorPerVertex(t *testing.T) {
	f, cm := newField(t, 1)

	tagged := cm.FindGameObjectsWithTag(IndicatorTag)
	if len(tagged) != len(f.Grid().Vertices) {
		t.Errorf("Expected %d indicators, got %d", len(f.Grid().Vertices), len(tagged))
	}
	for _, obj := range tagged {
		if obj.Collider == nil || obj.Collider.Radius != 0.5 {
			t.Errorf("Indicator %s should have a 0.5 collider", obj.Name)
		}
	}
}

func TestIndicatorsStartIdle(t *testing.T) {
	f, _ := newField(t, 0)

	ind := indicatorAt(t, f, hexgrid.Key{})
	if ind.Appearance() != scripts.Idle {
		t.Errorf("Expected Idle, got %v", ind.Appearance())
	}
}

func TestIncreaseSignalRaisesNode(t *testing.T) {
	f, _ := newField(t, 0)
	center := hexgrid.Key{}

	indicatorAt(t, f, center).OnPointerEvent(behaviour.PointerEvent{Pressed: true})

	if h, _ := f.Height(center); h != 1 {
		t.Errorf("Expected height 1, got %d", h)
	}
	y := f.Indicator(center).Transform.Position.Y()
	if y != 0.5 {
		t.Errorf("Indicator should move to y=0.5, got %f", y)
	}
}

func TestDecreaseSignalLowersNode(t *testing.T) {
	f, _ := newField(t, 0)
	corner := hexgrid.Key{}.Add(hexgrid.Left)

	indicatorAt(t, f, corner).OnPointerEvent(behaviour.PointerEvent{Pressed: true, Shift: true})

	if h, _ := f.Height(corner); h != -1 {
		t.Errorf("Expected height -1, got %d", h)
	}
}

func TestRaisePullsNeighbours(t *testing.T) {
	f, _ := newField(t, 0)
	center := hexgrid.Key{}

	f.Raise(center)
	f.Raise(center)
	f.Raise(center)

	if h, _ := f.Height(center); h != 3 {
		t.Fatalf("Expected center at 3, got %d", h)
	}
	for _, c := range hexgrid.NewHexagon(center).Corners {
		if h, _ := f.Height(c); h != 2 {
			t.Errorf("Corner %v: expected height 2, got %d", c, h)
		}
	}
}

func TestRaiseUnknownKeyIsIgnored(t *testing.T) {
	f, _ := newField(t, 0)

	f.Raise(hexgrid.Key{X: 99, Y: 99})

	if h, _ := f.Height(hexgrid.Key{}); h != 0 {
		t.Errorf("Unknown key should not change the field, center at %d", h)
	}
}

func TestGrowAndShrink(t *testing.T) {
	f, cm := newField(t, 0)
	rebuilds := 0
	f.OnRebuild(func() { rebuilds++ })

	if err := f.Grow(context.Background()); err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if f.Radius() != 1 || len(f.Grid().Hexagons) != 7 {
		t.Errorf("Expected radius 1 with 7 hexagons, got %d/%d", f.Radius(), len(f.Grid().Hexagons))
	}
	if len(cm.GetAllGameObjects()) != len(f.Grid().Vertices) {
		t.Errorf("Old indicators should be unregistered, have %d objects", len(cm.GetAllGameObjects()))
	}

	if err := f.Shrink(context.Background()); err != nil {
		t.Fatalf("Shrink failed: %v", err)
	}
	if err := f.Shrink(context.Background()); err != nil {
		t.Fatalf("Shrink at zero failed: %v", err)
	}
	if f.Radius() != 0 {
		t.Errorf("Radius should not go below 0, got %d", f.Radius())
	}
	if rebuilds != 2 {
		t.Errorf("Expected 2 rebuilds, got %d", rebuilds)
	}
}

func TestGrowResetsHeights(t *testing.T) {
	f, _ := newField(t, 0)
	f.Raise(hexgrid.Key{})

	_ = f.Grow(context.Background())

	if h, _ := f.Height(hexgrid.Key{}); h != 0 {
		t.Errorf("Heights should reset on rebuild, center at %d", h)
	}
}

func TestRebuildKeepsOtherObjects(t *testing.T) {
	f, cm := newField(t, 0)
	marker := behaviour.NewGameObject("marker")
	cm.RegisterGameObject(marker)

	if err := f.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	all := cm.GetAllGameObjects()
	if len(all) != len(f.Grid().Vertices)+1 {
		t.Fatalf("Expected %d objects, got %d", len(f.Grid().Vertices)+1, len(all))
	}
	if all[0] != marker {
		t.Error("Rebuild should only replace tagged indicators")
	}
	if got := len(cm.FindGameObjectsWithTag(IndicatorTag)); got != len(f.Grid().Vertices) {
		t.Errorf("Expected %d indicators, got %d", len(f.Grid().Vertices), got)
	}
}

func TestOldIndicatorsDisconnected(t *testing.T) {
	f, _ := newField(t, 0)
	old := indicatorAt(t, f, hexgrid.Key{})

	_ = f.Grow(context.Background())
	old.OnPointerEvent(behaviour.PointerEvent{Pressed: true})

	if h, _ := f.Height(hexgrid.Key{}); h != 0 {
		t.Errorf("Destroyed indicator should not raise the field, center at %d", h)
	}
}

func TestSurfaceAndGridLines(t *testing.T) {
	f, _ := newField(t, 1)
	f.Raise(hexgrid.Key{})

	surface := f.Surface()
	if len(surface) != 18*7 {
		t.Errorf("Expected %d surface vertices, got %d", 18*7, len(surface))
	}
	if surface[0].Y() != 0.5 {
		t.Errorf("First triangle starts at the raised center, got y=%f", surface[0].Y())
	}

	lines := f.GridLines()
	if len(lines) != 7 {
		t.Fatalf("Expected 7 outlines, got %d", len(lines))
	}
	for _, loop := range lines {
		if len(loop) != 6 {
			t.Errorf("Outline should have 6 points, got %d", len(loop))
		}
	}
	if y := lines[0][0].Y(); y < 0.01-1e-6 || y > 0.01+1e-6 {
		t.Errorf("Outline should sit 0.01 above a flat corner, got %f", y)
	}
}

func TestSceneMarkersFollowMaterial(t *testing.T) {
	f, _ := newField(t, 0)

	indicatorAt(t, f, hexgrid.Key{}).OnPointerEnter()
	scene := f.Scene()

	if len(scene.Markers) != 7 {
		t.Fatalf("Expected 7 markers, got %d", len(scene.Markers))
	}
	if scene.Markers[0].Material.DiffuseColor != renderer.White {
		t.Errorf("Hovered center marker should be white, got %v", scene.Markers[0].Material.DiffuseColor)
	}
	if scene.Markers[1].Material.DiffuseColor != renderer.Gray {
		t.Errorf("Other markers should stay gray, got %v", scene.Markers[1].Material.DiffuseColor)
	}
}

func TestNoiseSeedKeepsNeighboursWithinStep(t *testing.T) {
	cfg := config.Default().Field
	cfg.FieldRadius = 2
	cfg.Noise = config.NoiseConfig{Enabled: true, Seed: 7, Scale: 0.8, Amplitude: 4}
	f := New(cfg, behaviour.NewComponentManager())
	if err := f.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	for _, n := range f.Grid().Nodes {
		h, _ := f.Height(n.Key)
		for _, c := range n.Connections {
			hc, _ := f.Height(c)
			if d := h - hc; d > 1 || d < -1 {
				t.Fatalf("Nodes %v and %v differ by %d", n.Key, c, d)
			}
		}
	}
}

func TestNoiseSeedDeterministic(t *testing.T) {
	cfg := config.Default().Field
	cfg.FieldRadius = 1
	cfg.Noise = config.NoiseConfig{Enabled: true, Seed: 3, Scale: 0.5, Amplitude: 3}

	a := New(cfg, behaviour.NewComponentManager())
	b := New(cfg, behaviour.NewComponentManager())
	_ = a.Rebuild(context.Background())
	_ = b.Rebuild(context.Background())

	for k := range a.Grid().Vertices {
		ha, _ := a.Height(k)
		hb, _ := b.Height(k)
		if ha != hb {
			t.Fatalf("Same seed gave different heights at %v: %d vs %d", k, ha, hb)
		}
	}
}
