// Package field is the hex terrain scene: a grid of hexagons whose shared
// corners carry heights, with one clickable indicator per corner and centre.
package field

import (
	"context"
	"fmt"
	"math"

	"HexTerrain/internal/behaviour"
	"HexTerrain/internal/config"
	"HexTerrain/internal/hexgrid"
	"HexTerrain/internal/logger"
	"HexTerrain/internal/renderer"
	"HexTerrain/internal/terrain"
	"HexTerrain/scripts"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	IndicatorTag = "indicator"
	lineLift     = 0.01
	markerSize   = 10
)

var (
	SurfaceColor = [3]float32{0.35, 0.55, 0.3}
	GridColor    = [3]float32{0.1, 0.1, 0.1}
)

type indicatorEntry struct {
	object   *behaviour.GameObject
	material *renderer.Material
}

type Field struct {
	cfg        config.FieldConfig
	manager    *behaviour.ComponentManager
	terrain    *terrain.Terrain[hexgrid.Key]
	grid       *hexgrid.Grid
	keys       []hexgrid.Key // indicator keys in spawn order
	indicators map[hexgrid.Key]indicatorEntry
	onRebuild  []func()
}

// New returns an empty field. Call Rebuild to generate it.
func New(cfg config.FieldConfig, manager *behaviour.ComponentManager) *Field {
	return &Field{
		cfg:        cfg,
		manager:    manager,
		terrain:    terrain.New[hexgrid.Key](1),
		indicators: make(map[hexgrid.Key]indicatorEntry),
	}
}

// OnRebuild registers fn to run after every rebuild, once the old indicators are gone
func (f *Field) OnRebuild(fn func()) {
	f.onRebuild = append(f.onRebuild, fn)
}

func (f *Field) Radius() int {
	return f.cfg.FieldRadius
}

func (f *Field) Grid() *hexgrid.Grid {
	return f.grid
}

func (f *Field) Height(k hexgrid.Key) (int, bool) {
	return f.terrain.Height(k)
}

// Indicator returns the indicator object standing on k
func (f *Field) Indicator(k hexgrid.Key) *behaviour.GameObject {
	return f.indicators[k].object
}

// Configure swaps in new settings and rebuilds
func (f *Field) Configure(ctx context.Context, cfg config.FieldConfig) error {
	f.cfg = cfg
	return f.Rebuild(ctx)
}

// Grow adds a ring of hexagons. Heights are reset.
func (f *Field) Grow(ctx context.Context) error {
	f.cfg.FieldRadius++
	return f.Rebuild(ctx)
}

// Shrink removes the outer ring. A single hexagon is the minimum.
func (f *Field) Shrink(ctx context.Context) error {
	if f.cfg.FieldRadius == 0 {
		return nil
	}
	f.cfg.FieldRadius--
	return f.Rebuild(ctx)
}

// Rebuild regenerates the grid, resets the terrain and respawns every indicator
func (f *Field) Rebuild(ctx context.Context) error {
	grid, err := hexgrid.Build(ctx, f.cfg.FieldRadius, f.cfg.HexRadius)
	if err != nil {
		return fmt.Errorf("rebuild field: %w", err)
	}

	f.grid = grid
	f.terrain = terrain.New[hexgrid.Key](1)
	for _, n := range grid.Nodes {
		f.terrain.AddNode(n.Key)
		for _, c := range n.Connections {
			f.terrain.AddConnectedNodes(n.Key, c)
		}
	}

	f.keys = f.keys[:0]
	seen := make(map[hexgrid.Key]bool, len(grid.Vertices))
	for _, n := range grid.Nodes {
		if !seen[n.Key] {
			seen[n.Key] = true
			f.keys = append(f.keys, n.Key)
		}
	}

	if f.cfg.Noise.Enabled {
		f.seedHeights()
	}

	f.respawnIndicators()

	for _, fn := range f.onRebuild {
		fn()
	}

	logger.Log.Info("Field rebuilt",
		zap.Int("radius", f.cfg.FieldRadius),
		zap.Int("hexagons", len(grid.Hexagons)),
		zap.Int("nodes", f.terrain.Len()))
	return nil
}

// seedHeights walks every node toward a Perlin target through the normal
// raise and lower operations, so neighbours stay within one step.
func (f *Field) seedHeights() {
	noise := perlin.NewPerlin(2, 2, 3, f.cfg.Noise.Seed)
	amplitude := float64(f.cfg.Noise.Amplitude)
	for _, k := range f.keys {
		pos := f.grid.Vertices[k]
		value := noise.Noise2D(float64(pos.X())*f.cfg.Noise.Scale, float64(pos.Y())*f.cfg.Noise.Scale)
		target := int(math.Round(value * amplitude))

		for h, _ := f.terrain.Height(k); h < target; h, _ = f.terrain.Height(k) {
			_ = f.terrain.IncreaseHeight(k)
		}
		for h, _ := f.terrain.Height(k); h > target; h, _ = f.terrain.Height(k) {
			_ = f.terrain.DecreaseHeight(k)
		}
	}
}

func (f *Field) respawnIndicators() {
	for _, obj := range f.manager.FindGameObjectsWithTag(IndicatorTag) {
		f.manager.UnregisterGameObject(obj)
	}
	f.indicators = make(map[hexgrid.Key]indicatorEntry, len(f.keys))

	for _, k := range f.keys {
		key := k
		material := renderer.NewFlatMaterial("indicator", renderer.Gray)
		indicator := scripts.NewIndicator(material)
		indicator.Increase.Connect(func() { f.Raise(key) })
		indicator.Decrease.Connect(func() { f.Lower(key) })

		obj := behaviour.NewGameObject(fmt.Sprintf("indicator %d,%d", key.X, key.Y))
		obj.Tag = IndicatorTag
		obj.Collider = &behaviour.Collider{Radius: f.cfg.IndicatorRadius}
		obj.Transform.SetPosition(f.position(key))
		obj.AddComponent(indicator)
		f.manager.RegisterGameObject(obj)

		f.indicators[key] = indicatorEntry{object: obj, material: material}
	}
}

// Raise lifts k one step, dragging lower neighbours along
func (f *Field) Raise(k hexgrid.Key) {
	if err := f.terrain.IncreaseHeight(k); err != nil {
		logger.Log.Warn("Raise failed", zap.Int("x", k.X), zap.Int("y", k.Y), zap.Error(err))
		return
	}
	f.syncIndicators()
	logger.Log.Debug("Node raised", zap.Int("x", k.X), zap.Int("y", k.Y))
}

// Lower drops k one step, dragging higher neighbours along
func (f *Field) Lower(k hexgrid.Key) {
	if err := f.terrain.DecreaseHeight(k); err != nil {
		logger.Log.Warn("Lower failed", zap.Int("x", k.X), zap.Int("y", k.Y), zap.Error(err))
		return
	}
	f.syncIndicators()
	logger.Log.Debug("Node lowered", zap.Int("x", k.X), zap.Int("y", k.Y))
}

func (f *Field) syncIndicators() {
	for k, entry := range f.indicators {
		entry.object.Transform.SetPosition(f.position(k))
	}
}

// position is the world position of a lattice key at its current height
func (f *Field) position(k hexgrid.Key) mgl32.Vec3 {
	v := f.grid.Vertices[k]
	h, _ := f.terrain.Height(k)
	return mgl32.Vec3{v.X(), float32(h) * f.cfg.NodeHeight, v.Y()}
}

// Surface returns the terrain as a triangle list
func (f *Field) Surface() []mgl32.Vec3 {
	if f.grid == nil {
		return nil
	}
	out := make([]mgl32.Vec3, 0, len(f.grid.Nodes))
	for _, n := range f.grid.Nodes {
		out = append(out, f.position(n.Key))
	}
	return out
}

// GridLines returns one closed outline per hexagon, lifted just above the surface
func (f *Field) GridLines() [][]mgl32.Vec3 {
	if f.grid == nil {
		return nil
	}
	lift := mgl32.Vec3{0, lineLift, 0}
	out := make([][]mgl32.Vec3, 0, len(f.grid.Order))
	for _, center := range f.grid.Order {
		hexagon := f.grid.Hexagons[center]
		loop := make([]mgl32.Vec3, 0, len(hexagon.Corners))
		for _, c := range hexagon.Corners {
			loop = append(loop, f.position(c).Add(lift))
		}
		out = append(out, loop)
	}
	return out
}

// Scene collects everything the renderer draws for this field
func (f *Field) Scene() *renderer.Scene {
	markers := make([]renderer.Marker, 0, len(f.keys))
	for _, k := range f.keys {
		entry := f.indicators[k]
		markers = append(markers, renderer.Marker{
			Position: entry.object.Transform.Position,
			Size:     markerSize,
			Material: entry.material,
		})
	}
	return &renderer.Scene{
		Surface:      f.Surface(),
		SurfaceColor: SurfaceColor,
		Grid:         f.GridLines(),
		GridColor:    GridColor,
		Markers:      markers,
	}
}
