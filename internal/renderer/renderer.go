package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

var ClearColorR float32 = 0.1
var ClearColorG float32 = 0.1
var ClearColorB float32 = 0.12

// Marker is a point sprite drawn in its material's color
type Marker struct {
	Position mgl32.Vec3
	Size     float32
	Material *Material
}

// Scene is everything drawn in one frame
type Scene struct {
	Surface      []mgl32.Vec3   // triangle list
	SurfaceColor [3]float32
	Grid         [][]mgl32.Vec3 // closed line loops
	GridColor    [3]float32
	Markers      []Marker
}

type Render interface {
	Init(width, height int32)
	Render(camera Camera, scene *Scene)
	UpdateViewport(width, height int32)
	Cleanup()
}
