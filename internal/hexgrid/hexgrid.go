// Package hexgrid lays out a field of hexagons on an integer lattice.
//
// A hexagon is a centre and six corners. Corners are shared between
// adjacent hexagons, so the lattice keys double as terrain node keys.
package hexgrid

import (
	"context"
	"fmt"
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Key is a lattice coordinate
type Key struct {
	X, Y int
}

func (k Key) Add(o Key) Key {
	return Key{k.X + o.X, k.Y + o.Y}
}

// Corner offsets from a hexagon centre, clockwise from the left corner
var (
	Left        = Key{-2, 0}
	TopLeft     = Key{-1, -2}
	TopRight    = Key{1, -2}
	Right       = Key{2, 0}
	BottomRight = Key{1, 2}
	BottomLeft  = Key{-1, 2}
)

var cornerOffsets = [6]Key{Left, TopLeft, TopRight, Right, BottomRight, BottomLeft}

var cornerUVs = [6]mgl32.Vec2{
	{0.0, 0.5},
	{0.25, 0.0},
	{0.75, 0.0},
	{1.0, 0.5},
	{0.75, 1.0},
	{0.25, 1.0},
}

var centerUV = mgl32.Vec2{0.5, 0.5}

type Hexagon struct {
	Center  Key
	Corners [6]Key // Left, TopLeft, TopRight, Right, BottomRight, BottomLeft
}

func NewHexagon(center Key) Hexagon {
	h := Hexagon{Center: center}
	for i, off := range cornerOffsets {
		h.Corners[i] = center.Add(off)
	}
	return h
}

// Neighbours returns the centres of the six hexagons sharing an edge with h
func (h Hexagon) Neighbours() [6]Key {
	var out [6]Key
	for i := range h.Corners {
		out[i] = h.Corners[i].Add(cornerOffsets[(i+1)%6])
	}
	return out
}

// Node is one triangle vertex of the surface mesh
type Node struct {
	Key         Key
	UV          mgl32.Vec2
	Connections []Key
}

type Grid struct {
	Radius    int
	HexRadius float32
	Hexagons  map[Key]Hexagon
	Order     []Key              // hexagon centres in generation order
	Vertices  map[Key]mgl32.Vec2 // lattice key to XZ world position
	Nodes     []Node             // triangle list, three nodes per triangle
}

type hexagonData struct {
	hexagon  Hexagon
	vertices map[Key]mgl32.Vec2
	nodes    []Node
}

// Build generates every hexagon within radius rings of the origin.
// Each ring is generated concurrently.
func Build(ctx context.Context, radius int, hexRadius float32) (*Grid, error) {
	if radius < 0 {
		return nil, fmt.Errorf("hexgrid: negative radius %d", radius)
	}

	pool := pond.NewResultPool[hexagonData](runtime.NumCPU(), pond.WithContext(ctx))
	defer pool.StopAndWait()

	grid := &Grid{
		Radius:    radius,
		HexRadius: hexRadius,
		Hexagons:  make(map[Key]Hexagon),
		Vertices:  make(map[Key]mgl32.Vec2),
	}

	seen := map[Key]bool{{}: true}
	frontier := []Key{{}}
	for ring := 0; len(frontier) > 0; ring++ {
		group := pool.NewGroup()
		for _, center := range frontier {
			center := center
			group.Submit(func() hexagonData {
				return buildHexagon(center, hexRadius)
			})
		}

		results, err := group.Wait()
		if err != nil {
			return nil, fmt.Errorf("hexgrid: ring %d: %w", ring, err)
		}

		var next []Key
		for _, data := range results {
			grid.Hexagons[data.hexagon.Center] = data.hexagon
			grid.Order = append(grid.Order, data.hexagon.Center)
			for k, v := range data.vertices {
				grid.Vertices[k] = v
			}
			grid.Nodes = append(grid.Nodes, data.nodes...)

			if ring >= radius {
				continue
			}
			for _, n := range data.hexagon.Neighbours() {
				if !seen[n] {
					seen[n] = true
					next = append(next, n)
				}
			}
		}
		frontier = next
	}

	return grid, nil
}

func buildHexagon(center Key, hexRadius float32) hexagonData {
	hexagon := NewHexagon(center)

	vertices := make(map[Key]mgl32.Vec2, 7)
	vertices[center] = worldPosition(center, hexRadius)
	for _, c := range hexagon.Corners {
		vertices[c] = worldPosition(c, hexRadius)
	}

	centerNode := Node{Key: center, UV: centerUV, Connections: hexagon.Corners[:]}
	corners := make([]Node, 6)
	for i, c := range hexagon.Corners {
		corners[i] = Node{
			Key: c,
			UV:  cornerUVs[i],
			Connections: []Key{
				hexagon.Corners[(i+5)%6],
				hexagon.Corners[(i+1)%6],
			},
		}
	}

	nodes := make([]Node, 0, 18)
	for i := range corners {
		nodes = append(nodes, centerNode, corners[i], corners[(i+1)%6])
	}

	return hexagonData{hexagon: hexagon, vertices: vertices, nodes: nodes}
}

func worldPosition(k Key, hexRadius float32) mgl32.Vec2 {
	return mgl32.Vec2{float32(k.X) * hexRadius, float32(k.Y) * hexRadius}
}

// HexagonCount is the number of hexagons Build produces for radius
func HexagonCount(radius int) int {
	return 1 + 3*radius*(radius+1)
}
