// Package input turns window-level cursor and button state into pointer
// callbacks on scene objects.
package input

import (
	"HexTerrain/internal/behaviour"
	"HexTerrain/internal/renderer"
)

// ObjectSource lists the objects that can be picked
type ObjectSource interface {
	GetAllGameObjects() []*behaviour.GameObject
}

// Dispatcher tracks which object is under the pointer. Enter and exit are
// delivered only when that object changes; clicks go to the hovered object.
type Dispatcher struct {
	scene   ObjectSource
	hovered *behaviour.GameObject
}

func NewDispatcher(scene ObjectSource) *Dispatcher {
	return &Dispatcher{scene: scene}
}

func (d *Dispatcher) Hovered() *behaviour.GameObject {
	return d.hovered
}

// Pick returns the nearest active object whose collider the ray hits
func (d *Dispatcher) Pick(ray renderer.Ray) *behaviour.GameObject {
	var best *behaviour.GameObject
	var bestDist float32
	for _, obj := range d.scene.GetAllGameObjects() {
		if !obj.Active || obj.Collider == nil {
			continue
		}
		hit, dist, _ := renderer.RayIntersectSphere(ray, obj.Transform.Position, obj.Collider.Radius)
		if hit && (best == nil || dist < bestDist) {
			best = obj
			bestDist = dist
		}
	}
	return best
}

// Hover moves the pointer along ray, exiting the old target before entering the new one
func (d *Dispatcher) Hover(ray renderer.Ray) {
	d.setHovered(d.Pick(ray))
}

// Leave drops the hover target with an exit, as when the cursor leaves the window
func (d *Dispatcher) Leave() {
	d.setHovered(nil)
}

func (d *Dispatcher) setHovered(next *behaviour.GameObject) {
	if next == d.hovered {
		return
	}
	prev := d.hovered
	d.hovered = next
	if prev != nil {
		behaviour.DispatchPointerExit(prev)
	}
	if next != nil {
		behaviour.DispatchPointerEnter(next)
	}
}

// Button delivers a press or release to the hovered object, if any
func (d *Dispatcher) Button(ev behaviour.PointerEvent) {
	if d.hovered == nil {
		return
	}
	behaviour.DispatchPointerEvent(d.hovered, ev)
}

// Reset forgets the hover target without callbacks. Used when the scene is rebuilt.
func (d *Dispatcher) Reset() {
	d.hovered = nil
}
