package scripts

import (
	"HexTerrain/internal/behaviour"
	"HexTerrain/internal/renderer"
)

// Appearance is the visual state of an Indicator
type Appearance int

const (
	Idle Appearance = iota
	Hovered
)

func (a Appearance) Color() [3]float32 {
	if a == Hovered {
		return renderer.White
	}
	return renderer.Gray
}

func (a Appearance) String() string {
	if a == Hovered {
		return "Hovered"
	}
	return "Idle"
}

// Indicator highlights while hovered and turns clicks into Increase, or
// Decrease when shift is held.
type Indicator struct {
	behaviour.BaseComponent

	Increase *behaviour.Signal
	Decrease *behaviour.Signal

	material   behaviour.MaterialTarget
	appearance Appearance
}

func init() {
	behaviour.RegisterScript("Indicator", func() behaviour.Component {
		return NewIndicator(renderer.NewFlatMaterial("indicator", renderer.Gray))
	})
}

func NewIndicator(material behaviour.MaterialTarget) *Indicator {
	return &Indicator{
		Increase: behaviour.NewSignal("increase"),
		Decrease: behaviour.NewSignal("decrease"),
		material: material,
	}
}

func (i *Indicator) Awake() {
	i.setAppearance(Idle)
}

func (i *Indicator) OnPointerEnter() {
	i.setAppearance(Hovered)
}

func (i *Indicator) OnPointerExit() {
	i.setAppearance(Idle)
}

// OnPointerEvent ignores releases
func (i *Indicator) OnPointerEvent(ev behaviour.PointerEvent) {
	if !ev.Pressed {
		return
	}
	if ev.Shift {
		i.Decrease.Emit()
	} else {
		i.Increase.Emit()
	}
}

func (i *Indicator) OnDestroy() {
	i.Increase.DisconnectAll()
	i.Decrease.DisconnectAll()
}

func (i *Indicator) Appearance() Appearance {
	return i.appearance
}

func (i *Indicator) setAppearance(a Appearance) {
	i.appearance = a
	if i.material != nil {
		i.material.SetDiffuseColor(a.Color())
	}
}
