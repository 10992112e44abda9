package behaviour

// MouseButton identifies the button of a PointerEvent
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// PointerEvent is a press or release delivered to the hovered object
type PointerEvent struct {
	Button  MouseButton
	Pressed bool
	Shift   bool
}

// PointerEnterHandler is implemented by components that react to the pointer entering their object
type PointerEnterHandler interface {
	OnPointerEnter()
}

// PointerExitHandler is implemented by components that react to the pointer leaving their object
type PointerExitHandler interface {
	OnPointerExit()
}

// PointerEventHandler is implemented by components that react to clicks on their object
type PointerEventHandler interface {
	OnPointerEvent(ev PointerEvent)
}

// MaterialTarget is the visual collaborator a component recolours
type MaterialTarget interface {
	SetDiffuseColor(color [3]float32)
}

func DispatchPointerEnter(obj *GameObject) {
	forEachEnabled(obj, func(c Component) {
		if h, ok := c.(PointerEnterHandler); ok {
			h.OnPointerEnter()
		}
	})
}

func DispatchPointerExit(obj *GameObject) {
	forEachEnabled(obj, func(c Component) {
		if h, ok := c.(PointerExitHandler); ok {
			h.OnPointerExit()
		}
	})
}

func DispatchPointerEvent(obj *GameObject, ev PointerEvent) {
	forEachEnabled(obj, func(c Component) {
		if h, ok := c.(PointerEventHandler); ok {
			h.OnPointerEvent(ev)
		}
	})
}

func forEachEnabled(obj *GameObject, fn func(Component)) {
	if obj == nil || !obj.Active {
		return
	}
	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			fn(comp)
		}
	}
}
