package behaviour

// Signal is a zero-payload event with any number of listeners.
// Listeners run synchronously, in connection order, on the emitting goroutine.
type Signal struct {
	name      string
	listeners []signalListener
	nextID    uint32
}

type signalListener struct {
	id uint32
	fn func()
}

// SignalHandle disconnects a listener added with Connect
type SignalHandle struct {
	id     uint32
	signal *Signal
}

func NewSignal(name string) *Signal {
	return &Signal{name: name}
}

func (s *Signal) Name() string {
	return s.name
}

// Connect adds fn to the listener list
func (s *Signal) Connect(fn func()) SignalHandle {
	s.nextID++
	s.listeners = append(s.listeners, signalListener{id: s.nextID, fn: fn})
	return SignalHandle{id: s.nextID, signal: s}
}

// Disconnect removes the listener. Calling it twice is a no-op.
func (h SignalHandle) Disconnect() {
	if h.signal == nil {
		return
	}
	s := h.signal
	for i := range s.listeners {
		if s.listeners[i].id == h.id {
			// fresh slice so an Emit in progress keeps its snapshot intact
			next := make([]signalListener, 0, len(s.listeners)-1)
			next = append(next, s.listeners[:i]...)
			s.listeners = append(next, s.listeners[i+1:]...)
			return
		}
	}
}

// DisconnectAll drops every listener
func (s *Signal) DisconnectAll() {
	s.listeners = nil
}

// Emit calls every listener connected at the time of the call
func (s *Signal) Emit() {
	listeners := s.listeners
	for _, l := range listeners {
		l.fn()
	}
}

// Len reports the number of connected listeners
func (s *Signal) Len() int {
	return len(s.listeners)
}
