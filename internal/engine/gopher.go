package engine

import (
	"context"
	"fmt"
	"runtime"

	"HexTerrain/internal/behaviour"
	"HexTerrain/internal/config"
	"HexTerrain/internal/field"
	"HexTerrain/internal/input"
	"HexTerrain/internal/logger"
	"HexTerrain/internal/renderer"

	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// fixed update runs once every fixedUpdateFrames frames
const fixedUpdateFrames = 3

// Gopher hosts the field in a GLFW window. Every callback and scene mutation
// runs on the locked main thread inside RenderLoop.
type Gopher struct {
	Width      int32
	Height     int32
	Title      string
	Camera     *renderer.Camera
	Manager    *behaviour.ComponentManager
	Dispatcher *input.Dispatcher
	Field      *field.Field

	cfg           *config.Config
	rendererAPI   renderer.Render
	window        *glfw.Window
	configUpdates <-chan *config.Config
	frameTrackId  int

	lastX, lastY float64
	orbiting     bool
}

func NewGopher(cfg *config.Config) *Gopher {
	logger.Log.Info("HexTerrain initializing...")

	manager := behaviour.NewComponentManager()
	dispatcher := input.NewDispatcher(manager)
	f := field.New(cfg.Field, manager)
	f.OnRebuild(dispatcher.Reset)

	camera := renderer.NewDefaultCamera(cfg.Window.Width, cfg.Window.Height)
	camera.Position = mgl.Vec3(cfg.Camera.Position)
	camera.SetFov(cfg.Camera.Fov)
	camera.LookAt(mgl.Vec3(cfg.Camera.Target))

	return &Gopher{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Title:       cfg.Window.Title,
		Camera:      camera,
		Manager:     manager,
		Dispatcher:  dispatcher,
		Field:       f,
		cfg:         cfg,
		rendererAPI: &renderer.OpenGLRenderer{},
	}
}

// WatchConfig makes the loop apply configs received on updates at the start of a frame
func (gopher *Gopher) WatchConfig(updates <-chan *config.Config) {
	gopher.configUpdates = updates
}

// Render opens the window and blocks in the render loop until it closes or ctx ends
func (gopher *Gopher) Render(ctx context.Context) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	gopher.window = window
	window.MakeContextCurrent()
	styleWindow(window, renderer.ClearColorR, renderer.ClearColorG, renderer.ClearColorB)

	fbWidth, fbHeight := window.GetFramebufferSize()
	gopher.rendererAPI.Init(int32(fbWidth), int32(fbHeight))

	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetCursorPosCallback(gopher.cursorCallback)
	window.SetCursorEnterCallback(gopher.cursorEnterCallback)
	window.SetMouseButtonCallback(gopher.mouseButtonCallback)
	window.SetKeyCallback(gopher.keyCallback(ctx))
	window.SetFramebufferSizeCallback(gopher.framebufferCallback)
	window.SetSizeCallback(gopher.sizeCallback)

	if err := gopher.Field.Rebuild(ctx); err != nil {
		return err
	}

	gopher.RenderLoop(ctx)
	return nil
}

func (gopher *Gopher) RenderLoop(ctx context.Context) {
	defer gopher.rendererAPI.Cleanup()

	for !gopher.window.ShouldClose() {
		if ctx.Err() != nil {
			return
		}

		gopher.applyConfigUpdates(ctx)

		if gopher.frameTrackId >= fixedUpdateFrames {
			gopher.Manager.FixedUpdateAll()
			gopher.frameTrackId = 0
		}
		gopher.Manager.UpdateAll()

		gopher.rendererAPI.Render(*gopher.Camera, gopher.Field.Scene())

		gopher.window.SwapBuffers()
		gopher.frameTrackId++
		glfw.PollEvents()
	}
}

func (gopher *Gopher) applyConfigUpdates(ctx context.Context) {
	for {
		select {
		case cfg, ok := <-gopher.configUpdates:
			if !ok {
				gopher.configUpdates = nil
				return
			}
			gopher.cfg = cfg
			if err := gopher.Field.Configure(ctx, cfg.Field); err != nil {
				logger.Log.Error("Failed to apply config", zap.Error(err))
			}
		default:
			return
		}
	}
}

// cursorCallback orbits the camera around the configured target while the right
// button is held, otherwise it moves the hover target
func (gopher *Gopher) cursorCallback(w *glfw.Window, xpos, ypos float64) {
	if w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if !gopher.orbiting {
			gopher.orbiting = true
		} else {
			target := mgl.Vec3(gopher.cfg.Camera.Target)
			gopher.Camera.Orbit(target, float32(xpos-gopher.lastX), float32(ypos-gopher.lastY))
		}
		gopher.lastX, gopher.lastY = xpos, ypos
		return
	}
	gopher.orbiting = false

	width, height := w.GetSize()
	if width == 0 || height == 0 {
		return
	}
	ray := renderer.ScreenToRay(*gopher.Camera, float32(xpos), float32(ypos), width, height)
	gopher.Dispatcher.Hover(ray)
}

func (gopher *Gopher) cursorEnterCallback(_ *glfw.Window, entered bool) {
	if !entered {
		gopher.Dispatcher.Leave()
	}
}

func (gopher *Gopher) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action == glfw.Repeat {
		return
	}
	gopher.Dispatcher.Button(behaviour.PointerEvent{
		Button:  behaviour.MouseButtonLeft,
		Pressed: action == glfw.Press,
		Shift:   mods&glfw.ModShift != 0,
	})
}

func (gopher *Gopher) keyCallback(ctx context.Context) glfw.KeyCallback {
	return func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}

		var err error
		switch key {
		case glfw.KeyEqual, glfw.KeyKPAdd:
			err = gopher.Field.Grow(ctx)
		case glfw.KeyMinus, glfw.KeyKPSubtract:
			err = gopher.Field.Shrink(ctx)
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
		if err != nil {
			logger.Log.Error("Failed to resize field", zap.Error(err))
		}
	}
}

func (gopher *Gopher) framebufferCallback(_ *glfw.Window, width, height int) {
	gopher.rendererAPI.UpdateViewport(int32(width), int32(height))
}

func (gopher *Gopher) sizeCallback(_ *glfw.Window, width, height int) {
	gopher.Width, gopher.Height = int32(width), int32(height)
	gopher.Camera.SetViewport(gopher.Width, gopher.Height)
}
