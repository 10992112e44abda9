package renderer

import (
	"HexTerrain/internal/logger"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// OpenGLRenderer draws a Scene with a single flat-color program
type OpenGLRenderer struct {
	shader Shader
	vao    uint32
	vbo    uint32
	ready  bool
}

func (rend *OpenGLRenderer) Init(width, height int32) {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Viewport(0, 0, width, height)

	rend.shader = InitFlatShader()
	rend.shader.Compile()

	gl.GenVertexArrays(1, &rend.vao)
	gl.BindVertexArray(rend.vao)
	gl.GenBuffers(1, &rend.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.vbo)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	rend.ready = true
	logger.Log.Info("OpenGL render initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
}

func (rend *OpenGLRenderer) Render(camera Camera, scene *Scene) {
	gl.ClearColor(ClearColorR, ClearColorG, ClearColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if !rend.ready || scene == nil {
		return
	}

	rend.shader.Use()
	rend.shader.SetMat4("viewProjection", camera.GetViewProjection())
	rend.shader.SetFloat("pointSize", 1)
	gl.BindVertexArray(rend.vao)

	rend.draw(gl.TRIANGLES, scene.Surface, scene.SurfaceColor)
	for _, loop := range scene.Grid {
		rend.draw(gl.LINE_LOOP, loop, scene.GridColor)
	}

	for _, marker := range scene.Markers {
		material := marker.Material
		if material == nil {
			material = DefaultMaterial
		}
		rend.shader.SetFloat("pointSize", marker.Size)
		rend.draw(gl.POINTS, []mgl32.Vec3{marker.Position}, material.DiffuseColor)
	}
}

func (rend *OpenGLRenderer) draw(mode uint32, vertices []mgl32.Vec3, color [3]float32) {
	if len(vertices) == 0 {
		return
	}
	rend.shader.SetVec3("color", mgl32.Vec3(color))
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*3*4, gl.Ptr(vertices), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(vertices)))
}

// UpdateViewport updates the OpenGL viewport to match the current framebuffer size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Cleanup() {
	if !rend.ready {
		return
	}
	gl.DeleteBuffers(1, &rend.vbo)
	gl.DeleteVertexArrays(1, &rend.vao)
	gl.DeleteProgram(rend.shader.program)
	rend.ready = false
}

func GenShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile", zap.Uint32("shader type", shaderType), zap.String("log", log))
	}

	return shader
}

func GenShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link program", zap.String("log", log))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}
