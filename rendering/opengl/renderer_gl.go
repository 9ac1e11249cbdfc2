package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"spheregen/core"
	"spheregen/rendering/opengl/shaders"
	"spheregen/rendering/scene"
)

// Key steps for model transforms
const (
	moveStep   = 0.1
	rotateStep = 15.0
	scaleStep  = 1.1
)

// WireframeRenderer draws a wireframe model in a GLFW window and applies
// keyboard transforms to it
type WireframeRenderer struct {
	window *glfw.Window
	camera *scene.OrbitCamera

	program      uint32
	mvpLoc       int32
	lineColorLoc int32

	vao        uint32
	vbo        uint32
	lineFloats int32

	model *core.Wireframe
	dirty bool

	mouseDown  bool
	lastMouseX float64
	lastMouseY float64
}

// NewWireframeRenderer opens a window and prepares the line program
func NewWireframeRenderer(width, height int, title string) (*WireframeRenderer, error) {
	runtime.LockOSThread()

	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// Configure OpenGL context
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %v", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}
	fmt.Println("OpenGL version:", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := shaders.CompileWireframeShaders()
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to compile wireframe shaders: %v", err)
	}

	// The framebuffer can be larger than the window on HiDPI screens
	fbWidth, fbHeight := window.GetFramebufferSize()

	r := &WireframeRenderer{
		window:       window,
		camera:       scene.NewOrbitCamera(fbWidth, fbHeight),
		program:      program,
		mvpLoc:       gl.GetUniformLocation(program, gl.Str("mvp\x00")),
		lineColorLoc: gl.GetUniformLocation(program, gl.Str("lineColor\x00")),
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.05, 0.05, 0.1, 1.0)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	// Setup callbacks
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.onResize(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		r.onKey(key, action)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		r.camera.Zoom(yoff)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		r.onMouseButton(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		r.onMouseMove(xpos, ypos)
	})

	return r, nil
}

// SetModel replaces the drawn model
func (r *WireframeRenderer) SetModel(w *core.Wireframe) {
	r.model = w
	r.dirty = true
}

// uploadModel copies the model edges into the line buffer
func (r *WireframeRenderer) uploadModel() {
	r.dirty = false
	if r.model == nil {
		r.lineFloats = 0
		return
	}

	lines := scene.LineVertices(r.model)
	r.lineFloats = int32(len(lines))

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(lines) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(lines)*4, gl.Ptr(lines), gl.DYNAMIC_DRAW)
}

// Render draws one frame
func (r *WireframeRenderer) Render() {
	if r.dirty {
		r.uploadModel()
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.lineFloats > 0 {
		mvp := r.camera.MVP()
		gl.UseProgram(r.program)
		gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0])
		gl.Uniform3f(r.lineColorLoc, 0.55, 0.85, 1.0)

		gl.BindVertexArray(r.vao)
		gl.DrawArrays(gl.LINES, 0, r.lineFloats/3)
		gl.BindVertexArray(0)
	}

	r.window.SwapBuffers()
}

// ShouldClose returns true if the window should close
func (r *WireframeRenderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// PollEvents processes window events
func (r *WireframeRenderer) PollEvents() {
	glfw.PollEvents()
}

// Terminate releases GL objects and closes the window
func (r *WireframeRenderer) Terminate() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
	r.window.Destroy()
	glfw.Terminate()
}

func (r *WireframeRenderer) onResize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.Resize(width, height)
}

func (r *WireframeRenderer) onKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	switch key {
	case glfw.KeyEscape:
		r.window.SetShouldClose(true)
	case glfw.KeyRight:
		r.transform(core.Move, moveStep, core.AxisX)
	case glfw.KeyLeft:
		r.transform(core.Move, -moveStep, core.AxisX)
	case glfw.KeyUp:
		r.transform(core.Move, moveStep, core.AxisY)
	case glfw.KeyDown:
		r.transform(core.Move, -moveStep, core.AxisY)
	case glfw.KeyPageUp:
		r.transform(core.Move, moveStep, core.AxisZ)
	case glfw.KeyPageDown:
		r.transform(core.Move, -moveStep, core.AxisZ)
	case glfw.KeyX:
		r.transform(core.Rotate, rotateStep, core.AxisX)
	case glfw.KeyY:
		r.transform(core.Rotate, rotateStep, core.AxisY)
	case glfw.KeyZ:
		r.transform(core.Rotate, rotateStep, core.AxisZ)
	case glfw.KeyEqual, glfw.KeyKPAdd:
		r.transform(core.Scale, scaleStep, core.AxisX)
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		r.transform(core.Scale, 1/scaleStep, core.AxisX)
	}
}

func (r *WireframeRenderer) transform(kind core.TransformKind, value float64, axis core.Axis) {
	if r.model == nil {
		return
	}
	r.model.Transform(kind, value, axis)
	r.dirty = true
}

func (r *WireframeRenderer) onMouseButton(button glfw.MouseButton, action glfw.Action) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		r.mouseDown = true
		r.lastMouseX, r.lastMouseY = r.window.GetCursorPos()
	case glfw.Release:
		r.mouseDown = false
	}
}

func (r *WireframeRenderer) onMouseMove(xpos, ypos float64) {
	if !r.mouseDown {
		return
	}
	r.camera.Drag(xpos-r.lastMouseX, ypos-r.lastMouseY)
	r.lastMouseX = xpos
	r.lastMouseY = ypos
}
