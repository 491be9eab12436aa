package lumen

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState wraps the single shared GLFW window and its GL context.
type WindowState struct {
	Window *glfw.Window
	Width  int
	Height int
}

// ViewportConfig carries the viewport dimensions and clip planes used for
// projection. It is configuration, not derived state: modules read it, the
// window module writes it once at install.
type ViewportConfig struct {
	Width           int
	Height          int
	Near            float32
	Far             float32
	OrthoHalfExtent float32
}

// Aspect returns width/height as a float ratio.
func (v *ViewportConfig) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// PlatformWindowModule creates the shared GLFW window and GL context and
// publishes WindowState and ViewportConfig resources. Install is
// idempotent: if a WindowState resource already exists it is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

// NewPlatformWindow creates a window module, filling in defaults for zero
// values.
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = 1000
	}
	if height <= 0 {
		height = 800
	}
	if title == "" {
		title = "Lumen"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if GetResource[WindowState](app) != nil {
		// Already created elsewhere; preserve the single-window invariant.
		return
	}

	ws := createWindowState(m.Width, m.Height, m.Title)
	cmd.AddResources(ws, &ViewportConfig{
		Width:           m.Width,
		Height:          m.Height,
		Near:            0.1,
		Far:             100.0,
		OrthoHalfExtent: 10.0,
	})

	app.UseSystem(
		System(windowPresentSystem).InStage(PostRender),
	)
	app.OnShutdown(func() {
		glfw.Terminate()
	})
}

func createWindowState(width, height int, title string) *WindowState {
	// GLFW windows and GL contexts are bound to the creating OS thread.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		panic(fmt.Sprintf("failed to initialize GLFW: %v", err))
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		panic(fmt.Sprintf("failed to create GLFW window: %v", err))
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		panic(fmt.Sprintf("failed to initialize OpenGL: %v", err))
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return &WindowState{
		Window: window,
		Width:  width,
		Height: height,
	}
}

func windowPresentSystem(s *WindowState, cmd *Commands) {
	s.Window.SwapBuffers()
	if s.Window.ShouldClose() {
		cmd.Quit()
	}
}
