package lumen

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyA int = iota
	KeyD
	KeyE
	KeyO
	KeyP
	KeyQ
	KeyS
	KeyW
	KeySpace
	KeyEscape
	KeyTab
	KeyShift
	KeyControl
	keyCount
)

var keyToGlfw = map[int]glfw.Key{
	KeyA:       glfw.KeyA,
	KeyD:       glfw.KeyD,
	KeyE:       glfw.KeyE,
	KeyO:       glfw.KeyO,
	KeyP:       glfw.KeyP,
	KeyQ:       glfw.KeyQ,
	KeyS:       glfw.KeyS,
	KeyW:       glfw.KeyW,
	KeySpace:   glfw.KeySpace,
	KeyEscape:  glfw.KeyEscape,
	KeyTab:     glfw.KeyTab,
	KeyShift:   glfw.KeyLeftShift,
	KeyControl: glfw.KeyLeftControl,
}

// Input is the per-frame input snapshot: key state, cursor position, the
// scroll delta accumulated since the previous frame, and whether the
// cursor is captured for free-look.
type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY float64
	ScrollY        float64
	MouseCaptured  bool

	pendingScroll float64
}

// takeScroll hands the scroll delta accumulated by callbacks to the
// current frame and resets the accumulator.
func (input *Input) takeScroll() {
	input.ScrollY = input.pendingScroll
	input.pendingScroll = 0
}

type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	input := &Input{}
	cmd.AddResources(input)

	ws := GetResource[WindowState](app)
	if ws == nil {
		panic("InputModule requires a WindowState resource; install PlatformWindowModule first")
	}
	ws.Window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		input.pendingScroll += yoff
	})

	app.UseSystem(
		System(inputSystem).InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		action := s.Window.GetKey(glfwKey)

		input.JustPressed[key] = false
		input.JustReleased[key] = false

		if glfw.Press == action {
			if !input.Pressed[key] {
				input.JustPressed[key] = true
			}
			input.Pressed[key] = true
		} else if glfw.Release == action {
			if input.Pressed[key] {
				input.JustReleased[key] = true
			}
			input.Pressed[key] = false
		}
	}

	input.MouseX, input.MouseY = s.Window.GetCursorPos()

	// Scroll callbacks fire during PollEvents.
	input.takeScroll()

	if input.MouseCaptured {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}
