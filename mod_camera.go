package lumen

// CameraModule owns the session camera. The camera is an explicit App
// resource mutated only by the control system below, which keeps the
// single-threaded, frame-ordered access rule visible in the wiring rather
// than implied by a global.
type CameraModule struct {
	// StartCaptured grabs the cursor for free-look immediately. Tab
	// toggles capture either way.
	StartCaptured bool
}

func (m CameraModule) Install(app *App, cmd *Commands) {
	cam := NewCamera()
	ctl := NewCameraController(cam)
	cmd.AddResources(cam, ctl)

	if input := GetResource[Input](app); input != nil {
		input.MouseCaptured = m.StartCaptured
	}

	app.UseSystem(
		System(cameraControlSystem).InStage(Update),
	)
}

func cameraControlSystem(input *Input, ctl *CameraController, time *Time, cmd *Commands) {
	if input.Pressed[KeyEscape] {
		cmd.Quit()
	}
	if input.JustPressed[KeyTab] {
		input.MouseCaptured = !input.MouseCaptured
		ctl.ResetBaseline()
	}

	if input.MouseCaptured {
		ctl.HandleCursor(float32(input.MouseX), float32(input.MouseY))
	}
	if input.ScrollY != 0 {
		ctl.HandleScroll(float32(input.ScrollY))
	}

	dt := time.Seconds()
	if input.Pressed[KeyW] {
		ctl.HandleMove(MoveForward, dt)
	}
	if input.Pressed[KeyS] {
		ctl.HandleMove(MoveBackward, dt)
	}
	if input.Pressed[KeyA] {
		ctl.HandleMove(MoveLeft, dt)
	}
	if input.Pressed[KeyD] {
		ctl.HandleMove(MoveRight, dt)
	}
	if input.Pressed[KeyQ] {
		ctl.HandleMove(MoveUp, dt)
	}
	if input.Pressed[KeyE] {
		ctl.HandleMove(MoveDown, dt)
	}
}
