package lumen

// Commands is the handle systems and modules use to talk back to the App.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Quit requests that the frame loop stop after the current frame.
func (cmd *Commands) Quit() {
	cmd.app.quit()
}
