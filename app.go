package lumen

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// Module is a unit of engine functionality. Install wires resources and
// systems into the app; it runs once, in registration order, before the
// frame loop starts.
type Module interface {
	Install(app *App, cmd *Commands)
}

// App owns the resources and the staged frame loop. All systems run on the
// calling goroutine, once per stage per frame; there is no parallel
// mutation of any resource.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	shutdown  []func()
	quitting  bool
}

func NewApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

// UseModules installs modules immediately, in order.
func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		module.Install(app, cmd)
	}
	return app
}

// OnShutdown registers a cleanup function. Cleanups run after the frame
// loop exits, in reverse registration order.
func (app *App) OnShutdown(fn func()) {
	app.shutdown = append(app.shutdown, fn)
}

// Run drives the frame loop until Quit is requested, then runs cleanups.
func (app *App) Run() {
	for !app.quitting {
		app.runFrame()
	}
	for i := len(app.shutdown) - 1; i >= 0; i-- {
		app.shutdown[i]()
	}
}

func (app *App) runFrame() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
	}
}

func (app *App) quit() {
	app.quitting = true
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("resource %s must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}
		app.resources[resourceType] = resource
	}
	return app
}

// GetResource fetches a previously added resource by type, or nil if no
// such resource exists. Intended for module Install wiring; systems should
// declare resources as parameters instead.
func GetResource[T any](app *App) *T {
	t := reflect.TypeOf((*T)(nil))
	if resource, ok := app.resources[t]; ok {
		return resource.(*T)
	}
	return nil
}

var typeOfCommands = reflect.TypeOf(&Commands{})

// callSystem invokes a system function, resolving each parameter from the
// resource map by its pointer type. *Commands is always resolvable.
func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())
	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)

		if argType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
			continue
		}
		if resource, ok := app.resources[argType]; ok {
			args[i] = reflect.ValueOf(resource)
			continue
		}
		// Interface parameters (e.g. Logger) match the first implementing resource.
		if argType.Kind() == reflect.Interface {
			var found any
			for _, resource := range app.resources {
				if reflect.TypeOf(resource).Implements(argType) {
					found = resource
					break
				}
			}
			if found != nil {
				args[i] = reflect.ValueOf(found)
				continue
			}
		}

		msg := fmt.Sprintf("Unable to resolve system dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
			runtime.FuncForPC(systemValue.Pointer()).Name(),
			fmt.Sprint(systemType),
			fmt.Sprint(argType),
		)
		panic(msg)
	}
	systemValue.Call(args)
}
