package lightsetups

import (
	"fmt"
	"reflect"
)

// Module is a unit of plugin functionality. A host embeds the plugin by
// installing modules into an App; Install contributes resources and hooks.
type Module interface {
	Install(app *App)
}

// App is the plugin runtime: a registry of installed modules and shared
// resources. The host owns the event loop; the App only holds state that
// the workflow callbacks reach for.
type App struct {
	modules   []Module
	resources map[reflect.Type]any
}

func NewApp() *App {
	return &App{
		resources: make(map[reflect.Type]any),
	}
}

// UseModules installs modules immediately, in order.
func (app *App) UseModules(modules ...Module) *App {
	for _, module := range modules {
		app.modules = append(app.modules, module)
		module.Install(app)
	}
	return app
}

// AddResources registers pointer resources, one per concrete type.
func (app *App) AddResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the registered *T resource, or nil if none was added.
func Resource[T any](app *App) *T {
	if app == nil {
		return nil
	}
	resourceType := reflect.TypeOf((*T)(nil)).Elem()
	if resource, ok := app.resources[resourceType]; ok {
		return resource.(*T)
	}
	return nil
}
