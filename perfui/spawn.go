package perfui

import (
	"reflect"

	"github.com/plus3/perfui/ecs"
)

// Spawn creates an overlay entity from entries and bundles. Bundles are
// expanded; when a type appears more than once the last value wins. A
// DefaultRoot and an empty Panel are added unless given. Every entry type must
// already be registered through a built Plugin.
func Spawn(storage *ecs.Storage, parts ...any) ecs.EntityId {
	return storage.Spawn(overlayComponents(parts)...)
}

// SpawnDeferred is Spawn through a command buffer, for use inside systems.
func SpawnDeferred(commands *ecs.Commands, parts ...any) {
	commands.Spawn(overlayComponents(parts)...)
}

func overlayComponents(parts []any) []any {
	var components []any
	index := make(map[reflect.Type]int)

	add := func(component any) {
		t := reflect.TypeOf(component)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if i, ok := index[t]; ok {
			components[i] = component
			return
		}
		index[t] = len(components)
		components = append(components, component)
	}

	for _, part := range parts {
		if bundle, ok := part.(Bundle); ok {
			for _, component := range bundle.Components() {
				add(component)
			}
			continue
		}
		add(part)
	}

	if _, ok := index[rootType]; !ok {
		add(DefaultRoot())
	}
	if _, ok := index[panelType]; !ok {
		add(Panel{})
	}
	return components
}
