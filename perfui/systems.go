package perfui

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/plus3/perfui/diagnostics"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
)

// sourcesSystem refreshes the shared Sources from the host singletons.
type sourcesSystem struct {
	Diagnostics ecs.Singleton[diagnostics.Store]
	Time        ecs.Singleton[host.Time]
	FixedTime   ecs.Singleton[host.FixedTime]
	Window      ecs.Singleton[host.Window]

	sources *Sources
}

func (s *sourcesSystem) Execute(frame *ecs.UpdateFrame) {
	*s.sources = Sources{
		Diagnostics: s.Diagnostics.Get(),
		Time:        s.Time.Get(),
		FixedTime:   s.FixedTime.Get(),
		Window:      s.Window.Get(),
	}
}

// updateSystem updates every entry of type T.
type updateSystem[T any, PT interface {
	*T
	Entry
}] struct {
	Entries ecs.Query[struct{ Entry *T }]

	sources *Sources
}

func (s *updateSystem[T, PT]) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entries.Values() {
		PT(item.Entry).Update(s.sources)
	}
}

var (
	rootType  = reflect.TypeFor[Root]()
	panelType = reflect.TypeFor[Panel]()
)

// rootAttachSystem gives every entity that carries entries a Root and a Panel.
type rootAttachSystem struct {
	plugin *Plugin
}

func (s *rootAttachSystem) Execute(frame *ecs.UpdateFrame) {
	for archetype := range frame.Storage.Archetypes() {
		hasRoot := archetype.HasComponent(rootType)
		hasPanel := archetype.HasComponent(panelType)
		if hasRoot && hasPanel {
			continue
		}
		if len(s.plugin.kindsOf(archetype.ID(), archetype.HasComponent)) == 0 {
			continue
		}

		for id := range archetype.Iter() {
			if !hasRoot {
				frame.Commands.AddComponent(id, s.plugin.Root)
			}
			if !hasPanel {
				frame.Commands.AddComponent(id, Panel{})
			}
		}
	}
}

// collectSystem rebuilds the Panel of every overlay entity.
type collectSystem struct {
	Overlays ecs.Query[struct {
		Root  *Root
		Panel *Panel
	}]

	plugin *Plugin
}

func (s *collectSystem) Execute(frame *ecs.UpdateFrame) {
	storage := frame.Storage
	for id, overlay := range s.Overlays.Iter() {
		has := func(t reflect.Type) bool { return storage.HasComponent(id, t) }
		rows := overlay.Panel.Rows[:0]

		for _, index := range s.plugin.kindsOf(id.ArchetypeId(), has) {
			k := s.plugin.kinds[index]
			entry, ok := storage.GetComponent(id, k.typ).(Entry)
			if !ok {
				continue
			}
			rows = append(rows, buildRow(overlay.Root, k.name, entry))
		}

		slices.SortStableFunc(rows, func(a, b Row) int { return cmp.Compare(a.SortKey, b.SortKey) })
		overlay.Panel.Rows = rows
	}
}

func buildRow(root *Root, name string, entry Entry) Row {
	d := entry.Display()
	row := Row{
		Kind:     name,
		Label:    entry.Label(),
		Value:    d.Text,
		Unit:     d.Unit,
		Severity: d.Severity,
		Missing:  d.Missing,
		SortKey:  entry.SortKey(),
	}
	if row.Missing {
		row.Value = root.placeholder()
		row.Unit = ""
		row.Severity = SeverityNormal
	}
	if !root.DisplayUnits {
		row.Unit = ""
	}
	row.Color = root.ColorFor(row)
	return row
}
