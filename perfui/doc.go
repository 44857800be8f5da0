// Package perfui is a performance overlay for the ecs package.
//
// An overlay is an ordinary entity carrying entry components such as
// EntryFPS or EntryWindowResolution. Each entry type is registered with a
// Plugin, which installs one update system per type and a collect system that
// turns every overlay entity into a Panel of rows. Renderers in the imguiui,
// ebitenui and termui packages draw panels without knowing the concrete entry
// types.
//
// Basic usage:
//
//	plugin := perfui.NewPlugin()
//	plugin.Build(scheduler)
//	perfui.Spawn(storage, perfui.NewDefaultEntries())
//
// Custom entries implement Entry on their pointer type and are registered with
// AddEntry.
package perfui
