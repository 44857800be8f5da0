package perfui_test

import (
	"fmt"

	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/perfui"
)

func Example() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	scheduler := ecs.NewScheduler(storage)

	perfui.NewPlugin().Build(scheduler)
	id := perfui.Spawn(storage, perfui.NewFramerateEntries(), perfui.NewEntryFrameCount())

	scheduler.Once(1.0 / 60)

	for _, row := range ecs.ReadComponent[perfui.Panel](storage, id).Rows {
		fmt.Printf("%s: %s\n", row.Label, row.Text())
	}
	// Output:
	// FPS: 60
	// FPS (min): 60
	// Frame Time: 16.67 ms
	// Frame Time (max): 16.67 ms
	// Frame Count: 1
}
