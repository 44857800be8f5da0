package ecs_test

import (
	"fmt"

	"github.com/plus3/perfui/ecs"
)

type FrameBudget struct {
	TargetFPS int
	Mode      string
}

type FrameCounter struct {
	Frames int
}

// ExampleNewSingleton shows creating and sharing a singleton component.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	budget := ecs.NewSingleton[FrameBudget](storage, FrameBudget{
		TargetFPS: 60,
		Mode:      "vsync",
	})
	fmt.Printf("Budget: %d fps, %s\n", budget.Get().TargetFPS, budget.Get().Mode)

	budget.Get().Mode = "immediate"

	// The initializer is ignored once the singleton exists.
	same := ecs.NewSingleton[FrameBudget](storage, FrameBudget{TargetFPS: 30})
	fmt.Printf("Same budget: %d fps, %s\n", same.Get().TargetFPS, same.Get().Mode)

	// Output:
	// Budget: 60 fps, vsync
	// Same budget: 60 fps, immediate
}

// ExampleStorage_ReadSingleton reads singletons outside of a system.
func ExampleStorage_ReadSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	storage.AddSingleton(FrameCounter{Frames: 12})

	var counter *FrameCounter
	if storage.ReadSingleton(&counter) {
		fmt.Printf("Frames: %d\n", counter.Frames)
	}

	var budget *FrameBudget
	if !storage.ReadSingleton(&budget) {
		fmt.Println("Budget not found")
	}

	// Re-adding overwrites in place.
	storage.AddSingleton(&FrameCounter{Frames: 13})
	fmt.Printf("Frames after overwrite: %d\n", counter.Frames)

	// Output:
	// Frames: 12
	// Budget not found
	// Frames after overwrite: 13
}
