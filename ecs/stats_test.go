package ecs_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/plus3/perfui/ecs"
)

func archetypeCounts(stats *ecs.StorageStats) map[string]int {
	counts := make(map[string]int, len(stats.ArchetypeBreakdown))
	for _, arch := range stats.ArchetypeBreakdown {
		key := ""
		for i, name := range arch.ComponentTypes {
			if i > 0 {
				key += "+"
			}
			key += name
		}
		counts[key] = arch.EntityCount
	}
	return counts
}

func TestCollectStatsFollowsEntityMoves(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	mover := storage.Spawn(Position{}, Velocity{DX: 1})
	storage.Spawn(Position{}, Velocity{DY: 1})
	storage.Spawn(Health{Current: 10, Max: 10})

	counts := archetypeCounts(storage.CollectStats())
	if counts["ecs_test.Position+ecs_test.Velocity"] != 2 {
		t.Errorf("expected 2 movers, got %v", counts)
	}
	if counts["ecs_test.Health"] != 1 {
		t.Errorf("expected 1 health entity, got %v", counts)
	}

	moved := storage.AddComponent(mover, Health{Current: 5, Max: 10})

	stats := storage.CollectStats()
	counts = archetypeCounts(stats)
	if counts["ecs_test.Position+ecs_test.Velocity"] != 1 {
		t.Errorf("expected mover to leave its archetype, got %v", counts)
	}
	if counts["ecs_test.Health+ecs_test.Position+ecs_test.Velocity"] != 1 {
		t.Errorf("expected mover in the health archetype, got %v", counts)
	}
	if stats.ArchetypeCount != 3 || stats.TotalEntityCount != 3 {
		t.Errorf("expected 3 archetypes and 3 entities, got %d and %d", stats.ArchetypeCount, stats.TotalEntityCount)
	}

	storage.Delete(moved)

	stats = storage.CollectStats()
	if stats.TotalEntityCount != 2 {
		t.Errorf("expected 2 entities after delete, got %d", stats.TotalEntityCount)
	}
	if stats.ArchetypeCount != 3 {
		t.Errorf("expected emptied archetype to be kept, got %d archetypes", stats.ArchetypeCount)
	}

	ids := make([]uint32, len(stats.ArchetypeBreakdown))
	for i, arch := range stats.ArchetypeBreakdown {
		ids[i] = arch.ID
	}
	if !slices.IsSorted(ids) {
		t.Errorf("expected archetypes in ID order, got %v", ids)
	}
}

func TestCollectStatsSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.AddSingleton(Temperature(21.5))
	storage.AddSingleton(Score(0))
	storage.AddSingleton(Name{Value: "overlay"})

	stats := storage.CollectStats()
	want := []string{"ecs_test.Name", "ecs_test.Score", "ecs_test.Temperature"}
	if stats.SingletonCount != 3 || !slices.Equal(stats.SingletonTypes, want) {
		t.Errorf("expected %v, got %d %v", want, stats.SingletonCount, stats.SingletonTypes)
	}
	if stats.TotalEntityCount != 0 {
		t.Errorf("singletons should not count as entities, got %d", stats.TotalEntityCount)
	}

	storage.RemoveSingleton(reflect.TypeOf(Score(0)))

	stats = storage.CollectStats()
	want = []string{"ecs_test.Name", "ecs_test.Temperature"}
	if !slices.Equal(stats.SingletonTypes, want) {
		t.Errorf("expected %v after removal, got %v", want, stats.SingletonTypes)
	}
}

func TestSchedulerStatsPerSystem(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{}, Velocity{DX: 1})
	storage.Spawn(Health{Current: 3, Max: 3})

	scheduler := ecs.NewScheduler(storage)
	movement := &MovementSystem{}
	health := &HealthSystem{}
	scheduler.Register(movement)
	scheduler.Register(health)

	stats := scheduler.GetStats()
	for _, sys := range stats.Systems {
		if sys.ExecutionCount != 0 || sys.MinDuration != 0 || sys.MaxDuration != 0 {
			t.Errorf("%s: expected zeroed stats before the first frame, got %+v", sys.Name, sys)
		}
	}

	const frames = 4
	for range frames {
		scheduler.Once(1.0 / 60)
	}

	stats = scheduler.GetStats()
	if stats.SystemCount != 2 || stats.TotalExecutions != 2*frames {
		t.Errorf("expected 2 systems and %d executions, got %d and %d", 2*frames, stats.SystemCount, stats.TotalExecutions)
	}

	names := []string{stats.Systems[0].Name, stats.Systems[1].Name}
	if !slices.Equal(names, []string{"MovementSystem", "HealthSystem"}) {
		t.Errorf("expected registration order, got %v", names)
	}

	for _, sys := range stats.Systems {
		if sys.ExecutionCount != frames {
			t.Errorf("%s: expected %d executions, got %d", sys.Name, frames, sys.ExecutionCount)
		}
		if sys.MinDuration > sys.AvgDuration || sys.AvgDuration > sys.MaxDuration {
			t.Errorf("%s: expected min <= avg <= max, got %v %v %v", sys.Name, sys.MinDuration, sys.AvgDuration, sys.MaxDuration)
		}
		if sys.TotalDuration < sys.MaxDuration {
			t.Errorf("%s: total %v below max %v", sys.Name, sys.TotalDuration, sys.MaxDuration)
		}
	}

	if movement.ExecuteCount != frames || health.ExecuteCount != frames {
		t.Errorf("expected %d executions each, got %d and %d", frames, movement.ExecuteCount, health.ExecuteCount)
	}
}
