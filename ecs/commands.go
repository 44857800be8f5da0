package ecs

import "reflect"

// Commands buffers structural changes requested by systems so storage layout
// does not change while queries are being iterated. The buffer is flushed by
// the Scheduler at the end of every Once.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues fn to run after all structural changes have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Delete queues an entity deletion.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{entity: entity, component: component})
}

// RemoveComponent queues a component removal.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{entity: entity, compType: compType})
}

// Flush applies every queued command to storage in the order deletes, removes,
// adds, spawns, defers, then resets the buffer. Commands refer to entities by
// the IDs seen during the frame; an entity touched by several removes or adds
// is followed across the archetype moves those commands cause.
func (c *Commands) Flush(storage *Storage) {
	deleted := make(map[EntityId]bool)
	location := make(map[EntityId]EntityId)

	resolve := func(id EntityId) EntityId {
		if current, ok := location[id]; ok {
			return current
		}
		return id
	}

	for _, id := range c.deletes {
		storage.Delete(id)
		deleted[id] = true
	}

	for _, cmd := range c.removes {
		if deleted[cmd.entity] {
			continue
		}
		location[cmd.entity] = storage.RemoveComponent(resolve(cmd.entity), cmd.compType)
	}

	for _, cmd := range c.adds {
		if deleted[cmd.entity] {
			continue
		}
		current := resolve(cmd.entity)
		if current == 0 {
			continue
		}
		location[cmd.entity] = storage.AddComponent(current, cmd.component)
	}

	for _, cmd := range c.spawns {
		storage.Spawn(cmd.components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
