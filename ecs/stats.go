package ecs

import "sort"

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

// ArchetypeStats describes a single archetype.
type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// CollectStats walks the storage and returns its current statistics.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		ArchetypeCount:     len(s.archetypes),
		SingletonCount:     len(s.singletons),
		ArchetypeBreakdown: make([]ArchetypeStats, 0, len(s.archetypes)),
		SingletonTypes:     make([]string, 0, len(s.singletons)),
	}

	for archetype := range s.Archetypes() {
		names := make([]string, len(archetype.types))
		for i, typ := range archetype.types {
			names[i] = typ.String()
		}

		count := archetype.Len()
		stats.TotalEntityCount += count
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			ID:             archetype.id,
			ComponentTypes: names,
			EntityCount:    count,
		})
	}

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
