package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/TinoSantoso/Playtopia-pos/internal/adapter/store"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/services"
)

func newTestRegistry(zones ...*domain.Zone) *services.ZoneRegistry {
	registry := services.NewZoneRegistry(store.NewMemory())
	services.SeedZones(registry, zones...)
	return registry
}

func TestAdjustOccupancy_Bounds(t *testing.T) {
	zoneID := uuid.New()
	registry := newTestRegistry(&domain.Zone{ID: zoneID, Name: "Toddler Zone", Capacity: 5, CurrentCount: 3, Active: true})

	zone, err := registry.AdjustOccupancy(zoneID, +2)
	assert.NoError(t, err)
	assert.Equal(t, 5, zone.CurrentCount)

	_, err = registry.AdjustOccupancy(zoneID, +1)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	zone, err = registry.Get(zoneID)
	assert.NoError(t, err)
	assert.Equal(t, 5, zone.CurrentCount, "failed adjust must not change the counter")

	_, err = registry.AdjustOccupancy(zoneID, -6)
	assert.ErrorIs(t, err, domain.ErrBelowZero)

	_, err = registry.AdjustOccupancy(uuid.New(), +1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetCapacity(t *testing.T) {
	ctx := context.Background()
	zoneID := uuid.New()
	registry := newTestRegistry(&domain.Zone{ID: zoneID, Name: "Teen Zone", Capacity: 20, CurrentCount: 12, Active: true})

	_, err := registry.SetCapacity(ctx, zoneID, 11)
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)

	_, err = registry.SetCapacity(ctx, zoneID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidCapacity)

	zone, err := registry.SetCapacity(ctx, zoneID, 12)
	assert.NoError(t, err)
	assert.Equal(t, 12, zone.Capacity)
	assert.Equal(t, 12, zone.CurrentCount)
}

func TestSetActive_IgnoresOccupancy(t *testing.T) {
	ctx := context.Background()
	zoneID := uuid.New()
	registry := newTestRegistry(&domain.Zone{ID: zoneID, Name: "Party Room A", Capacity: 12, CurrentCount: 4, Active: true})

	zone, err := registry.SetActive(ctx, zoneID, false)
	assert.NoError(t, err)
	assert.False(t, zone.Active)
	assert.Equal(t, 4, zone.CurrentCount, "deactivating must not evict anyone")

	// an inactive zone still accepts assignments at this layer
	_, err = registry.AdjustOccupancy(zoneID, +1)
	assert.NoError(t, err)
}

func TestLoad_SeedsDefaultFloorPlan(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	registry := services.NewZoneRegistry(mem)
	assert.NoError(t, registry.Load(ctx))

	zones := registry.List()
	assert.Len(t, zones, 4)
	for _, z := range zones {
		assert.Zero(t, z.CurrentCount, "seeded zones start empty")
	}

	// the seed is persisted, so a second boot sees the same zones
	again := services.NewZoneRegistry(mem)
	assert.NoError(t, again.Load(ctx))
	assert.Equal(t, zones, again.List())
}

func TestSummary(t *testing.T) {
	registry := newTestRegistry(
		&domain.Zone{ID: uuid.New(), Name: "A", Capacity: 10, CurrentCount: 10, Active: true},
		&domain.Zone{ID: uuid.New(), Name: "B", Capacity: 20, CurrentCount: 5, Active: true},
		&domain.Zone{ID: uuid.New(), Name: "C", Capacity: 12, CurrentCount: 0, Active: false},
	)

	summary := registry.Summary()
	assert.Equal(t, 42, summary.TotalCapacity)
	assert.Equal(t, 15, summary.TotalOccupancy)
	assert.Equal(t, 2, summary.ActiveZones)
	assert.Equal(t, 1, summary.FullZones)
}
