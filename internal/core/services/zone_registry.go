package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/ports"
)

// ZoneRegistry owns the zone collection and is the single writer of every
// zone's CurrentCount. Occupancy changes flow through AdjustOccupancy only;
// the visitor ledger decides who occupies a zone, the registry enforces the
// counter bounds.
type ZoneRegistry struct {
	mu    sync.Mutex
	store ports.CollectionStore
	zones []*domain.Zone
}

func NewZoneRegistry(store ports.CollectionStore) *ZoneRegistry {
	return &ZoneRegistry{store: store}
}

// Load restores zones from the store, seeding the default floor plan on
// first boot. Seeded occupancy starts at zero so the derived counter matches
// the (empty) visitor collection.
func (r *ZoneRegistry) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found, err := loadCollection(ctx, r.store, ports.KeyZones, &r.zones)
	if err != nil {
		return err
	}

	if !found {
		r.zones = defaultZones()
		return saveCollection(ctx, r.store, ports.KeyZones, r.zones)
	}

	return nil
}

func defaultZones() []*domain.Zone {
	return []*domain.Zone{
		{ID: uuid.New(), Name: "Toddler Zone", Capacity: 15, AgeMin: 1, AgeMax: 3, Active: true},
		{ID: uuid.New(), Name: "Adventure Playground", Capacity: 25, AgeMin: 4, AgeMax: 8, Active: true},
		{ID: uuid.New(), Name: "Teen Zone", Capacity: 20, AgeMin: 9, AgeMax: 15, Active: true},
		{ID: uuid.New(), Name: "Party Room A", Capacity: 12, AgeMin: 1, AgeMax: 15, Active: false},
	}
}

// List returns a copy of every zone.
func (r *ZoneRegistry) List() []domain.Zone {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Zone, 0, len(r.zones))
	for _, z := range r.zones {
		out = append(out, *z)
	}

	return out
}

func (r *ZoneRegistry) Get(zoneID uuid.UUID) (domain.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	z, err := r.find(zoneID)
	if err != nil {
		return domain.Zone{}, err
	}

	return *z, nil
}

// AdjustOccupancy applies delta to a zone's occupancy counter, rejecting any
// result outside [0, capacity]. It mutates in memory only: the calling
// command persists both collections once its whole mutation has committed,
// so a failed later step can roll this back without a stale save.
func (r *ZoneRegistry) AdjustOccupancy(zoneID uuid.UUID, delta int) (domain.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	z, err := r.find(zoneID)
	if err != nil {
		return domain.Zone{}, err
	}

	next := z.CurrentCount + delta
	if next > z.Capacity {
		return domain.Zone{}, fmt.Errorf("%w: zone %s is at %d/%d", domain.ErrCapacityExceeded, z.Name, z.CurrentCount, z.Capacity)
	}
	if next < 0 {
		return domain.Zone{}, fmt.Errorf("%w: zone %s count %d with delta %d", domain.ErrBelowZero, z.Name, z.CurrentCount, delta)
	}

	z.CurrentCount = next
	return *z, nil
}

// SetCapacity changes a zone's capacity. Shrinking below the current
// occupancy is rejected.
func (r *ZoneRegistry) SetCapacity(ctx context.Context, zoneID uuid.UUID, capacity int) (domain.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	z, err := r.find(zoneID)
	if err != nil {
		return domain.Zone{}, err
	}

	if capacity < 1 || capacity < z.CurrentCount {
		return domain.Zone{}, fmt.Errorf("%w: capacity %d with %d children present", domain.ErrInvalidCapacity, capacity, z.CurrentCount)
	}

	z.Capacity = capacity

	return *z, saveCollection(ctx, r.store, ports.KeyZones, r.zones)
}

// SetActive toggles a zone's active flag. The flag is an operational hint
// ("closing soon"): it never touches occupancy and does not block admission
// at this layer.
func (r *ZoneRegistry) SetActive(ctx context.Context, zoneID uuid.UUID, active bool) (domain.Zone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	z, err := r.find(zoneID)
	if err != nil {
		return domain.Zone{}, err
	}

	z.Active = active

	return *z, saveCollection(ctx, r.store, ports.KeyZones, r.zones)
}

// Persist saves the zone collection. Called by the visitor ledger after
// commands that moved occupancy through AdjustOccupancy.
func (r *ZoneRegistry) Persist(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return saveCollection(ctx, r.store, ports.KeyZones, r.zones)
}

// ZoneSummary aggregates the floor at a glance.
type ZoneSummary struct {
	TotalCapacity  int `json:"totalCapacity"`
	TotalOccupancy int `json:"totalOccupancy"`
	ActiveZones    int `json:"activeZones"`
	FullZones      int `json:"fullZones"`
}

func (r *ZoneRegistry) Summary() ZoneSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	var s ZoneSummary
	for _, z := range r.zones {
		s.TotalCapacity += z.Capacity
		s.TotalOccupancy += z.CurrentCount
		if z.Active {
			s.ActiveZones++
		}
		if z.IsFull() {
			s.FullZones++
		}
	}

	return s
}

func (r *ZoneRegistry) find(zoneID uuid.UUID) (*domain.Zone, error) {
	for _, z := range r.zones {
		if z.ID == zoneID {
			return z, nil
		}
	}

	return nil, fmt.Errorf("%w: zone %s", domain.ErrNotFound, zoneID)
}
