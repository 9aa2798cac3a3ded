package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/ports"
)

// VisitorLedger owns visitor check-in/out records. Every zone-affecting
// command here drives the zone registry's counter so the derived occupancy
// stays consistent with the set of active visitors.
type VisitorLedger struct {
	mu       sync.Mutex
	store    ports.CollectionStore
	zones    *ZoneRegistry
	visitors []*domain.Visitor
	now      func() time.Time
}

func NewVisitorLedger(store ports.CollectionStore, zones *ZoneRegistry) *VisitorLedger {
	return &VisitorLedger{
		store: store,
		zones: zones,
		now:   time.Now,
	}
}

func (l *VisitorLedger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := loadCollection(ctx, l.store, ports.KeyVisitors, &l.visitors)
	return err
}

type CheckInRequest struct {
	Name          string
	Age           int
	GuardianPhone string
	WristbandID   string
	ZoneID        *uuid.UUID
}

// CheckIn admits a child. The wristband must not be held by another active
// visitor; exited visitors may have theirs reused. When a zone is requested
// the slot is acquired first, so a full zone fails the whole check-in and no
// record is created.
func (l *VisitorLedger) CheckIn(ctx context.Context, req CheckInRequest) (domain.Visitor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.WristbandID) == "" {
		return domain.Visitor{}, fmt.Errorf("%w: name and wristband are required", domain.ErrValidation)
	}

	for _, v := range l.visitors {
		if v.IsActive() && v.WristbandID == req.WristbandID {
			return domain.Visitor{}, fmt.Errorf("%w: %s", domain.ErrDuplicateWristband, req.WristbandID)
		}
	}

	if req.ZoneID != nil {
		if _, err := l.zones.AdjustOccupancy(*req.ZoneID, +1); err != nil {
			return domain.Visitor{}, err
		}
	}

	visitor := &domain.Visitor{
		ID:            uuid.New(),
		Name:          req.Name,
		Age:           req.Age,
		GuardianPhone: req.GuardianPhone,
		WristbandID:   req.WristbandID,
		CurrentZone:   req.ZoneID,
		EntryTime:     l.now(),
	}
	l.visitors = append(l.visitors, visitor)

	return *visitor, l.persist(ctx, req.ZoneID != nil)
}

// TransferZone moves an active visitor to another zone, or out of all zones
// when zoneID is nil. The old slot is released before the new one is
// acquired; a failed acquire rolls the release back, so either both counters
// and the visitor change or nothing does.
func (l *VisitorLedger) TransferZone(ctx context.Context, visitorID uuid.UUID, zoneID *uuid.UUID) (domain.Visitor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, err := l.findActive(visitorID)
	if err != nil {
		return domain.Visitor{}, err
	}

	if sameZone(v.CurrentZone, zoneID) {
		return *v, nil
	}

	oldZone := v.CurrentZone
	if oldZone != nil {
		if _, err := l.zones.AdjustOccupancy(*oldZone, -1); err != nil {
			return domain.Visitor{}, err
		}
	}

	if zoneID != nil {
		if _, err := l.zones.AdjustOccupancy(*zoneID, +1); err != nil {
			if oldZone != nil {
				// reacquire the released slot; it cannot fail, the slot
				// was ours a moment ago
				l.zones.AdjustOccupancy(*oldZone, +1)
			}
			return domain.Visitor{}, err
		}
	}

	v.CurrentZone = zoneID

	return *v, l.persist(ctx, true)
}

// CheckOut ends a visit: sets the exit timestamp, releases any held zone
// slot, and returns the visit duration for display.
func (l *VisitorLedger) CheckOut(ctx context.Context, visitorID uuid.UUID) (domain.Visitor, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, err := l.findActive(visitorID)
	if err != nil {
		return domain.Visitor{}, 0, err
	}

	releasedZone := false
	if v.CurrentZone != nil {
		if _, err := l.zones.AdjustOccupancy(*v.CurrentZone, -1); err != nil {
			return domain.Visitor{}, 0, err
		}
		v.CurrentZone = nil
		releasedZone = true
	}

	exit := l.now()
	v.ExitTime = &exit
	duration := exit.Sub(v.EntryTime)

	return *v, duration, l.persist(ctx, releasedZone)
}

// Remove hard-deletes a visitor record. Used for corrections, not normal
// checkout; an active visitor's zone slot is released first.
func (l *VisitorLedger) Remove(ctx context.Context, visitorID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, v := range l.visitors {
		if v.ID == visitorID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: visitor %s", domain.ErrNotFound, visitorID)
	}

	v := l.visitors[idx]
	releasedZone := false
	if v.IsActive() && v.CurrentZone != nil {
		if _, err := l.zones.AdjustOccupancy(*v.CurrentZone, -1); err != nil {
			return err
		}
		releasedZone = true
	}

	l.visitors = append(l.visitors[:idx], l.visitors[idx+1:]...)

	return l.persist(ctx, releasedZone)
}

// List returns a copy of every visitor record, exited ones included.
func (l *VisitorLedger) List() []domain.Visitor {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Visitor, 0, len(l.visitors))
	for _, v := range l.visitors {
		out = append(out, *v)
	}

	return out
}

// Active returns visitors currently in the building, optionally narrowed by
// a case-insensitive name or wristband substring.
func (l *VisitorLedger) Active(search string) []domain.Visitor {
	l.mu.Lock()
	defer l.mu.Unlock()

	search = strings.ToLower(strings.TrimSpace(search))

	var out []domain.Visitor
	for _, v := range l.visitors {
		if !v.IsActive() {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Name), search) &&
			!strings.Contains(strings.ToLower(v.WristbandID), search) {
			continue
		}
		out = append(out, *v)
	}

	return out
}

func (l *VisitorLedger) Get(visitorID uuid.UUID) (domain.Visitor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, v := range l.visitors {
		if v.ID == visitorID {
			return *v, nil
		}
	}

	return domain.Visitor{}, fmt.Errorf("%w: visitor %s", domain.ErrNotFound, visitorID)
}

// persist saves visitors and, when a command moved occupancy, the zone
// collection too. Both failures surface as ErrPersistence.
func (l *VisitorLedger) persist(ctx context.Context, zonesTouched bool) error {
	err := saveCollection(ctx, l.store, ports.KeyVisitors, l.visitors)
	if zonesTouched {
		if zerr := l.zones.Persist(ctx); zerr != nil && err == nil {
			err = zerr
		}
	}

	return err
}

func (l *VisitorLedger) findActive(visitorID uuid.UUID) (*domain.Visitor, error) {
	for _, v := range l.visitors {
		if v.ID == visitorID {
			if !v.IsActive() {
				return nil, fmt.Errorf("%w: visitor %s already checked out", domain.ErrNotFound, visitorID)
			}
			return v, nil
		}
	}

	return nil, fmt.Errorf("%w: visitor %s", domain.ErrNotFound, visitorID)
}

func sameZone(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
