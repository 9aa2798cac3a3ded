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

// PartyLedger owns party bookings. It is independent of the other ledgers
// apart from reading package price defaults.
type PartyLedger struct {
	mu      sync.Mutex
	store   ports.CollectionStore
	parties []*domain.PartyBooking
}

func NewPartyLedger(store ports.CollectionStore) *PartyLedger {
	return &PartyLedger{store: store}
}

func (l *PartyLedger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := loadCollection(ctx, l.store, ports.KeyParties, &l.parties)
	return err
}

type PartyRequest struct {
	Date          time.Time
	ChildName     string
	GuestCount    int
	Package       domain.PackageTier
	CostOverride  float64
	GuardianName  string
	GuardianPhone string
}

func (req PartyRequest) validate() error {
	if strings.TrimSpace(req.ChildName) == "" {
		return fmt.Errorf("%w: child name is required", domain.ErrValidation)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: party date is required", domain.ErrValidation)
	}
	if !req.Package.Valid() {
		return fmt.Errorf("%w: unknown package %q", domain.ErrValidation, req.Package)
	}

	return nil
}

// Create books a party. Cost is the positive override when given, otherwise
// the package default. New bookings always start pending.
func (l *PartyLedger) Create(ctx context.Context, req PartyRequest) (domain.PartyBooking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := req.validate(); err != nil {
		return domain.PartyBooking{}, err
	}

	cost := req.CostOverride
	if cost <= 0 {
		cost = req.Package.DefaultPrice()
	}

	party := &domain.PartyBooking{
		ID:            uuid.New(),
		Date:          req.Date,
		ChildName:     req.ChildName,
		GuestCount:    req.GuestCount,
		Package:       req.Package,
		Cost:          cost,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		Status:        domain.PartyPending,
	}
	l.parties = append(l.parties, party)

	return *party, saveCollection(ctx, l.store, ports.KeyParties, l.parties)
}

// ChangeStatus moves a booking along pending→confirmed→completed, with
// cancellation allowed out of pending or confirmed. Everything else is
// rejected even though the UI only offers legal buttons.
func (l *PartyLedger) ChangeStatus(ctx context.Context, partyID uuid.UUID, status domain.PartyStatus) (domain.PartyBooking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, err := l.find(partyID)
	if err != nil {
		return domain.PartyBooking{}, err
	}

	if !p.Status.CanTransition(status) {
		return domain.PartyBooking{}, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, p.Status, status)
	}

	p.Status = status

	return *p, saveCollection(ctx, l.store, ports.KeyParties, l.parties)
}

// Update corrects booking details in full. Status is never changed here;
// that path is ChangeStatus.
func (l *PartyLedger) Update(ctx context.Context, partyID uuid.UUID, req PartyRequest) (domain.PartyBooking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := req.validate(); err != nil {
		return domain.PartyBooking{}, err
	}

	p, err := l.find(partyID)
	if err != nil {
		return domain.PartyBooking{}, err
	}

	cost := req.CostOverride
	if cost <= 0 {
		cost = req.Package.DefaultPrice()
	}

	p.Date = req.Date
	p.ChildName = req.ChildName
	p.GuestCount = req.GuestCount
	p.Package = req.Package
	p.Cost = cost
	p.GuardianName = req.GuardianName
	p.GuardianPhone = req.GuardianPhone

	return *p, saveCollection(ctx, l.store, ports.KeyParties, l.parties)
}

func (l *PartyLedger) List() []domain.PartyBooking {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.PartyBooking, 0, len(l.parties))
	for _, p := range l.parties {
		out = append(out, *p)
	}

	return out
}

// ForDate returns bookings falling on the same calendar day as date.
func (l *PartyLedger) ForDate(date time.Time) []domain.PartyBooking {
	l.mu.Lock()
	defer l.mu.Unlock()

	y, m, d := date.Date()

	var out []domain.PartyBooking
	for _, p := range l.parties {
		py, pm, pd := p.Date.Date()
		if py == y && pm == m && pd == d {
			out = append(out, *p)
		}
	}

	return out
}

func (l *PartyLedger) find(partyID uuid.UUID) (*domain.PartyBooking, error) {
	for _, p := range l.parties {
		if p.ID == partyID {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: party %s", domain.ErrNotFound, partyID)
}
