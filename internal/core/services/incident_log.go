package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/ports"
)

// IncidentLog owns safety incident reports. It has no mutation coupling to
// the other ledgers; the visitor picker in the UI is the only reader of
// visitor data around it.
type IncidentLog struct {
	mu        sync.Mutex
	store     ports.CollectionStore
	incidents []*domain.Incident
	now       func() time.Time
}

func NewIncidentLog(store ports.CollectionStore) *IncidentLog {
	return &IncidentLog{store: store, now: time.Now}
}

func (l *IncidentLog) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := loadCollection(ctx, l.store, ports.KeyIncidents, &l.incidents)
	return err
}

type IncidentReport struct {
	VisitorID   *uuid.UUID
	VisitorName string
	Type        domain.IncidentType
	Description string
	Severity    domain.Severity
	ReportedBy  string
	Actions     []string
}

// Report files a new incident. Reports start unresolved; blank action
// entries are dropped.
func (l *IncidentLog) Report(ctx context.Context, rep IncidentReport) (domain.Incident, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if strings.TrimSpace(rep.Description) == "" {
		return domain.Incident{}, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if !rep.Type.Valid() {
		return domain.Incident{}, fmt.Errorf("%w: unknown incident type %q", domain.ErrValidation, rep.Type)
	}
	if !rep.Severity.Valid() {
		return domain.Incident{}, fmt.Errorf("%w: unknown severity %q", domain.ErrValidation, rep.Severity)
	}

	actions := make([]string, 0, len(rep.Actions))
	for _, a := range rep.Actions {
		if strings.TrimSpace(a) != "" {
			actions = append(actions, a)
		}
	}

	incident := &domain.Incident{
		ID:          uuid.New(),
		VisitorID:   rep.VisitorID,
		VisitorName: rep.VisitorName,
		Type:        rep.Type,
		Description: rep.Description,
		Severity:    rep.Severity,
		ReportedBy:  rep.ReportedBy,
		Timestamp:   l.now(),
		Resolved:    false,
		Actions:     actions,
	}
	l.incidents = append(l.incidents, incident)

	return *incident, saveCollection(ctx, l.store, ports.KeyIncidents, l.incidents)
}

// ToggleResolved flips an incident's resolved flag.
func (l *IncidentLog) ToggleResolved(ctx context.Context, incidentID uuid.UUID) (domain.Incident, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, in := range l.incidents {
		if in.ID == incidentID {
			in.Resolved = !in.Resolved
			return *in, saveCollection(ctx, l.store, ports.KeyIncidents, l.incidents)
		}
	}

	return domain.Incident{}, fmt.Errorf("%w: incident %s", domain.ErrNotFound, incidentID)
}

type IncidentFilter struct {
	Search   string
	Resolved *bool
	Severity domain.Severity
}

// Query returns incidents matching the filter, newest first. Operators scan
// the log chronologically, so the ordering is part of the contract.
func (l *IncidentLog) Query(filter IncidentFilter) []domain.Incident {
	l.mu.Lock()
	defer l.mu.Unlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var out []domain.Incident
	for _, in := range l.incidents {
		if search != "" &&
			!strings.Contains(strings.ToLower(in.VisitorName), search) &&
			!strings.Contains(strings.ToLower(in.Description), search) {
			continue
		}
		if filter.Resolved != nil && in.Resolved != *filter.Resolved {
			continue
		}
		if filter.Severity != "" && in.Severity != filter.Severity {
			continue
		}
		out = append(out, *in)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out
}

func (l *IncidentLog) List() []domain.Incident {
	return l.Query(IncidentFilter{})
}
