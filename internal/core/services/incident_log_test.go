package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/TinoSantoso/Playtopia-pos/internal/adapter/store"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/services"
)

func incidentReport(name string, severity domain.Severity) services.IncidentReport {
	return services.IncidentReport{
		VisitorName: name,
		Type:        domain.IncidentInjury,
		Description: "scraped knee on the slide",
		Severity:    severity,
		ReportedBy:  "Supervisor Brown",
	}
}

func TestReport_Validation(t *testing.T) {
	ctx := context.Background()
	log := services.NewIncidentLog(store.NewMemory())

	rep := incidentReport("Emma Johnson", domain.SeverityLow)
	rep.Description = "   "
	_, err := log.Report(ctx, rep)
	assert.ErrorIs(t, err, domain.ErrValidation)

	rep = incidentReport("Emma Johnson", "fatal")
	_, err = log.Report(ctx, rep)
	assert.ErrorIs(t, err, domain.ErrValidation)

	rep = incidentReport("Emma Johnson", domain.SeverityLow)
	rep.Type = "sunburn"
	_, err = log.Report(ctx, rep)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReport_FiltersBlankActions(t *testing.T) {
	ctx := context.Background()
	log := services.NewIncidentLog(store.NewMemory())

	rep := incidentReport("Emma Johnson", domain.SeverityMedium)
	rep.Actions = []string{"applied bandage", "  ", "", "called guardian"}

	incident, err := log.Report(ctx, rep)
	assert.NoError(t, err)
	assert.Equal(t, []string{"applied bandage", "called guardian"}, incident.Actions)
	assert.False(t, incident.Resolved)
}

func TestToggleResolved(t *testing.T) {
	ctx := context.Background()
	log := services.NewIncidentLog(store.NewMemory())

	incident, err := log.Report(ctx, incidentReport("Emma Johnson", domain.SeverityHigh))
	assert.NoError(t, err)

	toggled, err := log.ToggleResolved(ctx, incident.ID)
	assert.NoError(t, err)
	assert.True(t, toggled.Resolved)

	toggled, err = log.ToggleResolved(ctx, incident.ID)
	assert.NoError(t, err)
	assert.False(t, toggled.Resolved, "the flag flips freely in both directions")

	_, err = log.ToggleResolved(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuery_SeverityNewestFirst(t *testing.T) {
	ctx := context.Background()
	log := services.NewIncidentLog(store.NewMemory())

	clock := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	services.SetIncidentClock(log, func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	})

	first, err := log.Report(ctx, incidentReport("Emma Johnson", domain.SeverityCritical))
	assert.NoError(t, err)
	_, err = log.Report(ctx, incidentReport("Liam Smith", domain.SeverityLow))
	assert.NoError(t, err)
	last, err := log.Report(ctx, incidentReport("Sophie Wilson", domain.SeverityCritical))
	assert.NoError(t, err)

	got := log.Query(services.IncidentFilter{Severity: domain.SeverityCritical})
	assert.Len(t, got, 2)
	assert.Equal(t, last.ID, got[0].ID, "newest first")
	assert.Equal(t, first.ID, got[1].ID)
}

func TestQuery_SearchAndStatus(t *testing.T) {
	ctx := context.Background()
	log := services.NewIncidentLog(store.NewMemory())

	emma, err := log.Report(ctx, incidentReport("Emma Johnson", domain.SeverityLow))
	assert.NoError(t, err)

	lost := incidentReport("Liam Smith", domain.SeverityMedium)
	lost.Type = domain.IncidentLost
	lost.Description = "wandered off near the ball pit"
	_, err = log.Report(ctx, lost)
	assert.NoError(t, err)

	// case-insensitive substring on name and description
	assert.Len(t, log.Query(services.IncidentFilter{Search: "EMMA"}), 1)
	assert.Len(t, log.Query(services.IncidentFilter{Search: "ball pit"}), 1)
	assert.Empty(t, log.Query(services.IncidentFilter{Search: "trampoline"}))

	_, err = log.ToggleResolved(ctx, emma.ID)
	assert.NoError(t, err)

	resolved := true
	open := false
	assert.Len(t, log.Query(services.IncidentFilter{Resolved: &resolved}), 1)
	assert.Len(t, log.Query(services.IncidentFilter{Resolved: &open}), 1)
	assert.Len(t, log.Query(services.IncidentFilter{}), 2)
}
