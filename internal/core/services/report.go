package services

import (
	"time"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
)

// Snapshot is a read-only copy of all four collections handed to the
// analytics functions. Nothing here mutates it.
type Snapshot struct {
	Visitors  []domain.Visitor
	Zones     []domain.Zone
	Parties   []domain.PartyBooking
	Incidents []domain.Incident
}

type ZoneUtilization struct {
	ZoneName    string  `json:"zoneName"`
	Visits      int     `json:"visits"`
	Utilization float64 `json:"utilization"`
}

// Report holds every derived metric for one date range.
type Report struct {
	TotalRevenue         float64           `json:"totalRevenue"`
	AveragePartyValue    float64           `json:"averagePartyValue"`
	CompletedParties     int               `json:"completedParties"`
	PendingParties       int               `json:"pendingParties"`
	TotalVisitors        int               `json:"totalVisitors"`
	AverageAge           float64           `json:"averageAge"`
	AverageVisitDuration float64           `json:"averageVisitDuration"` // minutes
	PeakHour             int               `json:"peakHour"`
	PeakHourEntries      int               `json:"peakHourEntries"`
	ZoneUtilization      []ZoneUtilization `json:"zoneUtilization"`
	TotalIncidents       int               `json:"totalIncidents"`
	CriticalIncidents    int               `json:"criticalIncidents"`
	ResolvedIncidents    int               `json:"resolvedIncidents"`
	IncidentRate         float64           `json:"incidentRate"`
}

// ReportExport is the downloadable document: the date range, every metric,
// and who generated it when.
type ReportExport struct {
	DateRange struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"dateRange"`
	Analytics   Report    `json:"analytics"`
	GeneratedAt time.Time `json:"generatedAt"`
	GeneratedBy string    `json:"generatedBy"`
}

// BuildReport computes every metric over records whose relevant timestamp
// falls within [start, end], inclusive with an end-of-day boundary on end.
// Pure: it only reads the snapshot and is safe to call concurrently.
func BuildReport(snap Snapshot, start, end time.Time) Report {
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())
	inRange := func(t time.Time) bool {
		return !t.Before(start) && !t.After(endOfDay)
	}

	var visitors []domain.Visitor
	for _, v := range snap.Visitors {
		if inRange(v.EntryTime) {
			visitors = append(visitors, v)
		}
	}

	var parties []domain.PartyBooking
	for _, p := range snap.Parties {
		if inRange(p.Date) {
			parties = append(parties, p)
		}
	}

	var incidents []domain.Incident
	for _, in := range snap.Incidents {
		if inRange(in.Timestamp) {
			incidents = append(incidents, in)
		}
	}

	var r Report
	r.TotalVisitors = len(visitors)

	for _, p := range parties {
		switch p.Status {
		case domain.PartyCompleted:
			r.CompletedParties++
			r.TotalRevenue += p.Cost
		case domain.PartyPending:
			r.PendingParties++
		}
	}
	if r.CompletedParties > 0 {
		r.AveragePartyValue = r.TotalRevenue / float64(r.CompletedParties)
	}

	if len(visitors) > 0 {
		ageSum := 0
		for _, v := range visitors {
			ageSum += v.Age
		}
		r.AverageAge = float64(ageSum) / float64(len(visitors))
	}

	var durationSum time.Duration
	completedVisits := 0
	for _, v := range visitors {
		if v.ExitTime != nil && inRange(*v.ExitTime) {
			durationSum += v.ExitTime.Sub(v.EntryTime)
			completedVisits++
		}
	}
	if completedVisits > 0 {
		r.AverageVisitDuration = durationSum.Minutes() / float64(completedVisits)
	}

	// mode of entry hour; ties go to the earliest hour
	var hourly [24]int
	for _, v := range visitors {
		hourly[v.EntryTime.Hour()]++
	}
	for hour, count := range hourly {
		if count > r.PeakHourEntries {
			r.PeakHour = hour
			r.PeakHourEntries = count
		}
	}

	r.ZoneUtilization = make([]ZoneUtilization, 0, len(snap.Zones))
	for _, z := range snap.Zones {
		visits := 0
		for _, v := range visitors {
			if v.CurrentZone != nil && *v.CurrentZone == z.ID {
				visits++
			}
		}
		u := ZoneUtilization{ZoneName: z.Name, Visits: visits}
		if z.Capacity > 0 {
			u.Utilization = float64(visits) / float64(z.Capacity) * 100
		}
		r.ZoneUtilization = append(r.ZoneUtilization, u)
	}

	r.TotalIncidents = len(incidents)
	for _, in := range incidents {
		if in.Severity == domain.SeverityCritical {
			r.CriticalIncidents++
		}
		if in.Resolved {
			r.ResolvedIncidents++
		}
	}
	if r.TotalVisitors > 0 {
		r.IncidentRate = float64(r.TotalIncidents) / float64(r.TotalVisitors) * 100
	}

	return r
}

// BuildExport wraps a report in the downloadable document format.
func BuildExport(snap Snapshot, start, end time.Time, generatedBy string) ReportExport {
	var ex ReportExport
	ex.DateRange.Start = start.Format("2006-01-02")
	ex.DateRange.End = end.Format("2006-01-02")
	ex.Analytics = BuildReport(snap, start, end)
	ex.GeneratedAt = time.Now()
	ex.GeneratedBy = generatedBy

	return ex
}
