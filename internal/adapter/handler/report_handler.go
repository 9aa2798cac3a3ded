package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/services"
)

type ReportHandler struct {
	visitors  *services.VisitorLedger
	zones     *services.ZoneRegistry
	parties   *services.PartyLedger
	incidents *services.IncidentLog
}

func NewReportHandler(visitors *services.VisitorLedger, zones *services.ZoneRegistry, parties *services.PartyLedger, incidents *services.IncidentLog) *ReportHandler {
	return &ReportHandler{
		visitors:  visitors,
		zones:     zones,
		parties:   parties,
		incidents: incidents,
	}
}

func (h *ReportHandler) snapshot() services.Snapshot {
	return services.Snapshot{
		Visitors:  h.visitors.List(),
		Zones:     h.zones.List(),
		Parties:   h.parties.List(),
		Incidents: h.incidents.List(),
	}
}

// dateRange reads ?start and ?end, defaulting to the last 30 days the way
// the reports screen does.
func dateRange(r *http.Request) (time.Time, time.Time, error) {
	q := r.URL.Query()
	now := time.Now()

	start := now.AddDate(0, 0, -30)
	end := now

	if s := q.Get("start"); s != "" {
		parsed, err := parseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}

	if e := q.Get("end"); e != "" {
		parsed, err := parseDate(e)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date before start date", domain.ErrValidation)
	}

	return start, end, nil
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, services.BuildReport(h.snapshot(), start, end))
}

// Export serves the full report document as a JSON download.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	start, end, err := dateRange(r)
	if err != nil {
		writeError(w, err)
		return
	}

	export := services.BuildExport(h.snapshot(), start, end, userFrom(r).Name)

	filename := fmt.Sprintf("playground-report-%s-to-%s.json", export.DateRange.Start, export.DateRange.End)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {

	}
}
