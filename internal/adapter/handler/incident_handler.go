package handler

import (
	"encoding/json"
	"net/http"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/services"
)

type IncidentHandler struct {
	log *services.IncidentLog
}

func NewIncidentHandler(log *services.IncidentLog) *IncidentHandler {
	return &IncidentHandler{log: log}
}

func (h *IncidentHandler) Report(w http.ResponseWriter, r *http.Request) {
	var body struct {
		VisitorID   *string  `json:"kidId"`
		VisitorName string   `json:"kidName"`
		Type        string   `json:"type"`
		Description string   `json:"description"`
		Severity    string   `json:"severity"`
		Actions     []string `json:"actions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	visitorID, err := parseOptionalID(body.VisitorID)
	if err != nil {
		writeError(w, err)
		return
	}

	incident, err := h.log.Report(r.Context(), services.IncidentReport{
		VisitorID:   visitorID,
		VisitorName: body.VisitorName,
		Type:        domain.IncidentType(body.Type),
		Description: body.Description,
		Severity:    domain.Severity(body.Severity),
		ReportedBy:  userFrom(r).Name,
		Actions:     body.Actions,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, incident)
}

func (h *IncidentHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := services.IncidentFilter{
		Search:   q.Get("search"),
		Severity: domain.Severity(q.Get("severity")),
	}

	switch q.Get("status") {
	case "open":
		open := false
		filter.Resolved = &open
	case "resolved":
		resolved := true
		filter.Resolved = &resolved
	}

	writeJSON(w, http.StatusOK, h.log.Query(filter))
}

func (h *IncidentHandler) ToggleResolved(w http.ResponseWriter, r *http.Request) {
	incidentID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	incident, err := h.log.ToggleResolved(r.Context(), incidentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, incident)
}
