package handler

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/google/uuid"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/services"
)

type VisitorHandler struct {
	ledger *services.VisitorLedger
}

func NewVisitorHandler(ledger *services.VisitorLedger) *VisitorHandler {
	return &VisitorHandler{ledger: ledger}
}

type checkInBody struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	GuardianPhone string  `json:"guardianPhone"`
	WristbandID   string  `json:"wristbandId"`
	ZoneID        *string `json:"zoneId,omitempty"`
}

func (h *VisitorHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var body checkInBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	zoneID, err := parseOptionalID(body.ZoneID)
	if err != nil {
		writeError(w, err)
		return
	}

	visitor, err := h.ledger.CheckIn(r.Context(), services.CheckInRequest{
		Name:          body.Name,
		Age:           body.Age,
		GuardianPhone: body.GuardianPhone,
		WristbandID:   body.WristbandID,
		ZoneID:        zoneID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, visitor)
}

func (h *VisitorHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var visitors []domain.Visitor
	if q.Get("active") == "true" {
		visitors = h.ledger.Active(q.Get("search"))
	} else {
		visitors = h.ledger.List()
	}

	writeJSON(w, http.StatusOK, visitors)
}

func (h *VisitorHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	visitorID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		ZoneID *string `json:"zoneId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	zoneID, err := parseOptionalID(body.ZoneID)
	if err != nil {
		writeError(w, err)
		return
	}

	visitor, err := h.ledger.TransferZone(r.Context(), visitorID, zoneID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, visitor)
}

func (h *VisitorHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	visitorID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	visitor, duration, err := h.ledger.CheckOut(r.Context(), visitorID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"visitor":         visitor,
		"durationMinutes": int(math.Round(duration.Minutes())),
	})
}

func (h *VisitorHandler) Remove(w http.ResponseWriter, r *http.Request) {
	visitorID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.ledger.Remove(r.Context(), visitorID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed id %q", domain.ErrValidation, r.PathValue("id"))
	}

	return id, nil
}

func parseOptionalID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed id %q", domain.ErrValidation, *s)
	}

	return &id, nil
}
