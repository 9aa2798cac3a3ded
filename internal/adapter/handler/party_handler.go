package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/services"
)

type PartyHandler struct {
	ledger *services.PartyLedger
}

func NewPartyHandler(ledger *services.PartyLedger) *PartyHandler {
	return &PartyHandler{ledger: ledger}
}

type partyBody struct {
	Date          string  `json:"date"`
	ChildName     string  `json:"kidName"`
	GuestCount    int     `json:"guestCount"`
	Package       string  `json:"package"`
	Cost          float64 `json:"cost"`
	GuardianName  string  `json:"guardianName"`
	GuardianPhone string  `json:"guardianPhone"`
}

func (b partyBody) toRequest() (services.PartyRequest, error) {
	date, err := parseDate(b.Date)
	if err != nil {
		return services.PartyRequest{}, err
	}

	return services.PartyRequest{
		Date:          date,
		ChildName:     b.ChildName,
		GuestCount:    b.GuestCount,
		Package:       domain.PackageTier(b.Package),
		CostOverride:  b.Cost,
		GuardianName:  b.GuardianName,
		GuardianPhone: b.GuardianPhone,
	}, nil
}

func (h *PartyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body partyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	req, err := body.toRequest()
	if err != nil {
		writeError(w, err)
		return
	}

	party, err := h.ledger.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, party)
}

func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	if day := r.URL.Query().Get("date"); day != "" {
		date, err := parseDate(day)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, h.ledger.ForDate(date))
		return
	}

	writeJSON(w, http.StatusOK, h.ledger.List())
}

func (h *PartyHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	partyID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	party, err := h.ledger.ChangeStatus(r.Context(), partyID, domain.PartyStatus(body.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, party)
}

func (h *PartyHandler) Update(w http.ResponseWriter, r *http.Request) {
	partyID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body partyBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	req, err := body.toRequest()
	if err != nil {
		writeError(w, err)
		return
	}

	party, err := h.ledger.Update(r.Context(), partyID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, party)
}

// Packages lists the bookable tiers with their prices and feature lists.
func (h *PartyHandler) Packages(w http.ResponseWriter, r *http.Request) {
	type pkg struct {
		Name     string   `json:"name"`
		Price    float64  `json:"price"`
		Features []string `json:"features"`
	}

	writeJSON(w, http.StatusOK, []pkg{
		{Name: string(domain.PackageBasic), Price: domain.PackageBasic.DefaultPrice(), Features: domain.PackageBasic.Features()},
		{Name: string(domain.PackagePremium), Price: domain.PackagePremium.DefaultPrice(), Features: domain.PackagePremium.Features()},
	})
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: malformed date %q", domain.ErrValidation, s)
}
