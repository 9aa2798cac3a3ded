package handler

import (
	"encoding/json"
	"net/http"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/services"
)

type ZoneHandler struct {
	registry *services.ZoneRegistry
}

func NewZoneHandler(registry *services.ZoneRegistry) *ZoneHandler {
	return &ZoneHandler{registry: registry}
}

func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.List())
}

func (h *ZoneHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.Summary())
}

func (h *ZoneHandler) SetCapacity(w http.ResponseWriter, r *http.Request) {
	zoneID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Capacity int `json:"capacity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	zone, err := h.registry.SetCapacity(r.Context(), zoneID, body.Capacity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, zone)
}

func (h *ZoneHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	zoneID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body struct {
		Active bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	zone, err := h.registry.SetActive(r.Context(), zoneID, body.Active)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, zone)
}
