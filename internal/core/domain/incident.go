package domain

import (
	"time"

	"github.com/google/uuid"
)

type IncidentType string

const (
	IncidentInjury     IncidentType = "injury"
	IncidentLost       IncidentType = "lost"
	IncidentBehavioral IncidentType = "behavioral"
	IncidentEmergency  IncidentType = "emergency"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (t IncidentType) Valid() bool {
	switch t {
	case IncidentInjury, IncidentLost, IncidentBehavioral, IncidentEmergency:
		return true
	}
	return false
}

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Incident is a safety report. VisitorName is denormalized so a report can
// be filed without picking a registered visitor.
type Incident struct {
	ID          uuid.UUID    `json:"id"`
	VisitorID   *uuid.UUID   `json:"kidId,omitempty"`
	VisitorName string       `json:"kidName"`
	Type        IncidentType `json:"type"`
	Description string       `json:"description"`
	Severity    Severity     `json:"severity"`
	ReportedBy  string       `json:"reportedBy"`
	Timestamp   time.Time    `json:"timestamp"`
	Resolved    bool         `json:"resolved"`
	Actions     []string     `json:"actions"`
}
