package services

import (
	"time"

	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
)

// white-box hooks for the services_test package

func SeedZones(r *ZoneRegistry, zones ...*domain.Zone) {
	r.zones = zones
}

func SetVisitorClock(l *VisitorLedger, now func() time.Time) {
	l.now = now
}

func SetIncidentClock(l *IncidentLog, now func() time.Time) {
	l.now = now
}
