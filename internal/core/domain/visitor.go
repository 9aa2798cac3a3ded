package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visitor is a single visit record for one child. A visitor with no exit
// timestamp is active; wristband IDs are unique among active visitors only.
type Visitor struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Age           int        `json:"age"`
	GuardianPhone string     `json:"guardianPhone"`
	WristbandID   string     `json:"wristbandId"`
	CurrentZone   *uuid.UUID `json:"currentZone,omitempty"`
	EntryTime     time.Time  `json:"entryTime"`
	ExitTime      *time.Time `json:"exitTime,omitempty"`
}

func (v *Visitor) IsActive() bool {
	return v.ExitTime == nil
}

func (v *Visitor) InZone() bool {
	return v.CurrentZone != nil
}
