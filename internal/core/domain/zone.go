package domain

import "github.com/google/uuid"

// Zone is a physical play area with bounded occupancy. CurrentCount is
// derived state: it must always equal the number of active visitors whose
// CurrentZone references this zone, and only the zone registry writes it.
type Zone struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	CurrentCount int       `json:"currentCount"`
	AgeMin       int       `json:"ageMin"`
	AgeMax       int       `json:"ageMax"`
	Active       bool      `json:"isActive"`
}

func (z *Zone) IsFull() bool {
	return z.CurrentCount >= z.Capacity
}
