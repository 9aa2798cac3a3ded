package domain

import (
	"time"

	"github.com/google/uuid"
)

type PartyStatus string

const (
	PartyPending   PartyStatus = "pending"
	PartyConfirmed PartyStatus = "confirmed"
	PartyCompleted PartyStatus = "completed"
	PartyCancelled PartyStatus = "cancelled"
)

type PackageTier string

const (
	PackageBasic   PackageTier = "basic"
	PackagePremium PackageTier = "premium"
)

// PartyBooking is a scheduled birthday party event.
type PartyBooking struct {
	ID            uuid.UUID   `json:"id"`
	Date          time.Time   `json:"date"`
	ChildName     string      `json:"kidName"`
	GuestCount    int         `json:"guestCount"`
	Package       PackageTier `json:"package"`
	Cost          float64     `json:"cost"`
	GuardianName  string      `json:"guardianName"`
	GuardianPhone string      `json:"guardianPhone"`
	Status        PartyStatus `json:"status"`
}

var packagePrices = map[PackageTier]float64{
	PackageBasic:   149,
	PackagePremium: 299,
}

var packageFeatures = map[PackageTier][]string{
	PackageBasic: {
		"2 hours of play time",
		"Party room for 1 hour",
		"Basic decorations",
		"Juice and water",
		"Up to 8 guests",
	},
	PackagePremium: {
		"3 hours of play time",
		"Party room for 2 hours",
		"Premium decorations",
		"Pizza, cake, and drinks",
		"Party host included",
		"Up to 12 guests",
		"Party favors",
	},
}

func (p PackageTier) Valid() bool {
	_, ok := packagePrices[p]
	return ok
}

// DefaultPrice returns the fixed price of the package tier.
func (p PackageTier) DefaultPrice() float64 {
	return packagePrices[p]
}

// Features returns the fixed feature list of the package tier.
func (p PackageTier) Features() []string {
	return packageFeatures[p]
}

// legal forward transitions; completed and cancelled are terminal.
var partyTransitions = map[PartyStatus][]PartyStatus{
	PartyPending:   {PartyConfirmed, PartyCancelled},
	PartyConfirmed: {PartyCompleted, PartyCancelled},
}

// CanTransition reports whether a status change from s to next is legal.
func (s PartyStatus) CanTransition(next PartyStatus) bool {
	for _, allowed := range partyTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
