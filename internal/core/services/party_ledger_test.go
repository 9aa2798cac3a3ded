package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/TinoSantoso/Playtopia-pos/internal/adapter/store"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/services"
)

func partyRequest(tier domain.PackageTier, override float64) services.PartyRequest {
	return services.PartyRequest{
		Date:          time.Date(2026, 9, 12, 14, 0, 0, 0, time.UTC),
		ChildName:     "Sophie Wilson",
		GuestCount:    8,
		Package:       tier,
		CostOverride:  override,
		GuardianName:  "Sarah Wilson",
		GuardianPhone: "+1234567892",
	}
}

func TestCreateParty_Pricing(t *testing.T) {
	ctx := context.Background()
	ledger := services.NewPartyLedger(store.NewMemory())

	basic, err := ledger.Create(ctx, partyRequest(domain.PackageBasic, 0))
	assert.NoError(t, err)
	assert.Equal(t, 149.0, basic.Cost)
	assert.Equal(t, domain.PartyPending, basic.Status)

	premium, err := ledger.Create(ctx, partyRequest(domain.PackagePremium, 0))
	assert.NoError(t, err)
	assert.Equal(t, 299.0, premium.Cost)

	overridden, err := ledger.Create(ctx, partyRequest(domain.PackageBasic, 200))
	assert.NoError(t, err)
	assert.Equal(t, 200.0, overridden.Cost, "positive override wins regardless of package")
}

func TestCreateParty_Validation(t *testing.T) {
	ctx := context.Background()
	ledger := services.NewPartyLedger(store.NewMemory())

	req := partyRequest(domain.PackageBasic, 0)
	req.ChildName = ""
	_, err := ledger.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = partyRequest("deluxe", 0)
	_, err = ledger.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = partyRequest(domain.PackageBasic, 0)
	req.Date = time.Time{}
	_, err = ledger.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChangeStatus_Transitions(t *testing.T) {
	ctx := context.Background()
	ledger := services.NewPartyLedger(store.NewMemory())

	party, err := ledger.Create(ctx, partyRequest(domain.PackageBasic, 0))
	assert.NoError(t, err)

	// pending → completed skips confirmation
	_, err = ledger.ChangeStatus(ctx, party.ID, domain.PartyCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	confirmed, err := ledger.ChangeStatus(ctx, party.ID, domain.PartyConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, domain.PartyConfirmed, confirmed.Status)

	_, err = ledger.ChangeStatus(ctx, party.ID, domain.PartyPending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	completed, err := ledger.ChangeStatus(ctx, party.ID, domain.PartyCompleted)
	assert.NoError(t, err)
	assert.Equal(t, domain.PartyCompleted, completed.Status)

	// completed is terminal
	for _, next := range []domain.PartyStatus{domain.PartyPending, domain.PartyConfirmed, domain.PartyCancelled} {
		_, err = ledger.ChangeStatus(ctx, party.ID, next)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "completed → %s must fail", next)
	}

	cancelled, err := ledger.Create(ctx, partyRequest(domain.PackageBasic, 0))
	assert.NoError(t, err)
	_, err = ledger.ChangeStatus(ctx, cancelled.ID, domain.PartyCancelled)
	assert.NoError(t, err)
	_, err = ledger.ChangeStatus(ctx, cancelled.ID, domain.PartyConfirmed)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "cancelled is terminal")

	_, err = ledger.ChangeStatus(ctx, uuid.New(), domain.PartyConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateParty_KeepsStatus(t *testing.T) {
	ctx := context.Background()
	ledger := services.NewPartyLedger(store.NewMemory())

	party, err := ledger.Create(ctx, partyRequest(domain.PackageBasic, 0))
	assert.NoError(t, err)
	_, err = ledger.ChangeStatus(ctx, party.ID, domain.PartyConfirmed)
	assert.NoError(t, err)

	req := partyRequest(domain.PackagePremium, 0)
	req.GuestCount = 12
	updated, err := ledger.Update(ctx, party.ID, req)
	assert.NoError(t, err)
	assert.Equal(t, domain.PartyConfirmed, updated.Status, "update never touches status")
	assert.Equal(t, 12, updated.GuestCount)
	assert.Equal(t, 299.0, updated.Cost, "no override: cost follows the new package")
}

func TestPartiesForDate(t *testing.T) {
	ctx := context.Background()
	ledger := services.NewPartyLedger(store.NewMemory())

	onDay := partyRequest(domain.PackageBasic, 0)
	onDay.Date = time.Date(2026, 9, 12, 16, 30, 0, 0, time.UTC)
	_, err := ledger.Create(ctx, onDay)
	assert.NoError(t, err)

	offDay := partyRequest(domain.PackageBasic, 0)
	offDay.Date = time.Date(2026, 9, 13, 10, 0, 0, 0, time.UTC)
	_, err = ledger.Create(ctx, offDay)
	assert.NoError(t, err)

	got := ledger.ForDate(time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC))
	assert.Len(t, got, 1)
}
