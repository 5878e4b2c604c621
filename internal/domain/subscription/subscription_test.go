//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"parkingpro/internal/domain/invoice"
	"parkingpro/internal/domain/pricing"
	"parkingpro/internal/domain/subscription"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscription(t *testing.T) {
	start := time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)
	userID, vehicleID, planID := uuid.New(), uuid.New(), uuid.New()
	inv := invoice.NewID(userID, start)

	priced := pricing.Calculate(pricing.Inputs{
		Plan:          &pricing.PlanTerms{DurationDays: 30, BasePrice: decimal.NewFromInt(500)},
		FirstPurchase: true,
	})

	sub, err := subscription.NewSubscription(userID, vehicleID, planID, inv, priced, start)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sub.ID())
	assert.Equal(t, start, sub.StartAt())
	assert.Equal(t, time.Date(2026, 2, 9, 9, 30, 0, 0, time.UTC), sub.EndAt())
	assert.True(t, sub.PricePaid().Equal(decimal.NewFromInt(250)))
	assert.True(t, sub.FirstTimeApplied())
	assert.Empty(t, sub.QRPath())

	assert.True(t, sub.IsActiveAt(start))
	assert.True(t, sub.IsActiveAt(sub.EndAt()))
	assert.False(t, sub.IsActiveAt(sub.EndAt().Add(time.Second)))

	sub.AttachQR("storage/qrcodes/x.png")
	assert.Equal(t, "storage/qrcodes/x.png", sub.QRPath())

	payload := sub.QRPayload()
	assert.Contains(t, payload, "INV="+inv.String())
	assert.Contains(t, payload, "AMT=250.00")
	assert.Contains(t, payload, "VEH="+vehicleID.String())
	assert.Contains(t, payload, "VALID=2026-02-09")
}

func TestNewSubscription_Unpriced(t *testing.T) {
	sub, err := subscription.NewSubscription(uuid.New(), uuid.New(), uuid.New(), "INV-x-1", pricing.Result{}, time.Now())
	require.ErrorIs(t, err, subscription.ErrUnpriced)
	assert.Nil(t, sub)
}
