package queries

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing.go -package=queriesmock

import (
	"context"
	"time"

	"parkingpro/internal/domain/pricing"
	"parkingpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PricingQueries interface {
	Compute(ctx context.Context, userID, vehicleID, planID uuid.UUID, now time.Time) pricing.Result
}

type pricingQueriesImpl struct {
	reads shared.PricingReads
}

func NewPricingQueries(reads shared.PricingReads) PricingQueries {
	return &pricingQueriesImpl{reads: reads}
}

// Compute prices a purchase without side effects. An unknown plan yields the
// zero result; a missing vehicle or promotion only skips that discount.
func (q *pricingQueriesImpl) Compute(ctx context.Context, userID, vehicleID, planID uuid.UUID, now time.Time) pricing.Result {
	plan, ok := q.reads.GetPlan(ctx, planID)
	if !ok {
		return pricing.Result{}
	}

	in := pricing.Inputs{
		Plan: &pricing.PlanTerms{
			DurationDays: plan.DurationDays,
			BasePrice:    plan.BasePrice,
		},
	}

	if first, found := q.reads.GetUserFirstPurchaseFlag(ctx, userID); found {
		in.FirstPurchase = first
	}

	if pct, found := q.bestPromotionPercent(ctx, vehicleID, now); found {
		in.PromotionPercent = &pct
	}

	return pricing.Calculate(in)
}

func (q *pricingQueriesImpl) bestPromotionPercent(ctx context.Context, vehicleID uuid.UUID, now time.Time) (decimal.Decimal, bool) {
	vehicleType, ok := q.reads.GetVehicleType(ctx, vehicleID)
	if !ok {
		return decimal.Zero, false
	}

	promo, ok := q.reads.GetBestActivePromotion(ctx, vehicleType, now)
	if !ok {
		return decimal.Zero, false
	}
	return promo.DiscountPercent(), true
}
