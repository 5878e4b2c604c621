package pricing

import "github.com/shopspring/decimal"

const pricePrecision = 2

var (
	firstTimeRate = decimal.NewFromFloat(0.5)
	hundred       = decimal.NewFromInt(100)
)

type PlanTerms struct {
	DurationDays int
	BasePrice    decimal.Decimal
}

// Inputs are the lookup outcomes for one purchase. A nil Plan means the plan was not found;
// a nil PromotionPercent means no promotion applies.
type Inputs struct {
	Plan             *PlanTerms
	FirstPurchase    bool
	PromotionPercent *decimal.Decimal
}

// Calculate applies the first-time discount and then the promotion discount.
// The order matters: both are multiplicative and the result is rounded once, at the end.
func Calculate(in Inputs) Result {
	if in.Plan == nil {
		return Result{}
	}

	base := in.Plan.BasePrice
	if base.IsNegative() {
		base = decimal.Zero
	}

	result := Result{
		DurationDays: in.Plan.DurationDays,
		BasePrice:    base,
	}

	final := base
	if in.FirstPurchase {
		result.FirstTimeApplied = true
		final = ApplyFirstTime(final)
	}

	if in.PromotionPercent != nil {
		pct := ClampPercent(*in.PromotionPercent)
		result.PromotionDiscountPercent = pct
		final = ApplyPromotion(final, pct)
	}

	result.FinalPrice = Round(final)
	return result
}

func ApplyFirstTime(price decimal.Decimal) decimal.Decimal {
	return price.Mul(firstTimeRate)
}

func ApplyPromotion(price, percent decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(1).Sub(percent.Div(hundred)))
}

// Round is half-up for the non-negative amounts handled here.
func Round(price decimal.Decimal) decimal.Decimal {
	return price.Round(pricePrecision)
}

func ClampPercent(p decimal.Decimal) decimal.Decimal {
	switch {
	case p.IsNegative():
		return decimal.Zero
	case p.GreaterThan(hundred):
		return hundred
	default:
		return p
	}
}
