package pricing

import "github.com/shopspring/decimal"

// Result is the priced purchase. The zero value means "could not price", not "free".
type Result struct {
	DurationDays             int
	BasePrice                decimal.Decimal
	FinalPrice               decimal.Decimal
	FirstTimeApplied         bool
	PromotionDiscountPercent decimal.Decimal
}

// IsPriced distinguishes a real (possibly free) price from the "plan not found" result.
func (r Result) IsPriced() bool {
	return r.DurationDays != 0 || !r.BasePrice.IsZero()
}

// Savings is the amount knocked off the base price.
func (r Result) Savings() decimal.Decimal {
	return r.BasePrice.Sub(r.FinalPrice)
}
