//go:build unit

package pricing_test

import (
	"testing"

	"parkingpro/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pct(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func plan(days int, price string) *pricing.PlanTerms {
	return &pricing.PlanTerms{DurationDays: days, BasePrice: dec(price)}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		in   pricing.Inputs
		want pricing.Result
	}{
		{
			name: "first purchase with bike promotion",
			in:   pricing.Inputs{Plan: plan(30, "500.00"), FirstPurchase: true, PromotionPercent: pct("20")},
			want: pricing.Result{
				DurationDays:             30,
				BasePrice:                dec("500"),
				FinalPrice:               dec("200"),
				FirstTimeApplied:         true,
				PromotionDiscountPercent: dec("20"),
			},
		},
		{
			name: "returning buyer without promotion",
			in:   pricing.Inputs{Plan: plan(30, "500.00")},
			want: pricing.Result{DurationDays: 30, BasePrice: dec("500"), FinalPrice: dec("500")},
		},
		{
			name: "first purchase only",
			in:   pricing.Inputs{Plan: plan(7, "99.99"), FirstPurchase: true},
			want: pricing.Result{DurationDays: 7, BasePrice: dec("99.99"), FinalPrice: dec("50.00"), FirstTimeApplied: true},
		},
		{
			name: "promotion only",
			in:   pricing.Inputs{Plan: plan(90, "1200"), PromotionPercent: pct("15")},
			want: pricing.Result{DurationDays: 90, BasePrice: dec("1200"), FinalPrice: dec("1020"), PromotionDiscountPercent: dec("15")},
		},
		{
			name: "plan not found",
			in:   pricing.Inputs{FirstPurchase: true, PromotionPercent: pct("50")},
			want: pricing.Result{},
		},
		{
			name: "full promotion is free but still priced",
			in:   pricing.Inputs{Plan: plan(30, "500"), PromotionPercent: pct("100")},
			want: pricing.Result{DurationDays: 30, BasePrice: dec("500"), FinalPrice: dec("0"), PromotionDiscountPercent: dec("100")},
		},
		{
			name: "out of range promotion is clamped",
			in:   pricing.Inputs{Plan: plan(30, "500"), PromotionPercent: pct("140")},
			want: pricing.Result{DurationDays: 30, BasePrice: dec("500"), FinalPrice: dec("0"), PromotionDiscountPercent: dec("100")},
		},
		{
			name: "negative promotion never raises the price",
			in:   pricing.Inputs{Plan: plan(30, "500"), PromotionPercent: pct("-10")},
			want: pricing.Result{DurationDays: 30, BasePrice: dec("500"), FinalPrice: dec("500"), PromotionDiscountPercent: dec("0")},
		},
		{
			name: "half-up rounding at the end",
			in:   pricing.Inputs{Plan: plan(30, "10.01"), FirstPurchase: true},
			want: pricing.Result{DurationDays: 30, BasePrice: dec("10.01"), FinalPrice: dec("5.01"), FirstTimeApplied: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Calculate(tt.in)
			if diff := cmp.Diff(tt.want, got, cmpOpts...); diff != "" {
				t.Errorf("Result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_Properties(t *testing.T) {
	prices := []string{"0.01", "1", "49.99", "500", "1234.56"}
	percents := []string{"0", "5", "12.5", "33", "50", "99.9", "100"}

	for _, p := range prices {
		base := dec(p)

		t.Run("no discounts keeps the base price "+p, func(t *testing.T) {
			got := pricing.Calculate(pricing.Inputs{Plan: &pricing.PlanTerms{DurationDays: 30, BasePrice: base}})
			assert.True(t, got.FinalPrice.Equal(base.Round(2)))
		})

		t.Run("first purchase halves the price "+p, func(t *testing.T) {
			got := pricing.Calculate(pricing.Inputs{Plan: &pricing.PlanTerms{DurationDays: 30, BasePrice: base}, FirstPurchase: true})
			assert.True(t, got.FinalPrice.Equal(base.Mul(dec("0.5")).Round(2)))
		})

		for _, d := range percents {
			for _, first := range []bool{false, true} {
				got := pricing.Calculate(pricing.Inputs{
					Plan:             &pricing.PlanTerms{DurationDays: 30, BasePrice: base},
					FirstPurchase:    first,
					PromotionPercent: pct(d),
				})
				assert.False(t, got.FinalPrice.IsNegative(), "price %s pct %s", p, d)
				assert.True(t, got.FinalPrice.LessThanOrEqual(base), "price %s pct %s", p, d)
			}

			want := base.Mul(dec("0.5")).Mul(decimal.NewFromInt(1).Sub(dec(d).Div(decimal.NewFromInt(100)))).Round(2)
			got := pricing.Calculate(pricing.Inputs{
				Plan:             &pricing.PlanTerms{DurationDays: 30, BasePrice: base},
				FirstPurchase:    true,
				PromotionPercent: pct(d),
			})
			assert.True(t, got.FinalPrice.Equal(want), "price %s pct %s: want %s got %s", p, d, want, got.FinalPrice)
		}
	}
}

func TestDiscountOrderMatters(t *testing.T) {
	// Promotion first, then rounding, then halving yields a different amount for a nonzero discount.
	base := dec("99.99")
	promo := dec("15")

	firstTimeFirst := pricing.Round(pricing.ApplyPromotion(pricing.ApplyFirstTime(base), promo))
	swapped := pricing.ApplyFirstTime(pricing.Round(pricing.ApplyPromotion(base, promo)))

	assert.False(t, firstTimeFirst.Equal(swapped), "first=%s swapped=%s", firstTimeFirst, swapped)

	got := pricing.Calculate(pricing.Inputs{Plan: plan(30, "99.99"), FirstPurchase: true, PromotionPercent: &promo})
	assert.True(t, got.FinalPrice.Equal(firstTimeFirst))
}

func TestResult_IsPriced(t *testing.T) {
	assert.False(t, pricing.Result{}.IsPriced())
	assert.True(t, pricing.Result{DurationDays: 30}.IsPriced())
	assert.True(t, pricing.Result{BasePrice: dec("1")}.IsPriced())
}

func TestResult_Savings(t *testing.T) {
	got := pricing.Calculate(pricing.Inputs{Plan: plan(30, "500"), FirstPurchase: true, PromotionPercent: pct("20")})
	assert.True(t, got.Savings().Equal(dec("300")))
}
