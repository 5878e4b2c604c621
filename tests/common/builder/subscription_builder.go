//go:build unit || e2e

package builder

import (
	"time"

	"parkingpro/internal/domain/delivery"
	"parkingpro/internal/domain/invoice"
	"parkingpro/internal/domain/pricing"
	reqdto "parkingpro/internal/handler/dto/request"
	"parkingpro/internal/usecase/commands"
	"parkingpro/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionBuilder struct {
	UserID           uuid.UUID
	VehicleID        uuid.UUID
	PlanID           uuid.UUID
	PlanName         string
	PlateNumber      string
	DurationDays     int
	BasePrice        decimal.Decimal
	FinalPrice       decimal.Decimal
	FirstTimeApplied bool
	PromotionPercent decimal.Decimal
	StartAt          time.Time
}

func NewSubscriptionBuilder() *SubscriptionBuilder {
	return &SubscriptionBuilder{
		UserID:           uuid.New(),
		VehicleID:        uuid.New(),
		PlanID:           uuid.New(),
		PlanName:         "Monthly",
		PlateNumber:      "KA01AB1234",
		DurationDays:     30,
		BasePrice:        decimal.NewFromInt(1000),
		FinalPrice:       decimal.NewFromInt(400),
		FirstTimeApplied: true,
		PromotionPercent: decimal.NewFromInt(20),
		StartAt:          time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *SubscriptionBuilder) With(mutate func(*SubscriptionBuilder)) *SubscriptionBuilder {
	mutate(b)
	return b
}

func (b *SubscriptionBuilder) InvoiceID() invoice.ID {
	return invoice.NewID(b.UserID, b.StartAt)
}

func (b *SubscriptionBuilder) BuildPurchaseRequestDTO() reqdto.PurchaseSubscriptionRequest {
	return reqdto.PurchaseSubscriptionRequest{
		VehicleID: b.VehicleID.String(),
		PlanID:    b.PlanID.String(),
	}
}

func (b *SubscriptionBuilder) BuildPricing() pricing.Result {
	return pricing.Result{
		DurationDays:             b.DurationDays,
		BasePrice:                b.BasePrice,
		FinalPrice:               b.FinalPrice,
		FirstTimeApplied:         b.FirstTimeApplied,
		PromotionDiscountPercent: b.PromotionPercent,
	}
}

func (b *SubscriptionBuilder) BuildPurchaseResult() commands.PurchaseResult {
	return commands.PurchaseResult{
		Pricing:      b.BuildPricing(),
		InvoiceID:    b.InvoiceID(),
		Recorded:     true,
		QRTier:       delivery.TierQRCode,
		QRPath:       "storage/qrcodes/" + b.InvoiceID().FileName(".png"),
		Notification: delivery.Delivered(delivery.ChannelLog),
	}
}

func (b *SubscriptionBuilder) BuildActiveView() *queries.ActiveSubscriptionView {
	return &queries.ActiveSubscriptionView{
		ID:                       uuid.New(),
		UserID:                   b.UserID,
		VehicleID:                b.VehicleID,
		PlateNumber:              b.PlateNumber,
		PlanID:                   b.PlanID,
		PlanName:                 b.PlanName,
		InvoiceID:                b.InvoiceID().String(),
		PricePaid:                b.FinalPrice,
		FirstTimeApplied:         b.FirstTimeApplied,
		PromotionDiscountPercent: b.PromotionPercent,
		StartAt:                  b.StartAt,
		EndAt:                    b.StartAt.AddDate(0, 0, b.DurationDays),
		QRPath:                   "storage/qrcodes/" + b.InvoiceID().FileName(".png"),
	}
}
