package converter

import (
	"parkingpro/internal/domain/subscription"
	"parkingpro/internal/infra/query"
	"parkingpro/internal/pkg/pgconv"
)

func SubscriptionToInfra(sub *subscription.Subscription) query.InsertSubscriptionParams {
	return query.InsertSubscriptionParams{
		ID:                       sub.ID(),
		UserID:                   sub.UserID(),
		VehicleID:                sub.VehicleID(),
		PlanID:                   sub.PlanID(),
		InvoiceID:                sub.InvoiceID().String(),
		PricePaid:                pgconv.DecimalToNumeric(sub.PricePaid()),
		FirstTimeApplied:         sub.FirstTimeApplied(),
		PromotionDiscountPercent: pgconv.DecimalToNumeric(sub.PromotionDiscountPercent()),
		StartAt:                  sub.StartAt(),
		EndAt:                    sub.EndAt(),
		QrPath:                   pgconv.OptionalStringToPgtype(sub.QRPath()),
	}
}
