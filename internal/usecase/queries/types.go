package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActiveSubscriptionView is what staff see when validating a vehicle at the gate.
type ActiveSubscriptionView struct {
	ID                       uuid.UUID       `json:"id"`
	UserID                   uuid.UUID       `json:"user_id"`
	VehicleID                uuid.UUID       `json:"vehicle_id"`
	PlateNumber              string          `json:"plate_number"`
	PlanID                   uuid.UUID       `json:"plan_id"`
	PlanName                 string          `json:"plan_name"`
	InvoiceID                string          `json:"invoice_id"`
	PricePaid                decimal.Decimal `json:"price_paid"`
	FirstTimeApplied         bool            `json:"first_time_applied"`
	PromotionDiscountPercent decimal.Decimal `json:"promotion_discount_percent"`
	StartAt                  time.Time       `json:"start_at"`
	EndAt                    time.Time       `json:"end_at"`
	QRPath                   string          `json:"qr_path,omitempty"`
}
