package subscription

import (
	"errors"
	"fmt"
	"time"

	"parkingpro/internal/domain/invoice"
	"parkingpro/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrUnpriced = errors.New("subscription requires a priced plan")

const payloadDateLayout = "2006-01-02"

type Subscription struct {
	id                       uuid.UUID
	userID                   uuid.UUID
	vehicleID                uuid.UUID
	planID                   uuid.UUID
	invoiceID                invoice.ID
	pricePaid                decimal.Decimal
	firstTimeApplied         bool
	promotionDiscountPercent decimal.Decimal
	startAt                  time.Time
	endAt                    time.Time
	qrPath                   string
}

// NewSubscription starts the subscription at startAt and runs it for the priced duration.
func NewSubscription(
	userID, vehicleID, planID uuid.UUID,
	invoiceID invoice.ID,
	priced pricing.Result,
	startAt time.Time,
) (*Subscription, error) {
	if !priced.IsPriced() {
		return nil, ErrUnpriced
	}

	return &Subscription{
		id:                       uuid.New(),
		userID:                   userID,
		vehicleID:                vehicleID,
		planID:                   planID,
		invoiceID:                invoiceID,
		pricePaid:                priced.FinalPrice,
		firstTimeApplied:         priced.FirstTimeApplied,
		promotionDiscountPercent: priced.PromotionDiscountPercent,
		startAt:                  startAt,
		endAt:                    startAt.AddDate(0, 0, priced.DurationDays),
	}, nil
}

func (s *Subscription) AttachQR(path string) {
	s.qrPath = path
}

func (s *Subscription) IsActiveAt(t time.Time) bool {
	return !t.Before(s.startAt) && !t.After(s.endAt)
}

// QRPayload is the text encoded on the pass shown to staff.
func (s *Subscription) QRPayload() string {
	return fmt.Sprintf("INV=%s;AMT=%s;VEH=%s;PLAN=%s;VALID=%s",
		s.invoiceID, s.pricePaid.StringFixed(2), s.vehicleID, s.planID, s.endAt.Format(payloadDateLayout))
}

func (s *Subscription) ID() uuid.UUID                             { return s.id }
func (s *Subscription) UserID() uuid.UUID                         { return s.userID }
func (s *Subscription) VehicleID() uuid.UUID                      { return s.vehicleID }
func (s *Subscription) PlanID() uuid.UUID                         { return s.planID }
func (s *Subscription) InvoiceID() invoice.ID                     { return s.invoiceID }
func (s *Subscription) PricePaid() decimal.Decimal                { return s.pricePaid }
func (s *Subscription) FirstTimeApplied() bool                    { return s.firstTimeApplied }
func (s *Subscription) PromotionDiscountPercent() decimal.Decimal { return s.promotionDiscountPercent }
func (s *Subscription) StartAt() time.Time                        { return s.startAt }
func (s *Subscription) EndAt() time.Time                          { return s.endAt }
func (s *Subscription) QRPath() string                            { return s.qrPath }
