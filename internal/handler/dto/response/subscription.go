package response

import (
	"time"

	"parkingpro/internal/domain/pricing"
	"parkingpro/internal/usecase/commands"
	"parkingpro/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

type PricingResponse struct {
	DurationDays             int    `json:"duration_days"`
	BasePrice                string `json:"base_price"`
	FinalPrice               string `json:"final_price"`
	Savings                  string `json:"savings"`
	FirstTimeApplied         bool   `json:"first_time_applied"`
	PromotionDiscountPercent string `json:"promotion_discount_percent"`
}

func FromPricing(r pricing.Result) PricingResponse {
	return PricingResponse{
		DurationDays:             r.DurationDays,
		BasePrice:                r.BasePrice.StringFixed(moneyPlaces),
		FinalPrice:               r.FinalPrice.StringFixed(moneyPlaces),
		Savings:                  r.Savings().StringFixed(moneyPlaces),
		FirstTimeApplied:         r.FirstTimeApplied,
		PromotionDiscountPercent: r.PromotionDiscountPercent.String(),
	}
}

type QRArtifactResponse struct {
	Tier string `json:"tier"`
	Path string `json:"path,omitempty"`
}

type NotificationResponse struct {
	Delivered bool   `json:"delivered"`
	Channel   string `json:"channel"`
}

type PurchaseResponse struct {
	InvoiceID    string               `json:"invoice_id"`
	Pricing      PricingResponse      `json:"pricing"`
	Recorded     bool                 `json:"recorded"`
	QR           QRArtifactResponse   `json:"qr"`
	Notification NotificationResponse `json:"notification"`
}

func FromPurchase(r commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		InvoiceID: r.InvoiceID.String(),
		Pricing:   FromPricing(r.Pricing),
		Recorded:  r.Recorded,
		QR: QRArtifactResponse{
			Tier: string(r.QRTier),
			Path: r.QRPath,
		},
		Notification: NotificationResponse{
			Delivered: r.Notification.Delivered,
			Channel:   string(r.Notification.Channel),
		},
	}
}

type ActiveSubscriptionResponse struct {
	ID                       string `json:"id"`
	UserID                   string `json:"user_id"`
	VehicleID                string `json:"vehicle_id"`
	PlateNumber              string `json:"plate_number"`
	PlanID                   string `json:"plan_id"`
	PlanName                 string `json:"plan_name"`
	InvoiceID                string `json:"invoice_id"`
	PricePaid                string `json:"price_paid"`
	FirstTimeApplied         bool   `json:"first_time_applied"`
	PromotionDiscountPercent string `json:"promotion_discount_percent"`
	StartAt                  int64  `json:"start_at"`
	EndAt                    int64  `json:"end_at"`
	QRPath                   string `json:"qr_path,omitempty"`
}

var viewConverters = []copier.TypeConverter{
	{
		SrcType: uuid.UUID{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return src.(uuid.UUID).String(), nil
		},
	},
	{
		SrcType: decimal.Decimal{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return src.(decimal.Decimal).StringFixed(moneyPlaces), nil
		},
	},
	{
		SrcType: time.Time{},
		DstType: int64(0),
		Fn: func(src any) (any, error) {
			return src.(time.Time).Unix(), nil
		},
	},
}

func FromActiveSubscriptionView(v *queries.ActiveSubscriptionView) (*ActiveSubscriptionResponse, error) {
	var res ActiveSubscriptionResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{Converters: viewConverters}); err != nil {
		return nil, err
	}
	return &res, nil
}
