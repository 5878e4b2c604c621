package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"time"

	"parkingpro/internal/domain/delivery"
	"parkingpro/internal/domain/promotion"
	"parkingpro/internal/domain/subscription"

	"github.com/google/uuid"
)

// PricingReads answers the lookups pricing depends on. A miss and a store
// failure both report found == false; failures are logged by the implementation.
type PricingReads interface {
	GetPlan(ctx context.Context, planID uuid.UUID) (*PlanSnapshot, bool)
	GetUserFirstPurchaseFlag(ctx context.Context, userID uuid.UUID) (bool, bool)
	GetVehicleType(ctx context.Context, vehicleID uuid.UUID) (string, bool)
	GetBestActivePromotion(ctx context.Context, vehicleType string, now time.Time) (*promotion.Promotion, bool)
}

type ContactReads interface {
	GetUserPhone(ctx context.Context, userID uuid.UUID) (string, bool)
}

type SubscriptionRecorder interface {
	Record(ctx context.Context, sub *subscription.Subscription) error
	AttachQR(ctx context.Context, subscriptionID uuid.UUID, path string) error
}

// ArtifactRenderer writes a QR image for payload at destPath.
// The error reports only a failure to write; the tier says which renderer produced the file.
type ArtifactRenderer interface {
	Render(ctx context.Context, payload, destPath string) (delivery.Tier, error)
}

type Notifier interface {
	Send(ctx context.Context, phone, message string) delivery.Outcome
}
