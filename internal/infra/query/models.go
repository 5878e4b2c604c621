package query

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SubscriptionPlan struct {
	ID           uuid.UUID
	Name         string
	DurationDays int32
	BasePrice    pgtype.Numeric
}

type Promotion struct {
	ID              uuid.UUID
	VehicleType     string
	DiscountPercent pgtype.Numeric
	IsActive        bool
	StartAt         time.Time
	EndAt           time.Time
	CreatedAt       time.Time
}
