package query

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertSubscription = `
INSERT INTO subscriptions (
    id, user_id, vehicle_id, plan_id, invoice_id, price_paid,
    first_time_applied, promotion_discount_percent, start_at, end_at, qr_path
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
)
`

type InsertSubscriptionParams struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	VehicleID                uuid.UUID
	PlanID                   uuid.UUID
	InvoiceID                string
	PricePaid                pgtype.Numeric
	FirstTimeApplied         bool
	PromotionDiscountPercent pgtype.Numeric
	StartAt                  time.Time
	EndAt                    time.Time
	QrPath                   pgtype.Text
}

func (q *Queries) InsertSubscription(ctx context.Context, db DBTX, arg InsertSubscriptionParams) error {
	_, err := db.Exec(ctx, insertSubscription,
		arg.ID,
		arg.UserID,
		arg.VehicleID,
		arg.PlanID,
		arg.InvoiceID,
		arg.PricePaid,
		arg.FirstTimeApplied,
		arg.PromotionDiscountPercent,
		arg.StartAt,
		arg.EndAt,
		arg.QrPath,
	)
	return err
}

const updateSubscriptionQRPath = `
UPDATE subscriptions
SET qr_path = $2
WHERE id = $1
`

func (q *Queries) UpdateSubscriptionQRPath(ctx context.Context, db DBTX, id uuid.UUID, qrPath pgtype.Text) (int64, error) {
	result, err := db.Exec(ctx, updateSubscriptionQRPath, id, qrPath)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getActiveSubscriptionForVehicle = `
SELECT s.id, s.user_id, s.vehicle_id, s.plan_id, s.invoice_id, s.price_paid,
       s.first_time_applied, s.promotion_discount_percent, s.start_at, s.end_at, s.qr_path,
       p.name AS plan_name, v.plate_number
FROM subscriptions s
JOIN subscription_plans p ON p.id = s.plan_id
JOIN vehicles v ON v.id = s.vehicle_id
WHERE s.vehicle_id = $1
  AND s.start_at <= $2
  AND s.end_at >= $2
ORDER BY s.end_at DESC
LIMIT 1
`

type GetActiveSubscriptionForVehicleRow struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	VehicleID                uuid.UUID
	PlanID                   uuid.UUID
	InvoiceID                string
	PricePaid                pgtype.Numeric
	FirstTimeApplied         bool
	PromotionDiscountPercent pgtype.Numeric
	StartAt                  time.Time
	EndAt                    time.Time
	QrPath                   pgtype.Text
	PlanName                 string
	PlateNumber              string
}

func (q *Queries) GetActiveSubscriptionForVehicle(ctx context.Context, db DBTX, vehicleID uuid.UUID, at time.Time) (GetActiveSubscriptionForVehicleRow, error) {
	row := db.QueryRow(ctx, getActiveSubscriptionForVehicle, vehicleID, at)
	var i GetActiveSubscriptionForVehicleRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.VehicleID,
		&i.PlanID,
		&i.InvoiceID,
		&i.PricePaid,
		&i.FirstTimeApplied,
		&i.PromotionDiscountPercent,
		&i.StartAt,
		&i.EndAt,
		&i.QrPath,
		&i.PlanName,
		&i.PlateNumber,
	)
	return i, err
}
