package query

import (
	"context"
	"time"
)

const listActivePromotionsForType = `
SELECT id, vehicle_type, discount_percent, is_active, start_at, end_at, created_at
FROM promotions
WHERE LOWER(TRIM(vehicle_type)) = LOWER(TRIM($1))
  AND is_active
  AND start_at <= $2
  AND end_at >= $2
ORDER BY discount_percent DESC, created_at DESC, id::text ASC
`

func (q *Queries) ListActivePromotionsForType(ctx context.Context, db DBTX, vehicleType string, at time.Time) ([]Promotion, error) {
	rows, err := db.Query(ctx, listActivePromotionsForType, vehicleType, at)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Promotion
	for rows.Next() {
		var i Promotion
		if err := rows.Scan(
			&i.ID,
			&i.VehicleType,
			&i.DiscountPercent,
			&i.IsActive,
			&i.StartAt,
			&i.EndAt,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
