package query

import (
	"context"

	"github.com/google/uuid"
)

const getPlanByID = `
SELECT id, name, duration_days, base_price
FROM subscription_plans
WHERE id = $1
`

func (q *Queries) GetPlanByID(ctx context.Context, db DBTX, id uuid.UUID) (SubscriptionPlan, error) {
	row := db.QueryRow(ctx, getPlanByID, id)
	var i SubscriptionPlan
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.DurationDays,
		&i.BasePrice,
	)
	return i, err
}
