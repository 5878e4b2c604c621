package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getUserFirstPurchase = `
SELECT is_first_purchase
FROM users
WHERE id = $1
`

func (q *Queries) GetUserFirstPurchase(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	row := db.QueryRow(ctx, getUserFirstPurchase, id)
	var isFirstPurchase bool
	err := row.Scan(&isFirstPurchase)
	return isFirstPurchase, err
}

const getUserPhone = `
SELECT phone
FROM users
WHERE id = $1
`

func (q *Queries) GetUserPhone(ctx context.Context, db DBTX, id uuid.UUID) (pgtype.Text, error) {
	row := db.QueryRow(ctx, getUserPhone, id)
	var phone pgtype.Text
	err := row.Scan(&phone)
	return phone, err
}

// Only the first purchase wins the flag; a concurrent second purchase affects zero rows.
const clearFirstPurchase = `
UPDATE users
SET is_first_purchase = FALSE, updated_at = NOW()
WHERE id = $1 AND is_first_purchase
`

func (q *Queries) ClearFirstPurchase(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, clearFirstPurchase, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
