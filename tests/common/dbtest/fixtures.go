//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestUser inserts a user; phone may be empty to model a missing contact.
func CreateTestUser(t *testing.T, db DBLike, email, phone, role string, firstPurchase bool) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	var phoneArg any
	if phone != "" {
		phoneArg = phone
	}

	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, name, email, phone, role, is_first_purchase) VALUES ($1, $2, $3, $4, $5, $6)",
		userID, strings.Split(email, "@")[0], email, phoneArg, role, firstPurchase)
	require.NoError(t, err)

	return userID
}

func CreateTestVehicle(t *testing.T, db DBLike, userID uuid.UUID, plate, vehicleType string) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO vehicles (id, user_id, plate_number, vehicle_type) VALUES ($1, $2, $3, $4)",
		vehicleID, userID, plate, vehicleType)
	require.NoError(t, err)

	return vehicleID
}

func CreateTestPlan(t *testing.T, db DBLike, name string, durationDays int, basePrice string) uuid.UUID {
	t.Helper()

	planID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO subscription_plans (id, name, duration_days, base_price) VALUES ($1, $2, $3, $4::numeric)",
		planID, name, durationDays, basePrice)
	require.NoError(t, err)

	return planID
}

func CreateTestPromotion(t *testing.T, db DBLike, vehicleType, percent string, active bool, startAt, endAt time.Time) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO promotions (id, vehicle_type, discount_percent, is_active, start_at, end_at) VALUES ($1, $2, $3::numeric, $4, $5, $6)",
		promoID, vehicleType, percent, active, startAt, endAt)
	require.NoError(t, err)

	return promoID
}

func IsFirstPurchase(t *testing.T, db DBLike, userID uuid.UUID) bool {
	t.Helper()

	var first bool
	err := db.QueryRow(context.Background(), "SELECT is_first_purchase FROM users WHERE id = $1", userID).Scan(&first)
	require.NoError(t, err)
	return first
}

// inserts the plans every environment ships with
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO subscription_plans (name, duration_days, base_price) VALUES
		    ('Weekly', 7, 300.00),
		    ('Monthly', 30, 1000.00),
		    ('Quarterly', 90, 2700.00);
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
