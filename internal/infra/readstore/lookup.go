package readstore

import (
	"context"
	"log/slog"
	"time"

	"parkingpro/internal/domain/promotion"
	"parkingpro/internal/infra"
	"parkingpro/internal/infra/query"
	"parkingpro/internal/pkg/config"
	"parkingpro/internal/pkg/pgconv"
	"parkingpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const component = "lookup"

// PlanFinder is implemented by PlanReadStore and by the plan cache wrapping it.
type PlanFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.PlanSnapshot, error)
}

type LookupQueries interface {
	GetUserFirstPurchase(ctx context.Context, db query.DBTX, id uuid.UUID) (bool, error)
	GetUserPhone(ctx context.Context, db query.DBTX, id uuid.UUID) (pgtype.Text, error)
	GetVehicleType(ctx context.Context, db query.DBTX, id uuid.UUID) (string, error)
	ListActivePromotionsForType(ctx context.Context, db query.DBTX, vehicleType string, at time.Time) ([]query.Promotion, error)
}

// LookupReadStore answers pricing and contact lookups. Every failure is
// logged here and reported to the caller as "not found".
type LookupReadStore struct {
	plans   PlanFinder
	queries LookupQueries
	db      query.DBTX
	logger  *slog.Logger
	timeout time.Duration
}

func NewLookupReadStore(plans PlanFinder, queries LookupQueries, db query.DBTX, logger *slog.Logger, cfg config.Config) *LookupReadStore {
	return &LookupReadStore{
		plans:   plans,
		queries: queries,
		db:      db,
		logger:  logger,
		timeout: cfg.DB.QueryTimeout,
	}
}

func (r *LookupReadStore) GetPlan(ctx context.Context, planID uuid.UUID) (*shared.PlanSnapshot, bool) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	plan, err := r.plans.FindByID(ctx, planID)
	if err != nil {
		r.report(ctx, "plan", err, "plan_id", planID)
		return nil, false
	}
	return plan, true
}

func (r *LookupReadStore) GetUserFirstPurchaseFlag(ctx context.Context, userID uuid.UUID) (bool, bool) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	first, err := r.queries.GetUserFirstPurchase(ctx, r.db, userID)
	if err != nil {
		r.report(ctx, "user", classify("user", err), "user_id", userID)
		return false, false
	}
	return first, true
}

func (r *LookupReadStore) GetVehicleType(ctx context.Context, vehicleID uuid.UUID) (string, bool) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	vehicleType, err := r.queries.GetVehicleType(ctx, r.db, vehicleID)
	if err != nil {
		r.report(ctx, "vehicle", classify("vehicle", err), "vehicle_id", vehicleID)
		return "", false
	}
	return promotion.NormalizeVehicleType(vehicleType), true
}

func (r *LookupReadStore) GetBestActivePromotion(ctx context.Context, vehicleType string, now time.Time) (*promotion.Promotion, bool) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.queries.ListActivePromotionsForType(ctx, r.db, vehicleType, now)
	if err != nil {
		r.report(ctx, "promotion", infra.WrapRepoErr("failed to list promotions", err), "vehicle_type", vehicleType)
		return nil, false
	}

	candidates := make([]*promotion.Promotion, 0, len(rows))
	for _, row := range rows {
		p, err := toPromotion(row)
		if err != nil {
			r.logger.WarnContext(ctx, component+": skipping malformed promotion", "promotion_id", row.ID, "error", err)
			continue
		}
		candidates = append(candidates, p)
	}

	return promotion.SelectBest(candidates, vehicleType, now)
}

func (r *LookupReadStore) GetUserPhone(ctx context.Context, userID uuid.UUID) (string, bool) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	phone, err := r.queries.GetUserPhone(ctx, r.db, userID)
	if err != nil {
		r.report(ctx, "phone", classify("user", err), "user_id", userID)
		return "", false
	}

	value := pgconv.StringFromPgtype(phone)
	if value == "" {
		return "", false
	}
	return value, true
}

func (r *LookupReadStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *LookupReadStore) report(ctx context.Context, what string, err error, args ...any) {
	if infra.IsKind(err, infra.KindNotFound) {
		r.logger.WarnContext(ctx, component+": "+what+" not found", args...)
		return
	}
	args = append(args, "error", err.Error())
	r.logger.ErrorContext(ctx, component+": "+what+" lookup failed", args...)
}

func classify(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find "+entity, err)
}

func toPromotion(row query.Promotion) (*promotion.Promotion, error) {
	pct, err := pgconv.DecimalFromNumeric(row.DiscountPercent)
	if err != nil {
		return nil, err
	}
	return promotion.NewPromotion(row.ID, row.VehicleType, pct, row.IsActive, row.StartAt, row.EndAt, row.CreatedAt)
}
