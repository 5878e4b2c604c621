package repository

import (
	"context"
	"time"

	"parkingpro/internal/domain/subscription"
	"parkingpro/internal/infra"
	"parkingpro/internal/infra/query"
	"parkingpro/internal/infra/repository/converter"
	"parkingpro/internal/pkg/config"
	"parkingpro/internal/pkg/pgconv"
	"parkingpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SubscriptionWriteQueries interface {
	InsertSubscription(ctx context.Context, db query.DBTX, arg query.InsertSubscriptionParams) error
	ClearFirstPurchase(ctx context.Context, db query.DBTX, userID uuid.UUID) (int64, error)
	UpdateSubscriptionQRPath(ctx context.Context, db query.DBTX, id uuid.UUID, qrPath pgtype.Text) (int64, error)
}

// TxDB is satisfied by *pgxpool.Pool.
type TxDB interface {
	query.DBTX
	shared.TxBeginner
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
	db      TxDB
	timeout time.Duration
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries, db TxDB, cfg config.Config) *SubscriptionRepository {
	return &SubscriptionRepository{
		queries: queries,
		db:      db,
		timeout: cfg.DB.QueryTimeout,
	}
}

// Record stores the subscription and, when it used the first-time discount,
// consumes the buyer's first-purchase flag in the same transaction. A buyer
// whose flag was already consumed by a concurrent purchase gets KindConflict
// and nothing is stored.
func (r *SubscriptionRepository) Record(ctx context.Context, sub *subscription.Subscription) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := shared.WithDefaultRetry(ctx, r.db, func(tx query.DBTX) (struct{}, error) {
		if err := r.queries.InsertSubscription(ctx, tx, converter.SubscriptionToInfra(sub)); err != nil {
			return struct{}{}, classifyWriteErr("failed to insert subscription", err)
		}

		if !sub.FirstTimeApplied() {
			return struct{}{}, nil
		}

		affected, err := r.queries.ClearFirstPurchase(ctx, tx, sub.UserID())
		if err != nil {
			return struct{}{}, infra.WrapRepoErr("failed to clear first-purchase flag", err)
		}
		if affected == 0 {
			return struct{}{}, infra.WrapRepoErr("first-purchase discount already used", nil, infra.KindConflict)
		}
		return struct{}{}, nil
	})
	return err
}

func (r *SubscriptionRepository) AttachQR(ctx context.Context, subscriptionID uuid.UUID, path string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	affected, err := r.queries.UpdateSubscriptionQRPath(ctx, r.db, subscriptionID, pgconv.OptionalStringToPgtype(path))
	if err != nil {
		return infra.WrapRepoErr("failed to attach QR path", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("subscription not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SubscriptionRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func classifyWriteErr(msg string, err error) error {
	switch {
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	case pgconv.IsForeignKeyViolation(err):
		return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr(msg, err)
	}
}
