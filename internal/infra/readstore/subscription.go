package readstore

import (
	"context"
	"time"

	"parkingpro/internal/infra"
	"parkingpro/internal/infra/query"
	"parkingpro/internal/pkg/pgconv"
	"parkingpro/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubscriptionReadQueries interface {
	GetActiveSubscriptionForVehicle(ctx context.Context, db query.DBTX, vehicleID uuid.UUID, at time.Time) (query.GetActiveSubscriptionForVehicleRow, error)
}

type SubscriptionReadStore struct {
	queries SubscriptionReadQueries
	db      query.DBTX
}

func NewSubscriptionReadStore(queries SubscriptionReadQueries, db query.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{
		queries: queries,
		db:      db,
	}
}

// FindActiveForVehicle returns the subscription covering at, preferring the one that runs longest.
func (r *SubscriptionReadStore) FindActiveForVehicle(ctx context.Context, vehicleID uuid.UUID, at time.Time) (*queries.ActiveSubscriptionView, error) {
	row, err := r.queries.GetActiveSubscriptionForVehicle(ctx, r.db, vehicleID, at)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active subscription", err)
	}

	return toActiveSubscriptionView(row)
}

func toActiveSubscriptionView(row query.GetActiveSubscriptionForVehicleRow) (*queries.ActiveSubscriptionView, error) {
	paid, err := pgconv.DecimalFromNumeric(row.PricePaid)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid subscription price", err)
	}
	pct, err := pgconv.DecimalFromNumeric(row.PromotionDiscountPercent)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid subscription discount", err)
	}

	return &queries.ActiveSubscriptionView{
		ID:                       row.ID,
		UserID:                   row.UserID,
		VehicleID:                row.VehicleID,
		PlateNumber:              row.PlateNumber,
		PlanID:                   row.PlanID,
		PlanName:                 row.PlanName,
		InvoiceID:                row.InvoiceID,
		PricePaid:                paid,
		FirstTimeApplied:         row.FirstTimeApplied,
		PromotionDiscountPercent: pct,
		StartAt:                  row.StartAt,
		EndAt:                    row.EndAt,
		QRPath:                   pgconv.StringFromPgtype(row.QrPath),
	}, nil
}
