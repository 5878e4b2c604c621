package readstore

import (
	"context"

	"parkingpro/internal/infra"
	"parkingpro/internal/infra/query"
	"parkingpro/internal/pkg/pgconv"
	"parkingpro/internal/usecase/shared"

	"github.com/google/uuid"
)

type PlanReadQueries interface {
	GetPlanByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.SubscriptionPlan, error)
}

type PlanReadStore struct {
	queries PlanReadQueries
	db      query.DBTX
}

func NewPlanReadStore(queries PlanReadQueries, db query.DBTX) *PlanReadStore {
	return &PlanReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PlanReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.PlanSnapshot, error) {
	row, err := r.queries.GetPlanByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find plan by ID", err)
	}

	return toPlanSnapshot(row)
}

func toPlanSnapshot(row query.SubscriptionPlan) (*shared.PlanSnapshot, error) {
	price, err := pgconv.DecimalFromNumeric(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid plan base price", err)
	}

	return &shared.PlanSnapshot{
		ID:           row.ID,
		Name:         row.Name,
		DurationDays: int(row.DurationDays),
		BasePrice:    price,
	}, nil
}
