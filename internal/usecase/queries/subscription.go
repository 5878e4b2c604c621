package queries

//go:generate mockgen -source=subscription.go -destination=../../../tests/mock/queries/subscription.go -package=queriesmock

import (
	"context"
	"time"

	"parkingpro/internal/infra"
	"parkingpro/internal/pkg/clock"
	"parkingpro/internal/pkg/errs"

	"github.com/google/uuid"
)

type SubscriptionQueries interface {
	ActiveForVehicle(ctx context.Context, vehicleID uuid.UUID) (*ActiveSubscriptionView, error)
}

type SubscriptionViewRepo interface {
	FindActiveForVehicle(ctx context.Context, vehicleID uuid.UUID, at time.Time) (*ActiveSubscriptionView, error)
}

type subscriptionQueriesImpl struct {
	repo  SubscriptionViewRepo
	clock clock.Clock
}

func NewSubscriptionQueries(repo SubscriptionViewRepo, clock clock.Clock) SubscriptionQueries {
	return &subscriptionQueriesImpl{
		repo:  repo,
		clock: clock,
	}
}

// ActiveForVehicle answers the gate check: the subscription covering the current instant.
func (q *subscriptionQueriesImpl) ActiveForVehicle(ctx context.Context, vehicleID uuid.UUID) (*ActiveSubscriptionView, error) {
	view, err := q.repo.FindActiveForVehicle(ctx, vehicleID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSubscriptionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
