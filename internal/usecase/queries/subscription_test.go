//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkingpro/internal/infra"
	"parkingpro/internal/pkg/clock"
	"parkingpro/internal/pkg/errs"
	"parkingpro/internal/usecase/queries"
	queriesmock "parkingpro/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionQueries_ActiveForVehicle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	vehicleID := uuid.New()
	view := &queries.ActiveSubscriptionView{ID: uuid.New(), VehicleID: vehicleID, InvoiceID: "INV-x-1"}

	tests := []struct {
		name     string
		repoView *queries.ActiveSubscriptionView
		repoErr  error
		wantErr  error
	}{
		{name: "active subscription", repoView: view},
		{
			name:    "none active",
			repoErr: infra.WrapRepoErr("active subscription not found", errors.New("no rows"), infra.KindNotFound),
			wantErr: errs.ErrSubscriptionNotFound,
		},
		{
			name:    "store failure",
			repoErr: infra.WrapRepoErr("failed to find active subscription", errors.New("connection reset")),
			wantErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := queriesmock.NewMockSubscriptionViewRepo(ctrl)
			repo.EXPECT().FindActiveForVehicle(ctx, vehicleID, now).Return(tt.repoView, tt.repoErr)

			got, err := queries.NewSubscriptionQueries(repo, clock.NewMockClock(now)).ActiveForVehicle(ctx, vehicleID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}
