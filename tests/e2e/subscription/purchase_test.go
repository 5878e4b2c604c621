//go:build e2e

package subscription_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"parkingpro/internal/domain/user"
	"parkingpro/internal/handler/dto/request"
	"parkingpro/internal/handler/dto/response"
	"parkingpro/tests/common/authtest"
	"parkingpro/tests/common/dbtest"
	"parkingpro/tests/common/httptest"
	"parkingpro/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	quoteURL        = "/api/pricing/quote?vehicle_id=%s&plan_id=%s"
	subscriptionURL = "/api/subscriptions"
	validationURL   = "/api/vehicles/%s/subscription"
)

type PurchaseSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *PurchaseSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestPurchaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PurchaseSuite))
}

type fixture struct {
	userID    uuid.UUID
	vehicleID uuid.UUID
	planID    uuid.UUID
	token     string
}

func (s *PurchaseSuite) seed(t *testing.T, phone string) fixture {
	t.Helper()

	userID := dbtest.CreateTestUser(t, s.DB, "driver@example.com", phone, string(user.RoleUser), true)
	vehicleID := dbtest.CreateTestVehicle(t, s.DB, userID, "KA01AB1234", "car")
	planID := dbtest.CreateTestPlan(t, s.DB, "Monthly Plus", 30, "1000.00")

	now := time.Now()
	dbtest.CreateTestPromotion(t, s.DB, "car", "20", true, now.Add(-time.Hour), now.Add(24*time.Hour))

	return fixture{
		userID:    userID,
		vehicleID: vehicleID,
		planID:    planID,
		token:     s.jwt.GenerateToken(t, userID, user.RoleUser),
	}
}

// purchase expects 201; pass http.StatusAccepted when the invoice may collide with an earlier one.
func (s *PurchaseSuite) purchase(t *testing.T, f fixture, allowed ...int) response.PurchaseResponse {
	t.Helper()

	body := request.PurchaseSubscriptionRequest{
		VehicleID: f.vehicleID.String(),
		PlanID:    f.planID.String(),
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, subscriptionURL, body, f.token)

	expected := http.StatusCreated
	if w.Code != http.StatusCreated && slices.Contains(allowed, w.Code) {
		expected = w.Code
	}

	var res response.PurchaseResponse
	httptest.AssertSuccessResponse(t, w, expected, &res)
	return res
}

// =============================================================================
// TestQuote - pricing preview without side effects
// =============================================================================

func (s *PurchaseSuite) TestQuote() {
	s.Run("Normal case: first purchase and promotion compose", func() {
		t := s.T()
		f := s.seed(t, "98765 43210")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(quoteURL, f.vehicleID, f.planID), nil, f.token)

		var got response.PricingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := response.PricingResponse{
			DurationDays:             30,
			BasePrice:                "1000.00",
			FinalPrice:               "400.00",
			Savings:                  "600.00",
			FirstTimeApplied:         true,
			PromotionDiscountPercent: "20",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("quote mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, dbtest.IsFirstPurchase(t, s.DB, f.userID), "quote must not consume the first-purchase discount")
	})

	s.Run("Error case: unknown plan", func() {
		t := s.T()
		f := s.seed(t, "9876543210")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(quoteURL, f.vehicleID, uuid.New()), nil, f.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Plan not found")
	})

	s.Run("Error case: missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(quoteURL, uuid.New(), uuid.New()), nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		token := s.jwt.CreateExpiredToken(t, uuid.New(), user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(quoteURL, uuid.New(), uuid.New()), nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestPurchase - full purchase flow with QR and SMS side channels
// =============================================================================

func (s *PurchaseSuite) TestPurchase() {
	s.Run("Normal case: first purchase issues pass and consumes the discount", func() {
		t := s.T()
		f := s.seed(t, "98765 43210")

		res := s.purchase(t, f)

		assert.Regexp(t, fmt.Sprintf(`^INV-%s-\d+$`, f.userID), res.InvoiceID)
		assert.Equal(t, "400.00", res.Pricing.FinalPrice)
		assert.True(t, res.Pricing.FirstTimeApplied)
		assert.True(t, res.Recorded)

		assert.Equal(t, "qrcode", res.QR.Tier)
		assert.Equal(t, filepath.Join(s.Config.QR.Dir, res.InvoiceID+".png"), res.QR.Path)
		assert.FileExists(t, res.QR.Path)

		assert.Equal(t, response.NotificationResponse{Delivered: true, Channel: "log"}, res.Notification)
		smsLog, err := os.ReadFile(filepath.Join(s.Config.App.LogDir, "sms.log"))
		require.NoError(t, err)
		assert.Contains(t, string(smsLog), "9876543210 : ParkingPro: subscription "+res.InvoiceID+" confirmed.")

		assert.False(t, dbtest.IsFirstPurchase(t, s.DB, f.userID))
	})

	s.Run("Normal case: repeat purchase only gets the promotion", func() {
		t := s.T()
		f := s.seed(t, "9876543210")

		first := s.purchase(t, f)
		require.True(t, first.Pricing.FirstTimeApplied)

		// same-second invoice ids collide, so the second record may fail and answer 202
		second := s.purchase(t, f, http.StatusAccepted)
		assert.False(t, second.Pricing.FirstTimeApplied)
		assert.Equal(t, "800.00", second.Pricing.FinalPrice)
		assert.Equal(t, "20", second.Pricing.PromotionDiscountPercent)
	})

	s.Run("Normal case: promotion type matched despite stored whitespace", func() {
		t := s.T()
		f := s.seed(t, "9876543210")
		_, err := s.DB.Exec(context.Background(), "UPDATE promotions SET vehicle_type = '  CAR '")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(quoteURL, f.vehicleID, f.planID), nil, f.token)

		var got response.PricingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "20", got.PromotionDiscountPercent)
		assert.Equal(t, "400.00", got.FinalPrice)
	})

	s.Run("Normal case: missing phone still records the purchase", func() {
		t := s.T()
		f := s.seed(t, "")

		res := s.purchase(t, f)

		assert.True(t, res.Recorded)
		assert.Equal(t, response.NotificationResponse{Delivered: false, Channel: "none"}, res.Notification)
	})

	s.Run("Error case: unknown plan", func() {
		t := s.T()
		f := s.seed(t, "9876543210")

		body := request.PurchaseSubscriptionRequest{
			VehicleID: f.vehicleID.String(),
			PlanID:    uuid.New().String(),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, subscriptionURL, body, f.token)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Plan not found")
		assert.True(t, dbtest.IsFirstPurchase(t, s.DB, f.userID))
	})

	s.Run("Error case: malformed ids", func() {
		t := s.T()
		f := s.seed(t, "9876543210")

		body := map[string]string{"vehicle_id": "car-1", "plan_id": f.planID.String()}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, subscriptionURL, body, f.token)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestStaffValidation - active subscription lookup for gate staff
// =============================================================================

func (s *PurchaseSuite) TestStaffValidation() {
	s.Run("Normal case: staff sees the active subscription", func() {
		t := s.T()
		f := s.seed(t, "9876543210")
		purchased := s.purchase(t, f)

		staffID := dbtest.CreateTestUser(t, s.DB, "gate@example.com", "", string(user.RoleStaff), false)
		token := s.jwt.GenerateToken(t, staffID, user.RoleStaff)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(validationURL, f.vehicleID), nil, token)

		var got response.ActiveSubscriptionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, purchased.InvoiceID, got.InvoiceID)
		assert.Equal(t, "KA01AB1234", got.PlateNumber)
		assert.Equal(t, "Monthly Plus", got.PlanName)
		assert.Equal(t, "400.00", got.PricePaid)
		assert.Equal(t, int64(30*24*60*60), got.EndAt-got.StartAt)
	})

	s.Run("Error case: no subscription for vehicle", func() {
		t := s.T()
		f := s.seed(t, "9876543210")
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(validationURL, f.vehicleID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No active subscription")
	})

	s.Run("Error case: plain users cannot validate", func() {
		t := s.T()
		f := s.seed(t, "9876543210")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(validationURL, f.vehicleID), nil, f.token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
