//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"parkingpro/internal/domain/pricing"
	"parkingpro/internal/domain/user"
	"parkingpro/internal/handler/api"
	resdto "parkingpro/internal/handler/dto/response"
	"parkingpro/internal/handler/middleware"
	"parkingpro/internal/pkg/errs"
	"parkingpro/internal/usecase/commands"
	"parkingpro/tests/common/builder"
	"parkingpro/tests/common/httptest"
	"parkingpro/tests/common/testutil"
	commandsmock "parkingpro/tests/mock/commands"
	queriesmock "parkingpro/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SubscriptionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	mockQueries  *queriesmock.MockSubscriptionQueries
	actor        user.Actor
}

func (s *SubscriptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSubscriptionQueries(s.mockCtrl)
	handler := api.NewSubscriptionHandler(s.mockCommands, s.mockQueries)
	s.actor = user.Actor{UserID: uuid.New(), Role: user.RoleUser}

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, s.actor)
		c.Next()
	}

	s.router.POST("/api/subscriptions", authMiddleware, handler.Purchase)
	s.router.GET("/api/vehicles/:id/subscription", authMiddleware, handler.ActiveForVehicle)
}

func (s *SubscriptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSubscriptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerTestSuite))
}

type testCaseSubscription struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestPurchase
// ================================================================================

func (s *SubscriptionHandlerTestSuite) TestPurchase() {
	url := "/api/subscriptions"
	b := builder.NewSubscriptionBuilder()
	reqBody := b.BuildPurchaseRequestDTO()

	s.Run("success: returns 201 with pricing and side-effect flags", func() {
		s.mockCommands.EXPECT().Purchase(gomock.Any(), s.actor, b.VehicleID, b.PlanID).
			Return(b.BuildPurchaseResult()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.InvoiceID().String(), body.InvoiceID)
		s.Equal("1000.00", body.Pricing.BasePrice)
		s.Equal("400.00", body.Pricing.FinalPrice)
		s.Equal("600.00", body.Pricing.Savings)
		s.Equal("20", body.Pricing.PromotionDiscountPercent)
		s.True(body.Pricing.FirstTimeApplied)
		s.True(body.Recorded)
		s.Equal("qrcode", body.QR.Tier)
		s.Equal(resdto.NotificationResponse{Delivered: true, Channel: "log"}, body.Notification)
	})

	s.Run("success: side-effect failures still return 201", func() {
		result := b.BuildPurchaseResult()
		result.QRTier = "none"
		result.QRPath = ""
		result.Notification.Delivered = false
		s.mockCommands.EXPECT().Purchase(gomock.Any(), s.actor, b.VehicleID, b.PlanID).Return(result).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("none", body.QR.Tier)
		s.False(body.Notification.Delivered)
	})

	s.Run("success: unrecorded purchase returns 202", func() {
		result := b.BuildPurchaseResult()
		result.Recorded = false
		s.mockCommands.EXPECT().Purchase(gomock.Any(), s.actor, b.VehicleID, b.PlanID).Return(result).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.False(body.Recorded)
		s.Equal(b.InvoiceID().String(), body.InvoiceID)
	})

	s.Run("error: 404 when the plan cannot be priced", func() {
		s.mockCommands.EXPECT().Purchase(gomock.Any(), s.actor, b.VehicleID, b.PlanID).
			Return(commands.PurchaseResult{Pricing: pricing.Result{}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Plan not found")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseSubscription{
			{name: "missing field: vehicle_id", mutate: testutil.Field("vehicle_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: plan_id", mutate: testutil.Field("plan_id", nil), expectCode: http.StatusBadRequest},
			{name: "malformed vehicle_id", mutate: testutil.Field("vehicle_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "malformed plan_id", mutate: testutil.Field("plan_id", "123"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestActiveForVehicle
// ================================================================================

func (s *SubscriptionHandlerTestSuite) TestActiveForVehicle() {
	b := builder.NewSubscriptionBuilder()
	url := "/api/vehicles/" + b.VehicleID.String() + "/subscription"

	s.Run("success: returns the active subscription", func() {
		view := b.BuildActiveView()
		s.mockQueries.EXPECT().ActiveForVehicle(gomock.Any(), b.VehicleID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ActiveSubscriptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal(b.VehicleID.String(), body.VehicleID)
		s.Equal("KA01AB1234", body.PlateNumber)
		s.Equal("Monthly", body.PlanName)
		s.Equal("400.00", body.PricePaid)
		s.Equal(view.StartAt.Unix(), body.StartAt)
		s.Equal(view.EndAt.Unix(), body.EndAt)
	})

	s.Run("error: 404 when nothing is active", func() {
		s.mockQueries.EXPECT().ActiveForVehicle(gomock.Any(), b.VehicleID).
			Return(nil, errs.ErrSubscriptionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No active subscription")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().ActiveForVehicle(gomock.Any(), b.VehicleID).
			Return(nil, errs.Mark(errors.New("boom"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load subscription")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/vehicles/abc/subscription", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
