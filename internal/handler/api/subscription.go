package api

import (
	"net/http"

	reqdto "parkingpro/internal/handler/dto/request"
	resdto "parkingpro/internal/handler/dto/response"
	"parkingpro/internal/handler/httperr"
	"parkingpro/internal/handler/middleware"
	"parkingpro/internal/pkg/errs"
	"parkingpro/internal/usecase/commands"
	"parkingpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubscriptionHandler struct {
	cmds commands.PurchaseCommands
	q    queries.SubscriptionQueries
}

func NewSubscriptionHandler(cmds commands.PurchaseCommands, q queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{cmds: cmds, q: q}
}

// @Summary Purchase a subscription
// @Description Price and record a subscription, then issue the QR pass and confirmation SMS.
// @Description QR and SMS failures are reported in the body and do not fail the request.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseSubscriptionRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Success 202 {object} resdto.PurchaseResponse "paid but not stored"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/subscriptions [post]
func (h *SubscriptionHandler) Purchase(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.PurchaseSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	vehicleID, planID, err := req.IDs()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result := h.cmds.Purchase(c.Request.Context(), actor, vehicleID, planID)
	if !result.Pricing.IsPriced() {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrPlanNotFound, "Plan not found", nil)
		return
	}
	status := http.StatusCreated
	if !result.Recorded {
		status = http.StatusAccepted
	}
	c.JSON(status, resdto.FromPurchase(result))
}

// @Summary Validate a vehicle
// @Description Staff lookup of the subscription currently covering a vehicle
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.ActiveSubscriptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/vehicles/{id}/subscription [get]
func (h *SubscriptionHandler) ActiveForVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.ActiveForVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		if errs.Is(err, errs.ErrSubscriptionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No active subscription", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load subscription", nil)
		return
	}

	res, err := resdto.FromActiveSubscriptionView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load subscription", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
