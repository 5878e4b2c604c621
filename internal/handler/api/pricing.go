package api

import (
	"net/http"

	reqdto "parkingpro/internal/handler/dto/request"
	resdto "parkingpro/internal/handler/dto/response"
	"parkingpro/internal/handler/httperr"
	"parkingpro/internal/handler/middleware"
	"parkingpro/internal/pkg/clock"
	"parkingpro/internal/pkg/errs"
	"parkingpro/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoActor = errs.New("request has no authenticated actor")

type PricingHandler struct {
	q     queries.PricingQueries
	clock clock.Clock
}

func NewPricingHandler(q queries.PricingQueries, clock clock.Clock) *PricingHandler {
	return &PricingHandler{q: q, clock: clock}
}

// @Summary Quote a subscription
// @Description Price a plan for one of the caller's vehicles without buying it
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param vehicle_id query string true "Vehicle ID"
// @Param plan_id query string true "Plan ID"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/pricing/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	var req reqdto.PricingQuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	vehicleID, planID, err := req.IDs()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result := h.q.Compute(c.Request.Context(), actor.UserID, vehicleID, planID, h.clock.Now())
	if !result.IsPriced() {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrPlanNotFound, "Plan not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricing(result))
}
