package request

import (
	"github.com/google/uuid"
)

type PricingQuoteRequest struct {
	VehicleID string `form:"vehicle_id" binding:"required,uuid"`
	PlanID    string `form:"plan_id" binding:"required,uuid"`
}

func (r PricingQuoteRequest) IDs() (vehicleID, planID uuid.UUID, err error) {
	return parseIDs(r.VehicleID, r.PlanID)
}

type PurchaseSubscriptionRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required,uuid"`
	PlanID    string `json:"plan_id" binding:"required,uuid"`
}

func (r PurchaseSubscriptionRequest) IDs() (vehicleID, planID uuid.UUID, err error) {
	return parseIDs(r.VehicleID, r.PlanID)
}

func parseIDs(vehicle, plan string) (uuid.UUID, uuid.UUID, error) {
	vehicleID, err := uuid.Parse(vehicle)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	planID, err := uuid.Parse(plan)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return vehicleID, planID, nil
}
