package shared

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlanSnapshot struct {
	ID           uuid.UUID
	Name         string
	DurationDays int
	BasePrice    decimal.Decimal
}
