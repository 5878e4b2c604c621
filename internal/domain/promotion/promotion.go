package promotion

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 0 and 100")
	ErrInvalidWindow          = errors.New("promotion window ends before it starts")
	ErrEmptyVehicleType       = errors.New("vehicle type is required")
)

var hundred = decimal.NewFromInt(100)

type Promotion struct {
	id              uuid.UUID
	vehicleType     string
	discountPercent decimal.Decimal
	active          bool
	startAt         time.Time
	endAt           time.Time
	createdAt       time.Time
}

func NewPromotion(
	id uuid.UUID,
	vehicleType string,
	discountPercent decimal.Decimal,
	active bool,
	startAt, endAt, createdAt time.Time,
) (*Promotion, error) {
	vehicleType = NormalizeVehicleType(vehicleType)
	if vehicleType == "" {
		return nil, ErrEmptyVehicleType
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return nil, ErrInvalidDiscountPercent
	}
	if endAt.Before(startAt) {
		return nil, ErrInvalidWindow
	}

	return &Promotion{
		id:              id,
		vehicleType:     vehicleType,
		discountPercent: discountPercent,
		active:          active,
		startAt:         startAt,
		endAt:           endAt,
		createdAt:       createdAt,
	}, nil
}

// IsActiveAt reports whether the promotion is switched on and t lies inside [startAt, endAt].
func (p *Promotion) IsActiveAt(t time.Time) bool {
	if !p.active {
		return false
	}
	return !t.Before(p.startAt) && !t.After(p.endAt)
}

// outranks orders promotions: larger discount first, then most recently created, then lowest id.
func (p *Promotion) outranks(other *Promotion) bool {
	if c := p.discountPercent.Cmp(other.discountPercent); c != 0 {
		return c > 0
	}
	if !p.createdAt.Equal(other.createdAt) {
		return p.createdAt.After(other.createdAt)
	}
	return p.id.String() < other.id.String()
}

// SelectBest picks the promotion applying to vehicleType at now.
func SelectBest(candidates []*Promotion, vehicleType string, now time.Time) (*Promotion, bool) {
	vehicleType = NormalizeVehicleType(vehicleType)

	var best *Promotion
	for _, p := range candidates {
		if p == nil || p.vehicleType != vehicleType || !p.IsActiveAt(now) {
			continue
		}
		if best == nil || p.outranks(best) {
			best = p
		}
	}
	return best, best != nil
}

func NormalizeVehicleType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (p *Promotion) ID() uuid.UUID                    { return p.id }
func (p *Promotion) VehicleType() string              { return p.vehicleType }
func (p *Promotion) DiscountPercent() decimal.Decimal { return p.discountPercent }
func (p *Promotion) Active() bool                     { return p.active }
func (p *Promotion) StartAt() time.Time               { return p.startAt }
func (p *Promotion) EndAt() time.Time                 { return p.endAt }
func (p *Promotion) CreatedAt() time.Time             { return p.createdAt }
