package commands

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/commands/purchase.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"parkingpro/internal/domain/delivery"
	"parkingpro/internal/domain/invoice"
	"parkingpro/internal/domain/pricing"
	"parkingpro/internal/domain/subscription"
	"parkingpro/internal/domain/user"
	"parkingpro/internal/pkg/clock"
	"parkingpro/internal/pkg/config"
	"parkingpro/internal/usecase/queries"
	"parkingpro/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	qrExtension       = ".png"
	messageDateLayout = "2006-01-02"
)

// PurchaseResult reports what happened to each step. Side-effect failures show
// up as flags, never as errors.
type PurchaseResult struct {
	Pricing      pricing.Result
	InvoiceID    invoice.ID
	Recorded     bool
	QRTier       delivery.Tier
	QRPath       string
	Notification delivery.Outcome
}

type PurchaseCommands interface {
	Purchase(ctx context.Context, actor user.Actor, vehicleID, planID uuid.UUID) PurchaseResult
}

type purchaseUseCaseImpl struct {
	pricingQueries queries.PricingQueries
	recorder       shared.SubscriptionRecorder
	renderer       shared.ArtifactRenderer
	contacts       shared.ContactReads
	notifier       shared.Notifier
	clock          clock.Clock
	qrDir          string
	logger         *slog.Logger
}

func NewPurchaseUseCase(
	pricingQueries queries.PricingQueries,
	recorder shared.SubscriptionRecorder,
	renderer shared.ArtifactRenderer,
	contacts shared.ContactReads,
	notifier shared.Notifier,
	clock clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) PurchaseCommands {
	return &purchaseUseCaseImpl{
		pricingQueries: pricingQueries,
		recorder:       recorder,
		renderer:       renderer,
		contacts:       contacts,
		notifier:       notifier,
		clock:          clock,
		qrDir:          cfg.QR.Dir,
		logger:         logger,
	}
}

// Purchase prices the subscription and then records it, renders the pass and
// notifies the user. The three steps after pricing are independent: a failure
// in one is logged and the others still run.
func (p *purchaseUseCaseImpl) Purchase(ctx context.Context, actor user.Actor, vehicleID, planID uuid.UUID) PurchaseResult {
	now := p.clock.Now()

	priced := p.pricingQueries.Compute(ctx, actor.UserID, vehicleID, planID, now)
	if !priced.IsPriced() {
		p.logger.WarnContext(ctx, "purchase: plan could not be priced",
			"user_id", actor.UserID, "vehicle_id", vehicleID, "plan_id", planID)
		return PurchaseResult{
			QRTier:       delivery.TierNone,
			Notification: delivery.NotDelivered(delivery.ChannelNone),
		}
	}

	invoiceID := invoice.NewID(actor.UserID, now)
	result := PurchaseResult{
		Pricing:      priced,
		InvoiceID:    invoiceID,
		QRTier:       delivery.TierNone,
		Notification: delivery.NotDelivered(delivery.ChannelNone),
	}

	sub, err := subscription.NewSubscription(actor.UserID, vehicleID, planID, invoiceID, priced, now)
	if err != nil {
		p.logger.ErrorContext(ctx, "purchase: subscription could not be built", "invoice_id", invoiceID, "error", err.Error())
		return result
	}

	result.Recorded = p.record(ctx, sub)
	result.QRTier, result.QRPath = p.renderPass(ctx, sub, result.Recorded)
	result.Notification = p.notify(ctx, actor.UserID, sub, priced, result.Recorded)

	return result
}

func (p *purchaseUseCaseImpl) record(ctx context.Context, sub *subscription.Subscription) bool {
	if err := p.recorder.Record(ctx, sub); err != nil {
		p.logger.ErrorContext(ctx, "purchase: record subscription failed", "invoice_id", sub.InvoiceID(), "error", err.Error())
		return false
	}
	return true
}

func (p *purchaseUseCaseImpl) renderPass(ctx context.Context, sub *subscription.Subscription, recorded bool) (delivery.Tier, string) {
	path := filepath.Join(p.qrDir, sub.InvoiceID().FileName(qrExtension))

	tier, err := p.renderer.Render(ctx, sub.QRPayload(), path)
	if err != nil {
		p.logger.ErrorContext(ctx, "purchase: qr render failed", "invoice_id", sub.InvoiceID(), "error", err.Error())
		return delivery.TierNone, ""
	}
	sub.AttachQR(path)

	if recorded {
		if err := p.recorder.AttachQR(ctx, sub.ID(), path); err != nil {
			p.logger.ErrorContext(ctx, "purchase: attach qr path failed", "invoice_id", sub.InvoiceID(), "error", err.Error())
		}
	}
	return tier, path
}

func (p *purchaseUseCaseImpl) notify(ctx context.Context, userID uuid.UUID, sub *subscription.Subscription, priced pricing.Result, recorded bool) delivery.Outcome {
	phone, ok := p.contacts.GetUserPhone(ctx, userID)
	if !ok {
		return delivery.NotDelivered(delivery.ChannelNone)
	}

	message := ConfirmationMessage(sub, priced)
	if !recorded {
		message = PendingMessage(sub, priced)
	}

	outcome := p.notifier.Send(ctx, phone, message)
	if !outcome.Delivered {
		p.logger.WarnContext(ctx, "purchase: confirmation sms not delivered",
			"invoice_id", sub.InvoiceID(), "channel", outcome.Channel)
	}
	return outcome
}

// ConfirmationMessage is the SMS body sent after a purchase.
func ConfirmationMessage(sub *subscription.Subscription, priced pricing.Result) string {
	return fmt.Sprintf("ParkingPro: subscription %s confirmed. Paid Rs %s for %d days, valid till %s.",
		sub.InvoiceID(), priced.FinalPrice.StringFixed(2), priced.DurationDays, sub.EndAt().Format(messageDateLayout))
}

// PendingMessage replaces the confirmation when the subscription could not be stored.
func PendingMessage(sub *subscription.Subscription, priced pricing.Result) string {
	return fmt.Sprintf("ParkingPro: subscription %s is pending. Paid Rs %s; quote this invoice to support if it is not activated.",
		sub.InvoiceID(), priced.FinalPrice.StringFixed(2))
}
