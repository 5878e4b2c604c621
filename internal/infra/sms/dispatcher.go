package sms

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"parkingpro/internal/domain/delivery"
	"parkingpro/internal/pkg/config"
)

// Dispatcher sends through the first configured provider only. A transport
// failure is reported as not delivered; the next provider is never tried.
type Dispatcher struct {
	providers []Provider
	timeout   time.Duration
	logger    *slog.Logger
}

func NewDispatcher(providers []Provider, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		providers: providers,
		timeout:   timeout,
		logger:    logger,
	}
}

// NewDispatcherFromConfig wires Fast2SMS, then Twilio, then the local sink.
func NewDispatcherFromConfig(cfg config.Config, sink LineAppender, logger *slog.Logger) *Dispatcher {
	client := &http.Client{Timeout: cfg.SMS.Timeout}
	return NewDispatcher([]Provider{
		NewFast2SMS(cfg.SMS, client, logger),
		NewTwilio(cfg.SMS, client, logger),
		NewLogSink(sink, logger),
	}, cfg.SMS.Timeout, logger)
}

func (d *Dispatcher) Send(ctx context.Context, phone, message string) delivery.Outcome {
	digits := delivery.NormalizePhone(phone)
	if digits == "" || message == "" {
		return delivery.NotDelivered(delivery.ChannelNone)
	}

	for _, p := range d.providers {
		if !p.Configured() {
			continue
		}
		return d.sendVia(ctx, p, digits, message)
	}

	return delivery.NotDelivered(delivery.ChannelNone)
}

func (d *Dispatcher) sendVia(ctx context.Context, p Provider, phone, message string) delivery.Outcome {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := p.Send(ctx, phone, message); err != nil {
		d.logger.ErrorContext(ctx, "sms: "+string(p.Channel())+" send failed", "error", err.Error())
		return delivery.NotDelivered(p.Channel())
	}
	return delivery.Delivered(p.Channel())
}
