package sms

import (
	"context"
	"log/slog"

	"parkingpro/internal/domain/delivery"
)

type LineAppender interface {
	Append(message string) error
}

// LogSink records the message locally instead of sending it. It stands in
// for a real provider in environments without credentials and always reports success.
type LogSink struct {
	w      LineAppender
	logger *slog.Logger
}

func NewLogSink(w LineAppender, logger *slog.Logger) *LogSink {
	return &LogSink{w: w, logger: logger}
}

func (p *LogSink) Channel() delivery.Channel { return delivery.ChannelLog }

func (p *LogSink) Configured() bool { return true }

func (p *LogSink) Send(ctx context.Context, phone, message string) error {
	if err := p.w.Append(phone + " : " + message); err != nil {
		p.logger.ErrorContext(ctx, "sms: log sink write failed", "error", err.Error())
	}
	return nil
}
