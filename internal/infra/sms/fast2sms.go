package sms

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"parkingpro/internal/domain/delivery"
	"parkingpro/internal/pkg/config"
)

const (
	fast2smsSenderID = "TXTIND"
	fast2smsRoute    = "v3"
)

type Fast2SMS struct {
	apiKey   string
	endpoint string
	client   HTTPClient
	logger   *slog.Logger
}

func NewFast2SMS(cfg config.SMSConfig, client HTTPClient, logger *slog.Logger) *Fast2SMS {
	return &Fast2SMS{
		apiKey:   cfg.Fast2SMSAPIKey,
		endpoint: cfg.Fast2SMSURL,
		client:   client,
		logger:   logger,
	}
}

func (p *Fast2SMS) Channel() delivery.Channel { return delivery.ChannelFast2SMS }

func (p *Fast2SMS) Configured() bool {
	return p.apiKey != ""
}

func (p *Fast2SMS) Send(ctx context.Context, phone, message string) error {
	form := url.Values{
		"sender_id": {fast2smsSenderID},
		"message":   {message},
		"route":     {fast2smsRoute},
		"numbers":   {phone},
	}

	status, err := postForm(ctx, p.client, p.endpoint, form, func(req *http.Request) {
		req.Header.Set("authorization", p.apiKey)
		req.Header.Set("cache-control", "no-cache")
	})
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		p.logger.WarnContext(ctx, "sms: fast2sms answered with an error status", "status", status)
	}
	return nil
}
