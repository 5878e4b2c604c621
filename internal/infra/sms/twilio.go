package sms

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"parkingpro/internal/domain/delivery"
	"parkingpro/internal/pkg/config"
)

type Twilio struct {
	sid         string
	token       string
	from        string
	baseURL     string
	countryCode string
	client      HTTPClient
	logger      *slog.Logger
}

func NewTwilio(cfg config.SMSConfig, client HTTPClient, logger *slog.Logger) *Twilio {
	return &Twilio{
		sid:         cfg.TwilioSID,
		token:       cfg.TwilioToken,
		from:        cfg.TwilioFrom,
		baseURL:     strings.TrimRight(cfg.TwilioBaseURL, "/"),
		countryCode: cfg.CountryCode,
		client:      client,
		logger:      logger,
	}
}

func (p *Twilio) Channel() delivery.Channel { return delivery.ChannelTwilio }

func (p *Twilio) Configured() bool {
	return p.sid != "" && p.token != "" && p.from != ""
}

func (p *Twilio) Send(ctx context.Context, phone, message string) error {
	endpoint := p.baseURL + "/2010-04-01/Accounts/" + url.PathEscape(p.sid) + "/Messages.json"
	form := url.Values{
		"From": {p.from},
		"To":   {p.countryCode + phone},
		"Body": {message},
	}

	status, err := postForm(ctx, p.client, endpoint, form, func(req *http.Request) {
		req.SetBasicAuth(p.sid, p.token)
	})
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		p.logger.WarnContext(ctx, "sms: twilio answered with an error status", "status", status)
	}
	return nil
}
