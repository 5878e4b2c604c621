package sms

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"parkingpro/internal/domain/delivery"
	"parkingpro/internal/pkg/errs"
)

// Provider is one outbound channel. Send receives a digits-only phone number.
type Provider interface {
	Channel() delivery.Channel
	Configured() bool
	Send(ctx context.Context, phone, message string) error
}

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// postForm sends a form-encoded POST. Only transport failures are errors;
// the provider's status payload is not inspected.
func postForm(ctx context.Context, client HTTPClient, endpoint string, form url.Values, decorate func(*http.Request)) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, errs.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if decorate != nil {
		decorate(req)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, errs.Wrap(err, "post")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
