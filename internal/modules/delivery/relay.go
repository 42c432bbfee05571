package delivery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Relay forwards the booking form to a mail relay.
type Relay interface {
	Send(ctx context.Context, fields []Field) error
	Endpoint() string
}

type FormRelay struct {
	endpoint   string
	httpClient *http.Client
}

// NewFormRelay builds a relay client. A zero or negative timeout leaves the
// request bounded only by its context and the transport defaults.
func NewFormRelay(endpoint string, timeout time.Duration) *FormRelay {
	if timeout < 0 {
		timeout = 0
	}
	return &FormRelay{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (r *FormRelay) Endpoint() string {
	return r.endpoint
}

// Send posts fields as multipart/form-data, in order. Any 2xx is success.
func (r *FormRelay) Send(ctx context.Context, fields []Field) error {
	if r.endpoint == "" {
		return fmt.Errorf("%w: no endpoint configured", ErrRelayRejected)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return fmt.Errorf("write form field %s: %w", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("form relay request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %s", ErrRelayRejected, resp.Status)
	}
	return nil
}
