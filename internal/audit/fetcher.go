package audit

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"strings"
	"time"

	consts "github.com/privacycheck/privacycheck-cli/internal/shared/constants"
)

// FetchedPage is the raw material one page contributes to the audit.
type FetchedPage struct {
	HTML      string
	SetCookie string
	Headers   http.Header
	TLSValid  bool
}

// Fetcher performs single-page GETs with a browser-like User-Agent.
// Redirects are followed transparently.
type Fetcher struct {
	Client *http.Client
}

// NewFetcher builds a fetcher with the default per-request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = consts.FetchTimeout
	}
	return &Fetcher{
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
	}
}

// Fetch GETs pageURL and returns its body, joined Set-Cookie header and
// response headers. Any network or protocol error yields nil: callers treat
// an unreachable page as missing data, not as a failure of the whole scan.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) *FetchedPage {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", consts.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, consts.MaxBodyBytes))
	if err != nil {
		return nil
	}

	return &FetchedPage{
		HTML:      string(body),
		SetCookie: strings.Join(resp.Header.Values("Set-Cookie"), ", "),
		Headers:   resp.Header,
		TLSValid:  resp.TLS != nil,
	}
}
