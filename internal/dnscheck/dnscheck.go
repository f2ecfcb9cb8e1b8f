// Package dnscheck verifies email authentication DNS records (SPF, DMARC)
// through a public DNS-over-HTTPS resolver.
package dnscheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	consts "github.com/privacycheck/privacycheck-cli/internal/shared/constants"
)

// DefaultResolver is the DNS-over-HTTPS JSON endpoint used for lookups.
const DefaultResolver = "https://dns.google/resolve"

// EmailAuth reports which email-authentication records the domain publishes.
type EmailAuth struct {
	SPF   bool `json:"spf"`
	DMARC bool `json:"dmarc"`
}

// Checker performs the two TXT lookups.
type Checker struct {
	Resolver string
	Client   *http.Client
}

// NewChecker builds a checker against the given resolver endpoint, or the
// default public one when empty.
func NewChecker(resolver string) *Checker {
	if resolver == "" {
		resolver = DefaultResolver
	}
	return &Checker{
		Resolver: resolver,
		Client:   &http.Client{Timeout: consts.LookupTimeout},
	}
}

type dohAnswer struct {
	Data string `json:"data"`
}

type dohResponse struct {
	Answer []dohAnswer `json:"Answer"`
}

// lookupTXT returns the TXT record strings for name, or nil on any failure.
func (c *Checker) lookupTXT(ctx context.Context, name string) []string {
	endpoint := fmt.Sprintf("%s?name=%s&type=TXT", c.Resolver, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/dns-json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var parsed dohResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil
	}

	records := make([]string, 0, len(parsed.Answer))
	for _, ans := range parsed.Answer {
		records = append(records, strings.Trim(ans.Data, `"`))
	}
	return records
}

// Check looks up SPF on the root domain and DMARC on _dmarc.<domain>.
// The two lookups run concurrently; either failing resolves to false.
func (c *Checker) Check(ctx context.Context, domain string) EmailAuth {
	domain = strings.TrimPrefix(strings.ToLower(domain), "www.")

	lookupCtx, cancel := context.WithTimeout(ctx, 2*consts.LookupTimeout)
	defer cancel()

	var auth EmailAuth
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for _, txt := range c.lookupTXT(lookupCtx, domain) {
			if strings.HasPrefix(strings.ToLower(txt), "v=spf1") {
				auth.SPF = true
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for _, txt := range c.lookupTXT(lookupCtx, "_dmarc."+domain) {
			if strings.HasPrefix(strings.ToLower(txt), "v=dmarc1") {
				auth.DMARC = true
				return
			}
		}
	}()

	wg.Wait()
	return auth
}
