// Package breach looks up known data breaches affecting a domain via a
// public breach-database listing.
package breach

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"
)

// DefaultEndpoint is the public, unauthenticated breach listing.
const DefaultEndpoint = "https://haveibeenpwned.com/api/v3/breaches"

const maxReported = 5

// Breach is one known incident affecting the scanned domain.
type Breach struct {
	Name       string `json:"name"`
	Domain     string `json:"domain"`
	BreachDate string `json:"breachDate"`
	PwnCount   int64  `json:"affectedCount"`
}

// Checker fetches the breach listing and filters it to the target domain.
type Checker struct {
	Endpoint string
	Client   *http.Client
}

// NewChecker builds a checker for the given endpoint, defaulting to the
// public listing when empty.
func NewChecker(endpoint string) *Checker {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Checker{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type listingEntry struct {
	Name       string `json:"Name"`
	Domain     string `json:"Domain"`
	BreachDate string `json:"BreachDate"`
	PwnCount   int64  `json:"PwnCount"`
}

func domainMatches(breachDomain, target string) bool {
	breachDomain = strings.ToLower(breachDomain)
	target = strings.ToLower(strings.TrimPrefix(target, "www."))
	if breachDomain == "" {
		return false
	}
	return breachDomain == target ||
		strings.HasSuffix(breachDomain, "."+target) ||
		strings.HasSuffix(target, "."+breachDomain)
}

// Check returns up to five breaches matching the domain, newest first.
// Any network or decode failure yields an empty list: breach data is a
// secondary source and must never abort the audit.
func (c *Checker) Check(ctx context.Context, domain string) []Breach {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return []Breach{}
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return []Breach{}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return []Breach{}
	}

	var listing []listingEntry
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return []Breach{}
	}

	matched := make([]Breach, 0)
	for _, entry := range listing {
		if domainMatches(entry.Domain, domain) {
			matched = append(matched, Breach{
				Name:       entry.Name,
				Domain:     entry.Domain,
				BreachDate: entry.BreachDate,
				PwnCount:   entry.PwnCount,
			})
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].BreachDate > matched[j].BreachDate })
	if len(matched) > maxReported {
		matched = matched[:maxReported]
	}
	return matched
}
