package analysis

import (
	"testing"

	"github.com/privacycheck/privacycheck-cli/internal/extract"
)

func TestAnalyzeCookieLifespans(t *testing.T) {
	cookies := []extract.Cookie{
		{Name: "_ga", Category: extract.CategoryAnalytics},
		{Name: "_gid", Category: extract.CategoryAnalytics},
		{Name: "hubspotutk", Category: extract.CategoryMarketing},
		{Name: "session", Category: extract.CategoryNecessary},
	}

	result, err := AnalyzeCookieLifespans(cookies)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// _ga and hubspotutk are long-lived; _gid expires within a day and the
	// necessary session cookie is exempt.
	if result.IssuesCount != 2 {
		t.Fatalf("expected 2 lifespan issues, got %d: %v", result.IssuesCount, result.Issues)
	}
}

func TestAnalyzeCookieLifespansNecessaryExempt(t *testing.T) {
	cookies := []extract.Cookie{
		{Name: "_ga_special", Category: extract.CategoryNecessary},
	}
	result, err := AnalyzeCookieLifespans(cookies)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IssuesCount != 0 {
		t.Fatalf("necessary cookies must be exempt, got %d", result.IssuesCount)
	}
}
