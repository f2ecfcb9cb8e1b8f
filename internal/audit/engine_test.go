package audit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/privacycheck/privacycheck-cli/internal/analysis"
	"github.com/privacycheck/privacycheck-cli/internal/breach"
	"github.com/privacycheck/privacycheck-cli/internal/dnscheck"
	"github.com/privacycheck/privacycheck-cli/internal/extract"
	"github.com/privacycheck/privacycheck-cli/internal/score"
)

// fixtureAnalyzers pin every deep-analysis module to its best-case result so
// engine tests exercise orchestration, not module heuristics.
func fixtureAnalyzers() analysis.Analyzers {
	return analysis.Analyzers{
		ConsentBanner: func(string, string) (*analysis.ConsentResult, error) {
			return &analysis.ConsentResult{Detected: true, Score: 100}, nil
		},
		PrivacyPolicy: func(string, string, string) (*analysis.PolicyResult, error) {
			return &analysis.PolicyResult{OverallScore: 100}, nil
		},
		DarkPatterns: func(string) (*analysis.DarkPatternsResult, error) {
			return &analysis.DarkPatternsResult{}, nil
		},
		OptInForms: func(string) (*analysis.OptInFormsResult, error) {
			return &analysis.OptInFormsResult{}, nil
		},
		CookieLifespans: func([]extract.Cookie) (*analysis.CookieLifespanResult, error) {
			return &analysis.CookieLifespanResult{}, nil
		},
		Fingerprinting: func(string) (*analysis.FingerprintingResult, error) {
			return &analysis.FingerprintingResult{}, nil
		},
		SecurityHeaders: func(http.Header) (*analysis.HeaderScoreResult, error) {
			return &analysis.HeaderScoreResult{Score: 100}, nil
		},
		StorageUsage: func(string) (*analysis.StorageResult, error) {
			return &analysis.StorageResult{}, nil
		},
		MixedContent: func(string, string) (*analysis.MixedContentResult, error) {
			return &analysis.MixedContentResult{}, nil
		},
		FormSecurity: func(string, string) (*analysis.FormSecurityResult, error) {
			return &analysis.FormSecurityResult{Compliant: true}, nil
		},
		Accessibility: func(string) (*analysis.AccessibilityResult, error) {
			return &analysis.AccessibilityResult{}, nil
		},
		VendorRisk:     analysis.GetVendorRisk,
		RiskPrediction: analysis.CalculateRiskPrediction,
		AttackSurface: func(context.Context, string, string) (*analysis.AttackSurfaceResult, error) {
			return &analysis.AttackSurfaceResult{Findings: []analysis.AttackSurfaceFinding{}}, nil
		},
	}
}

func newTestEngine() *Engine {
	return &Engine{
		Fetcher:   NewFetcher(2 * time.Second),
		Analyzers: fixtureAnalyzers(),
		EmailAuth: func(context.Context, string) dnscheck.EmailAuth {
			return dnscheck.EmailAuth{SPF: true, DMARC: true}
		},
		Breaches: func(context.Context, string) []breach.Breach {
			return []breach.Breach{}
		},
		RateLimit: 100,
	}
}

const compliantHTML = `
	<html><head><title>Compliant Site</title></head><body>
	<div class="cookie-banner">We value your privacy. Accept cookies or manage cookies.</div>
	<a href="/privacy-policy">Privacy Policy</a>
	<a href="/terms">Terms of Service</a>
	<a href="/cookies">Cookie Policy</a>
	<p>Questions? Contact dpo@example.com</p>
	<p>You may request to delete my data or opt-out at any time.</p>
	<form><input type="checkbox"> I consent to marketing</form>
	<script src="https://www.googletagmanager.com/gtag/js"></script>
	</body></html>
`

func TestEngineRunCompliantSite(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, compliantHTML)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	engine := newTestEngine()
	result, err := engine.Run(context.Background(), server.URL, TierFree)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// Plain HTTP costs 10, the single tracker costs 2.
	if result.Score != 88 {
		t.Fatalf("expected score 88, got %d (breakdown: %+v)", result.Score, result.ScoreBreakdown)
	}

	if result.ScanID == "" {
		t.Error("scan ID must be set")
	}
	if result.Domain != "127.0.0.1" {
		t.Errorf("unexpected domain %q", result.Domain)
	}
	if result.PagesScanned < 1 {
		t.Error("at least the main page must be scanned")
	}
	if len(result.Trackers) != 1 || result.Trackers[0] != "Google Analytics" {
		t.Errorf("expected Google Analytics tracker, got %v", result.Trackers)
	}
	if len(result.VendorRisks) != 1 || result.VendorRisks[0].Name != "Google Analytics" {
		t.Errorf("expected vendor risk entry for the tracker, got %v", result.VendorRisks)
	}
	if !result.EmailAuth.SPF || !result.EmailAuth.DMARC {
		t.Error("email auth fixture not carried into the result")
	}
	if len(result.Regulations) != 1 || result.Regulations[0] != "GDPR" {
		t.Errorf("expected GDPR baseline, got %v", result.Regulations)
	}
	if result.RiskPrediction == nil {
		t.Error("risk prediction missing")
	}
	if result.AttackSurface == nil {
		t.Error("attack surface result missing")
	}

	assertBreakdownEntry(t, result.ScoreBreakdown, "HTTPS Encryption", -10, false)
	assertBreakdownEntry(t, result.ScoreBreakdown, "Third-Party Trackers", -2, false)
	assertBreakdownEntry(t, result.ScoreBreakdown, "Cookie Consent Banner", 0, true)
}

func TestEngineRunUndeclaredCookies(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// Marketing cookie without any consent banner.
		w.Header().Add("Set-Cookie", "_fbp=fb.1.2.3")
		fmt.Fprint(w, "<html><body>bare page</body></html>")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	engine := newTestEngine()
	result, err := engine.Run(context.Background(), server.URL, TierFree)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.Cookies.Undeclared != 1 {
		t.Fatalf("non-essential cookie without a banner must count as undeclared, got %d", result.Cookies.Undeclared)
	}
	assertBreakdownEntry(t, result.ScoreBreakdown, "Undeclared Cookies", -1, false)
}

func TestEngineRunInvalidTarget(t *testing.T) {
	engine := newTestEngine()
	if _, err := engine.Run(context.Background(), "", TierFree); err == nil {
		t.Fatal("empty target must fail")
	}
}

func assertBreakdownEntry(t *testing.T, breakdown []score.BreakdownEntry, item string, points int, passed bool) {
	t.Helper()
	for _, entry := range breakdown {
		if entry.Item != item {
			continue
		}
		if entry.Points != points {
			t.Errorf("%s: expected %d points, got %d", item, points, entry.Points)
		}
		if entry.Passed != passed {
			t.Errorf("%s: expected passed=%v, got %v", item, passed, entry.Passed)
		}
		return
	}
	t.Errorf("breakdown entry %q not found", item)
}
