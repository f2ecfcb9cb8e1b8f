package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/privacycheck/privacycheck-cli/internal/analysis"
	"github.com/privacycheck/privacycheck-cli/internal/audit"
	"github.com/privacycheck/privacycheck-cli/internal/extract"
	"github.com/privacycheck/privacycheck-cli/internal/score"
	sharederrors "github.com/privacycheck/privacycheck-cli/internal/shared/errors"
)

func fixtureResult() *audit.AuditResult {
	return &audit.AuditResult{
		ScanID:       "11111111-2222-3333-4444-555555555555",
		URL:          "https://example.com/",
		Domain:       "example.com",
		Tier:         audit.TierFree,
		Timestamp:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Score:        72,
		PagesScanned: 5,
		Cookies: audit.CookieIssues{
			Count:      2,
			Undeclared: 1,
			List: []extract.Cookie{
				{Name: "_ga", Category: "analytics", Provider: "Google"},
				{Name: "custom", Category: "unknown", Provider: "Unknown"},
			},
		},
		Trackers:    []string{"Google Analytics"},
		Regulations: []string{"GDPR", "CCPA"},
		ScoreBreakdown: []score.BreakdownEntry{
			{Item: "HTTPS Encryption", Points: 0, Passed: true},
			{Item: "Cookie Consent Banner", Points: -8, Passed: false},
		},
		RiskPrediction: &analysis.RiskPrediction{
			MinFine:        25_000,
			MaxFine:        150_000,
			RiskLevel:      "high",
			Probability:    45,
			Recommendation: "Address consent gaps.",
		},
	}
}

func writeFixtureResult(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scan_test.json")
	data, err := json.Marshal(fixtureResult())
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadResult(t *testing.T) {
	path := writeFixtureResult(t)

	result, err := loadResult(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if result.Domain != "example.com" || result.Score != 72 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestLoadResultErrors(t *testing.T) {
	if _, err := loadResult(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, sharederrors.ErrResultNotFound) {
		t.Errorf("expected ErrResultNotFound, got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := loadResult(bad); !errors.Is(err, sharederrors.ErrMalformedResultFile) {
		t.Errorf("expected ErrMalformedResultFile, got %v", err)
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := loadResult(empty); !errors.Is(err, sharederrors.ErrMalformedResultFile) {
		t.Errorf("result without a domain should be malformed, got %v", err)
	}
}

func TestGenerateMarkdownReport(t *testing.T) {
	md := generateMarkdownReport(fixtureResult())

	for _, want := range []string{
		"# Privacy Compliance Report: example.com",
		"## Score: 72/100",
		"| Cookie Consent Banner | -8 | fail |",
		"| HTTPS Encryption | 0 | pass |",
		"GDPR, CCPA",
		"`_ga` (analytics, Google)",
		"- Level: high",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestGeneratePDFReportBytes(t *testing.T) {
	pdfBytes, err := generatePDFReportBytes(fixtureResult())
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if len(pdfBytes) == 0 || !strings.HasPrefix(string(pdfBytes), "%PDF") {
		t.Fatal("output is not a PDF document")
	}
}
