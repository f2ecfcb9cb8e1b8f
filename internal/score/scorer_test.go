package score

import (
	"reflect"
	"testing"

	"github.com/privacycheck/privacycheck-cli/internal/analysis"
	"github.com/privacycheck/privacycheck-cli/internal/extract"
)

func perfectFacts() Facts {
	return Facts{
		HTTPS: true,
		Flags: extract.ContentFlags{
			ConsentBanner:   true,
			PrivacyPolicy:   true,
			LegalMentions:   true,
			DPOContact:      true,
			DataDeleteLink:  true,
			SecureForms:     true,
			HasForms:        true,
			OptOutMechanism: true,
			CookiePolicy:    true,
		},
		SPF:   true,
		DMARC: true,
	}
}

func TestComputePerfectScore(t *testing.T) {
	total, breakdown := Compute(perfectFacts())
	if total != 100 {
		t.Fatalf("expected 100, got %d", total)
	}
	for _, entry := range breakdown {
		if !entry.Passed {
			t.Errorf("entry %q should pass on perfect facts (points %d)", entry.Item, entry.Points)
		}
		if entry.Points != 0 {
			t.Errorf("entry %q should deduct nothing, got %d", entry.Item, entry.Points)
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	f := perfectFacts()
	f.Flags.ConsentBanner = false
	f.TrackerCount = 3
	f.UndeclaredCookies = 2

	score1, breakdown1 := Compute(f)
	score2, breakdown2 := Compute(f)

	if score1 != score2 {
		t.Fatalf("scores differ: %d vs %d", score1, score2)
	}
	if !reflect.DeepEqual(breakdown1, breakdown2) {
		t.Fatalf("breakdowns differ between runs")
	}
}

func TestComputeBreakdownOrder(t *testing.T) {
	_, breakdown := Compute(perfectFacts())
	if len(breakdown) == 0 {
		t.Fatal("expected breakdown entries")
	}
	if breakdown[0].Item != "HTTPS Encryption" {
		t.Errorf("first entry should be HTTPS Encryption, got %q", breakdown[0].Item)
	}
	if breakdown[1].Item != "Cookie Consent Banner" {
		t.Errorf("second entry should be Cookie Consent Banner, got %q", breakdown[1].Item)
	}
}

func TestComputeMissingConsentBanner(t *testing.T) {
	f := perfectFacts()
	f.Flags.ConsentBanner = false

	total, breakdown := Compute(f)
	if total != 92 {
		t.Fatalf("expected 92, got %d", total)
	}

	found := false
	for _, entry := range breakdown {
		if entry.Item == "Cookie Consent Banner" {
			found = true
			if entry.Passed {
				t.Error("consent banner entry should fail")
			}
			if entry.Points != -8 {
				t.Errorf("expected -8 points, got %d", entry.Points)
			}
		}
	}
	if !found {
		t.Fatal("no Cookie Consent Banner entry in breakdown")
	}
}

func TestComputeDarkPatternCap(t *testing.T) {
	f := perfectFacts()
	f.DarkPatterns = &analysis.DarkPatternsResult{Detected: true, Critical: 10}

	total, _ := Compute(f)
	if total != 85 {
		t.Fatalf("dark pattern deduction should cap at 15, got score %d", total)
	}
}

func TestComputeClampsToZero(t *testing.T) {
	f := Facts{
		Flags:             extract.ContentFlags{HasForms: true},
		TrackerCount:      10,
		UndeclaredCookies: 10,
		ExposedEmailCount: 10,
		HighRiskVendors:   5,
		BreachCount:       5,
		DarkPatterns:      &analysis.DarkPatternsResult{Detected: true, Critical: 5},
		MixedContent:      &analysis.MixedContentResult{BlockedCount: 5, TotalIssues: 5},
	}

	total, _ := Compute(f)
	if total != 0 {
		t.Fatalf("expected clamp to 0, got %d", total)
	}
}

func TestComputeHeaderThreshold(t *testing.T) {
	cases := []struct {
		name      string
		subScore  int
		wantScore int
		wantPass  bool
	}{
		{"small gap absorbed", 80, 100, true},
		{"large gap deducted", 50, 95, false},
		{"worst case capped", 0, 90, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := perfectFacts()
			f.HeaderScore = &analysis.HeaderScoreResult{Score: tc.subScore}

			total, breakdown := Compute(f)
			if total != tc.wantScore {
				t.Fatalf("sub-score %d: expected %d, got %d", tc.subScore, tc.wantScore, total)
			}
			for _, entry := range breakdown {
				if entry.Item == "Security Headers" && entry.Passed != tc.wantPass {
					t.Errorf("sub-score %d: passed=%v, want %v", tc.subScore, entry.Passed, tc.wantPass)
				}
			}
		})
	}
}

func TestComputeEmitRules(t *testing.T) {
	contains := func(breakdown []BreakdownEntry, item string) bool {
		for _, entry := range breakdown {
			if entry.Item == item {
				return true
			}
		}
		return false
	}

	_, clean := Compute(perfectFacts())
	if !contains(clean, "Undeclared Cookies") {
		t.Error("undeclared cookies entry must always appear")
	}
	if contains(clean, "Exposed Email Addresses") || contains(clean, "High-Risk Vendors") || contains(clean, "Known Data Breaches") {
		t.Error("zero-count discovery entries must not appear")
	}

	f := perfectFacts()
	f.ExposedEmailCount = 2
	f.HighRiskVendors = 1
	f.BreachCount = 1
	_, dirty := Compute(f)
	for _, item := range []string{"Exposed Email Addresses", "High-Risk Vendors", "Known Data Breaches"} {
		if !contains(dirty, item) {
			t.Errorf("entry %q should appear when the count is nonzero", item)
		}
	}
}

func TestComputeSecureFormsPassesWithoutForms(t *testing.T) {
	f := perfectFacts()
	f.Flags.SecureForms = false
	f.Flags.HasForms = false

	total, _ := Compute(f)
	if total != 100 {
		t.Fatalf("a site without forms should not lose form points, got %d", total)
	}
}
