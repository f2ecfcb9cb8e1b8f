// Package score turns the accumulated audit facts into a 0-100 compliance
// score with an itemized breakdown. The computation is a pure function of
// its input: a fixed, ordered list of deduction rules is folded once over
// the facts, and breakdown order is rule order, not severity order.
package score

import (
	"github.com/privacycheck/privacycheck-cli/internal/analysis"
	"github.com/privacycheck/privacycheck-cli/internal/extract"
)

// BreakdownEntry is one line item of the score explanation. Points is the
// deduction taken (<= 0).
type BreakdownEntry struct {
	Item   string `json:"item"`
	Points int    `json:"points"`
	Passed bool   `json:"passed"`
}

// Facts is everything the scorer reads. Module pointers may be nil when a
// collaborator failed or did not run; nil never deducts.
type Facts struct {
	HTTPS             bool
	Flags             extract.ContentFlags
	Cookies           []extract.Cookie
	UndeclaredCookies int
	TrackerCount      int
	SPF               bool
	DMARC             bool
	ExposedEmailCount int
	HighRiskVendors   int
	BreachCount       int

	Consent        *analysis.ConsentResult
	Policy         *analysis.PolicyResult
	DarkPatterns   *analysis.DarkPatternsResult
	OptInForms     *analysis.OptInFormsResult
	Lifespans      *analysis.CookieLifespanResult
	Fingerprinting *analysis.FingerprintingResult
	HeaderScore    *analysis.HeaderScoreResult
	Storage        *analysis.StorageResult
	MixedContent   *analysis.MixedContentResult
	FormSecurity   *analysis.FormSecurityResult
	Accessibility  *analysis.AccessibilityResult
}

// rule computes one deduction. points is the deduction to take (>= 0),
// passed marks the breakdown entry, emit controls whether an entry is
// appended at all.
type rule struct {
	label string
	apply func(f Facts) (points int, passed bool, emit bool)
}

// Compute applies every rule once, in order, and clamps the final score to
// [0, 100]. For identical facts it always returns identical output.
func Compute(f Facts) (int, []BreakdownEntry) {
	score := 100
	breakdown := make([]BreakdownEntry, 0, len(rules))

	for _, r := range rules {
		points, passed, emit := r.apply(f)
		score -= points
		if !emit {
			continue
		}
		breakdown = append(breakdown, BreakdownEntry{
			Item:   r.label,
			Points: -points,
			Passed: passed,
		})
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, breakdown
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
