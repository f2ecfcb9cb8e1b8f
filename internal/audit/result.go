package audit

import (
	"time"

	"github.com/privacycheck/privacycheck-cli/internal/analysis"
	"github.com/privacycheck/privacycheck-cli/internal/breach"
	"github.com/privacycheck/privacycheck-cli/internal/dnscheck"
	"github.com/privacycheck/privacycheck-cli/internal/extract"
	"github.com/privacycheck/privacycheck-cli/internal/score"
)

// SSLInfo summarizes transport security of the main page.
type SSLInfo struct {
	Valid      bool `json:"valid"`
	HSTS       bool `json:"hsts"`
	HSTSMaxAge int  `json:"hstsMaxAge"`
}

// CookieIssues groups the deduplicated cookie inventory with its
// undeclared-cookie count.
type CookieIssues struct {
	Count      int              `json:"count"`
	Undeclared int              `json:"undeclared"`
	List       []extract.Cookie `json:"list"`
}

// AnalysisReport carries the deep-analysis module outputs. A nil field means
// the module failed or was skipped; consumers must tolerate that.
type AnalysisReport struct {
	Consent        *analysis.ConsentResult        `json:"consentBanner,omitempty"`
	Policy         *analysis.PolicyResult         `json:"privacyPolicy,omitempty"`
	DarkPatterns   *analysis.DarkPatternsResult   `json:"darkPatterns,omitempty"`
	OptInForms     *analysis.OptInFormsResult     `json:"optInForms,omitempty"`
	Lifespans      *analysis.CookieLifespanResult `json:"cookieLifespans,omitempty"`
	Fingerprinting *analysis.FingerprintingResult `json:"fingerprinting,omitempty"`
	HeaderScore    *analysis.HeaderScoreResult    `json:"securityHeaderScore,omitempty"`
	Storage        *analysis.StorageResult        `json:"webStorage,omitempty"`
	MixedContent   *analysis.MixedContentResult   `json:"mixedContent,omitempty"`
	FormSecurity   *analysis.FormSecurityResult   `json:"formSecurity,omitempty"`
	Accessibility  *analysis.AccessibilityResult  `json:"accessibility,omitempty"`
}

// AuditResult is the complete outcome of one scan, serialized as the saved
// result file and rendered by the report command.
type AuditResult struct {
	ScanID       string    `json:"scanId"`
	URL          string    `json:"url"`
	Domain       string    `json:"domain"`
	Tier         Tier      `json:"tier"`
	Timestamp    time.Time `json:"timestamp"`
	Score        int       `json:"score"`
	PagesScanned int       `json:"pagesScanned"`

	Pages             []PageRecord               `json:"pages"`
	Cookies           CookieIssues               `json:"cookies"`
	Trackers          []string                   `json:"trackers"`
	SocialTrackers    []extract.SocialTracker    `json:"socialTrackers"`
	ExternalResources extract.ExternalResources  `json:"externalResources"`
	ExposedEmails     []string                   `json:"exposedEmails"`
	SecurityHeaders   extract.SecurityHeaders    `json:"securityHeaders"`
	SSL               SSLInfo                    `json:"ssl"`
	EmailAuth         dnscheck.EmailAuth         `json:"emailAuth"`
	Breaches          []breach.Breach            `json:"breaches"`
	AgeVerification   bool                       `json:"ageVerification"`
	Regulations       []string                   `json:"regulations"`
	VendorRisks       []analysis.VendorRisk      `json:"vendorRisks"`
	ScoreBreakdown    []score.BreakdownEntry     `json:"scoreBreakdown"`
	Analysis          AnalysisReport             `json:"analysis"`
	RiskPrediction    *analysis.RiskPrediction   `json:"riskPrediction,omitempty"`
	AttackSurface     *analysis.AttackSurfaceResult `json:"attackSurface,omitempty"`
}
