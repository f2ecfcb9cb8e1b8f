// Package analysis contains the deep-analysis modules invoked by the audit
// engine. The engine treats every module as a black box behind the Analyzers
// bundle: each call is best-effort, and a failing module degrades to its
// zero result instead of aborting the scan.
package analysis

import (
	"context"
	"net/http"

	"github.com/privacycheck/privacycheck-cli/internal/extract"
)

// Analyzers bundles the module entry points consumed by the audit engine.
// Tests substitute fixture functions to keep scoring deterministic.
type Analyzers struct {
	ConsentBanner   func(html, setCookieHeader string) (*ConsentResult, error)
	PrivacyPolicy   func(html, policyHTML, baseURL string) (*PolicyResult, error)
	DarkPatterns    func(html string) (*DarkPatternsResult, error)
	OptInForms      func(html string) (*OptInFormsResult, error)
	CookieLifespans func(cookies []extract.Cookie) (*CookieLifespanResult, error)
	Fingerprinting  func(html string) (*FingerprintingResult, error)
	SecurityHeaders func(headers http.Header) (*HeaderScoreResult, error)
	StorageUsage    func(html string) (*StorageResult, error)
	MixedContent    func(html, pageURL string) (*MixedContentResult, error)
	FormSecurity    func(html, pageURL string) (*FormSecurityResult, error)
	Accessibility   func(html string) (*AccessibilityResult, error)
	VendorRisk      func(nameOrURL string) *VendorRisk
	RiskPrediction  func(input RiskInput) (*RiskPrediction, error)
	AttackSurface   func(ctx context.Context, baseURL, html string) (*AttackSurfaceResult, error)
}

// NewDefault wires the built-in module implementations.
func NewDefault() Analyzers {
	surface := NewSurfaceScanner(nil)
	return Analyzers{
		ConsentBanner:   AnalyzeConsentBanner,
		PrivacyPolicy:   AnalyzePrivacyPolicy,
		DarkPatterns:    DetectDarkPatterns,
		OptInForms:      AnalyzeOptInForms,
		CookieLifespans: AnalyzeCookieLifespans,
		Fingerprinting:  DetectFingerprinting,
		SecurityHeaders: ScoreSecurityHeaders,
		StorageUsage:    AnalyzeStorageUsage,
		MixedContent:    DetectMixedContent,
		FormSecurity:    AnalyzeFormSecurity,
		Accessibility:   AnalyzeAccessibility,
		VendorRisk:      GetVendorRisk,
		RiskPrediction:  CalculateRiskPrediction,
		AttackSurface:   surface.Scan,
	}
}

// ConsentResult describes how the cookie consent banner behaves.
type ConsentResult struct {
	Detected        bool     `json:"detected"`
	Provider        string   `json:"provider,omitempty"`
	HasAcceptButton bool     `json:"hasAcceptButton"`
	HasRejectButton bool     `json:"hasRejectButton"`
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
}

// PolicyResult describes privacy-policy completeness.
type PolicyResult struct {
	OverallScore    int      `json:"overallScore"`
	MissingElements []string `json:"missingElements"`
}

// DarkPatternsResult counts manipulative UI patterns by severity.
type DarkPatternsResult struct {
	Detected   bool     `json:"detected"`
	TotalCount int      `json:"totalCount"`
	Critical   int      `json:"critical"`
	High       int      `json:"high"`
	Medium     int      `json:"medium"`
	Low        int      `json:"low"`
	Findings   []string `json:"findings"`
}

// OptInFormsResult counts consent defects in sign-up forms.
type OptInFormsResult struct {
	TotalIssues         int `json:"totalIssues"`
	PreCheckedCount     int `json:"preCheckedCount"`
	HiddenConsentCount  int `json:"hiddenConsentCount"`
	BundledConsentCount int `json:"bundledConsentCount"`
}

// CookieLifespanResult flags cookies with excessive lifetimes.
type CookieLifespanResult struct {
	IssuesCount int      `json:"issuesCount"`
	Issues      []string `json:"issues"`
}

// FingerprintingResult describes browser-fingerprinting evidence.
type FingerprintingResult struct {
	Detected  bool     `json:"detected"`
	RiskLevel string   `json:"riskLevel"`
	Critical  int      `json:"critical"`
	High      int      `json:"high"`
	Medium    int      `json:"medium"`
	Libraries []string `json:"libraries,omitempty"`
}

// HeaderScoreResult is the weighted security-header sub-score (0-100).
type HeaderScoreResult struct {
	Score    int      `json:"score"`
	Missing  []string `json:"missing"`
	Warnings []string `json:"warnings"`
}

// StorageIssue is one risky web-storage key.
type StorageIssue struct {
	Key      string `json:"key"`
	Storage  string `json:"storage"` // localStorage or sessionStorage
	Category string `json:"category"`
	Risk     string `json:"risk"`
}

// StorageResult lists risky localStorage/sessionStorage usage.
type StorageResult struct {
	Issues []StorageIssue `json:"issues"`
}

// MixedContentResult counts insecure subresources on a secure page.
type MixedContentResult struct {
	BlockedCount int `json:"blockedCount"`
	WarningCount int `json:"warningCount"`
	TotalIssues  int `json:"totalIssues"`
}

// FormSecurityResult describes insecure form handling.
type FormSecurityResult struct {
	Compliant   bool     `json:"compliant"`
	IssuesCount int      `json:"issuesCount"`
	Critical    int      `json:"critical"`
	High        int      `json:"high"`
	Issues      []string `json:"issues"`
}

// AccessibilityResult counts WCAG violations by impact.
type AccessibilityResult struct {
	CriticalCount int `json:"criticalCount"`
	SeriousCount  int `json:"seriousCount"`
	ModerateCount int `json:"moderateCount"`
	TotalIssues   int `json:"totalIssues"`
}

// VendorRisk is a third-party service's privacy risk rating.
type VendorRisk struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	RiskScore     int      `json:"riskScore"` // 1 (low) to 10 (high)
	Jurisdiction  string   `json:"jurisdiction"`
	DataTransfer  string   `json:"dataTransfer"`
	Concerns      []string `json:"concerns"`
	GDPRCompliant bool     `json:"gdprCompliant"`
}

// RiskFactor is one contributor to the fine estimate.
type RiskFactor struct {
	Issue            string `json:"issue"`
	Severity         string `json:"severity"`
	FineContribution int64  `json:"fineContribution"`
	GDPRArticle      string `json:"gdprArticle,omitempty"`
	Description      string `json:"description"`
}

// RiskInput is the subset of audit facts the risk predictor consumes.
type RiskInput struct {
	Score             int
	ConsentBanner     bool
	PrivacyPolicy     bool
	HTTPS             bool
	CookieCount       int
	UndeclaredCookies int
	TrackerCount      int
	HighRiskVendors   int
	BreachCount       int
	ExposedEmails     int
}

// RiskPrediction estimates regulatory fine exposure.
type RiskPrediction struct {
	MinFine        int64        `json:"minFine"`
	MaxFine        int64        `json:"maxFine"`
	RiskLevel      string       `json:"riskLevel"`
	Probability    int          `json:"probability"`
	Factors        []RiskFactor `json:"factors"`
	Recommendation string       `json:"recommendation"`
}

// AttackSurfaceFinding is one exposed path or leaked credential indicator.
type AttackSurfaceFinding struct {
	Path     string `json:"path,omitempty"`
	Title    string `json:"title"`
	Severity string `json:"severity"`
}

// AttackSurfaceResult lists exposure findings from the safe-path probe.
type AttackSurfaceResult struct {
	Findings []AttackSurfaceFinding `json:"findings"`
}
