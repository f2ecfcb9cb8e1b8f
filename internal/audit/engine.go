package audit

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/privacycheck/privacycheck-cli/internal/analysis"
	"github.com/privacycheck/privacycheck-cli/internal/breach"
	"github.com/privacycheck/privacycheck-cli/internal/dnscheck"
	"github.com/privacycheck/privacycheck-cli/internal/extract"
	"github.com/privacycheck/privacycheck-cli/internal/regulation"
	"github.com/privacycheck/privacycheck-cli/internal/score"
	consts "github.com/privacycheck/privacycheck-cli/internal/shared/constants"
)

// highRiskVendorThreshold marks vendors counted against the score.
const highRiskVendorThreshold = 8

// Engine runs a full audit: crawl, extract, analyze, score. External
// lookups and analysis modules are injected so tests can pin their output.
type Engine struct {
	Fetcher   *Fetcher
	Analyzers analysis.Analyzers
	EmailAuth func(ctx context.Context, domain string) dnscheck.EmailAuth
	Breaches  func(ctx context.Context, domain string) []breach.Breach
	RateLimit int
	Logger    *zap.SugaredLogger
}

// NewEngine wires the default collaborators.
func NewEngine(logger *zap.SugaredLogger) *Engine {
	dns := dnscheck.NewChecker("")
	breaches := breach.NewChecker("")
	return &Engine{
		Fetcher:   NewFetcher(0),
		Analyzers: analysis.NewDefault(),
		EmailAuth: dns.Check,
		Breaches:  breaches.Check,
		RateLimit: consts.DefaultRateLimit,
		Logger:    logger,
	}
}

// Run audits rawURL under the given tier's crawl limits. Only an invalid
// target, an unreachable main page or a context timeout abort the audit;
// every other collaborator failure degrades to missing data.
func (e *Engine) Run(ctx context.Context, rawURL string, tier Tier) (*AuditResult, error) {
	target, err := ParseScanTarget(rawURL)
	if err != nil {
		return nil, err
	}

	crawler := &Crawler{
		Fetcher:   e.Fetcher,
		Limits:    tier.Limits(),
		RateLimit: e.RateLimit,
		Logger:    e.Logger,
	}
	crawl, err := crawler.Crawl(ctx, target)
	if err != nil {
		return nil, err
	}

	flags := extract.DetectContentFlags(crawl.CombinedHTML)
	resources := extract.ExtractExternalResources(crawl.CombinedHTML, target.Domain)
	emails := extract.ExtractExposedEmails(crawl.CombinedHTML, target.Domain)
	social := extract.DetectSocialTrackers(crawl.CombinedHTML)
	headers := extract.CheckSecurityHeaders(crawl.MainHeaders)

	// The dedicated policy page gets analyzed when one is linked; the
	// fetch is best-effort and falls back to the combined document.
	policyHTML := ""
	if policyURL := findPolicyURL(crawl.CombinedHTML, target); policyURL != "" {
		if page := e.Fetcher.Fetch(ctx, policyURL); page != nil {
			policyHTML = page.HTML
		} else if e.Logger != nil {
			e.Logger.Debugf("policy page unreachable: %s", policyURL)
		}
	}

	var auth dnscheck.EmailAuth
	var breaches []breach.Breach
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		auth = e.EmailAuth(ctx, target.Domain)
	}()
	go func() {
		defer wg.Done()
		breaches = e.Breaches(ctx, target.Domain)
	}()
	wg.Wait()

	report := e.runAnalysis(crawl, policyHTML, target)

	vendors := make([]analysis.VendorRisk, 0)
	highRisk := 0
	for _, tracker := range crawl.Trackers {
		v := e.Analyzers.VendorRisk(tracker)
		if v == nil {
			continue
		}
		vendors = append(vendors, *v)
		if v.RiskScore >= highRiskVendorThreshold {
			highRisk++
		}
	}

	undeclared := countUndeclared(crawl.Cookies, flags.ConsentBanner)

	facts := score.Facts{
		HTTPS:             target.HTTPS && crawl.MainTLSValid,
		Flags:             flags,
		Cookies:           crawl.Cookies,
		UndeclaredCookies: undeclared,
		TrackerCount:      len(crawl.Trackers),
		SPF:               auth.SPF,
		DMARC:             auth.DMARC,
		ExposedEmailCount: len(emails),
		HighRiskVendors:   highRisk,
		BreachCount:       len(breaches),
		Consent:           report.Consent,
		Policy:            report.Policy,
		DarkPatterns:      report.DarkPatterns,
		OptInForms:        report.OptInForms,
		Lifespans:         report.Lifespans,
		Fingerprinting:    report.Fingerprinting,
		HeaderScore:       report.HeaderScore,
		Storage:           report.Storage,
		MixedContent:      report.MixedContent,
		FormSecurity:      report.FormSecurity,
		Accessibility:     report.Accessibility,
	}
	total, breakdown := score.Compute(facts)

	result := &AuditResult{
		ScanID:            uuid.NewString(),
		URL:               target.URL.String(),
		Domain:            target.Domain,
		Tier:              tier,
		Timestamp:         time.Now().UTC(),
		Score:             total,
		PagesScanned:      len(crawl.Pages),
		Pages:             crawl.Pages,
		Cookies:           CookieIssues{Count: len(crawl.Cookies), Undeclared: undeclared, List: crawl.Cookies},
		Trackers:          crawl.Trackers,
		SocialTrackers:    social,
		ExternalResources: resources,
		ExposedEmails:     emails,
		SecurityHeaders:   headers,
		SSL:               SSLInfo{Valid: target.HTTPS && crawl.MainTLSValid, HSTS: headers.StrictTransportSecurity, HSTSMaxAge: headers.HSTSMaxAge},
		EmailAuth:         auth,
		Breaches:          breaches,
		AgeVerification:   flags.AgeVerification,
		Regulations:       regulation.Applicable(target.Domain, flags.GermanKeywords),
		VendorRisks:       vendors,
		ScoreBreakdown:    breakdown,
		Analysis:          report,
	}

	if e.Analyzers.RiskPrediction != nil {
		prediction, err := e.Analyzers.RiskPrediction(analysis.RiskInput{
			Score:             total,
			ConsentBanner:     flags.ConsentBanner,
			PrivacyPolicy:     flags.PrivacyPolicy,
			HTTPS:             facts.HTTPS,
			CookieCount:       len(crawl.Cookies),
			UndeclaredCookies: undeclared,
			TrackerCount:      len(crawl.Trackers),
			HighRiskVendors:   highRisk,
			BreachCount:       len(breaches),
			ExposedEmails:     len(emails),
		})
		if err != nil {
			e.warn("risk prediction", err)
		} else {
			result.RiskPrediction = prediction
		}
	}
	if e.Analyzers.AttackSurface != nil {
		surface, err := e.Analyzers.AttackSurface(ctx, target.URL.Scheme+"://"+target.URL.Host, crawl.CombinedHTML)
		if err != nil {
			e.warn("attack surface", err)
		} else {
			result.AttackSurface = surface
		}
	}

	return result, nil
}

// runAnalysis calls every module, logging and dropping individual failures.
func (e *Engine) runAnalysis(crawl *CrawlResult, policyHTML string, target *ScanTarget) AnalysisReport {
	var report AnalysisReport
	html := crawl.CombinedHTML
	pageURL := target.URL.String()

	var err error
	if report.Consent, err = e.Analyzers.ConsentBanner(html, crawl.MainSetCookie); err != nil {
		e.warn("consent banner", err)
	}
	if report.Policy, err = e.Analyzers.PrivacyPolicy(html, policyHTML, pageURL); err != nil {
		e.warn("privacy policy", err)
	}
	if report.DarkPatterns, err = e.Analyzers.DarkPatterns(html); err != nil {
		e.warn("dark patterns", err)
	}
	if report.OptInForms, err = e.Analyzers.OptInForms(html); err != nil {
		e.warn("opt-in forms", err)
	}
	if report.Lifespans, err = e.Analyzers.CookieLifespans(crawl.Cookies); err != nil {
		e.warn("cookie lifespans", err)
	}
	if report.Fingerprinting, err = e.Analyzers.Fingerprinting(html); err != nil {
		e.warn("fingerprinting", err)
	}
	if report.HeaderScore, err = e.Analyzers.SecurityHeaders(crawl.MainHeaders); err != nil {
		e.warn("security headers", err)
	}
	if report.Storage, err = e.Analyzers.StorageUsage(html); err != nil {
		e.warn("web storage", err)
	}
	if report.MixedContent, err = e.Analyzers.MixedContent(html, pageURL); err != nil {
		e.warn("mixed content", err)
	}
	if report.FormSecurity, err = e.Analyzers.FormSecurity(html, pageURL); err != nil {
		e.warn("form security", err)
	}
	if report.Accessibility, err = e.Analyzers.Accessibility(html); err != nil {
		e.warn("accessibility", err)
	}
	return report
}

func (e *Engine) warn(module string, err error) {
	if e.Logger != nil {
		e.Logger.Warnf("%s analysis failed: %v", module, err)
	}
}

// countUndeclared applies the declaration heuristic: with a consent banner
// present only unclassifiable cookies count as undeclared; without one,
// every non-essential cookie does.
func countUndeclared(cookies []extract.Cookie, hasBanner bool) int {
	count := 0
	for _, c := range cookies {
		if hasBanner {
			if c.Category == extract.CategoryUnknown {
				count++
			}
		} else if c.Category != extract.CategoryNecessary {
			count++
		}
	}
	return count
}

// findPolicyURL returns the first same-origin privacy policy link in the
// document, or "" when none is linked. It scans raw hrefs rather than the
// capped crawl-link list so footer links are not missed.
func findPolicyURL(html string, target *ScanTarget) string {
	for _, match := range hrefPattern.FindAllStringSubmatch(html, -1) {
		href := match[1]
		lower := strings.ToLower(href)
		if !strings.Contains(lower, "privacy") && !strings.Contains(lower, "datenschutz") {
			continue
		}
		if strings.HasPrefix(href, "http") {
			resolved, err := url.Parse(href)
			if err != nil || resolved.Hostname() != target.URL.Hostname() {
				continue
			}
			return resolved.String()
		}
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		return target.URL.ResolveReference(ref).String()
	}
	return ""
}
