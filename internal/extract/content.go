package extract

import (
	"regexp"
	"strings"
)

var consentPatterns = []string{
	"cookie-consent", "cookie-banner", "cookieconsent", "cookie-notice",
	"gdpr-consent", "consent-banner", "privacy-notice", "cookie-popup",
	"onetrust", "cookiebot", "quantcast", "trustarc", "cc-window", "cc-banner",
	"accept cookies", "cookie preferences", "manage cookies", "cookie settings",
}

var privacyPatterns = []string{
	"/privacy", "/privacy-policy", "/privacypolicy", "/datenschutz",
	"/politique-de-confidentialite", "/politica-de-privacidad",
	"privacy policy", "data protection", "datenschutzerklärung",
}

var legalPatterns = []string{
	"/legal", "/terms", "/tos", "/terms-of-service", "/impressum", "/imprint",
	"/mentions-legales", "terms of service", "terms and conditions", "mentions légales",
}

var dpoPatterns = []string{
	"dpo@", "privacy@", "gdpr@", "dataprotection@", "data protection officer",
	"délégué à la protection", "datenschutzbeauftragter",
}

var deletePatterns = []string{
	"delete my data", "right to erasure", "data deletion", "delete account",
	"remove my data", "right to be forgotten", "data subject request", "dsar",
}

var optOutPatterns = []string{
	"opt-out", "optout", "unsubscribe", "manage preferences", "email preferences",
	"withdraw consent", "communication preferences",
}

var agePatterns = []string{
	"age verification", "age gate", "18+", "21+", "confirm your age", "must be 18",
}

var cookiePolicyPatterns = []string{
	"/cookie-policy", "/cookies", "cookie policy", "use of cookies", "we use cookies",
}

// ContentFlags captures the compliance elements inferred from page text.
type ContentFlags struct {
	ConsentBanner   bool
	PrivacyPolicy   bool
	LegalMentions   bool
	DPOContact      bool
	DataDeleteLink  bool
	SecureForms     bool
	HasForms        bool
	OptOutMechanism bool
	AgeVerification bool
	CookiePolicy    bool
	GermanKeywords  bool
}

func anyPattern(htmlLower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(htmlLower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// DetectContentFlags scans the combined document text for compliance
// elements. Matching is keyword-based and intentionally forgiving of broken
// markup.
func DetectContentFlags(html string) ContentFlags {
	htmlLower := strings.ToLower(html)
	return ContentFlags{
		ConsentBanner:  anyPattern(htmlLower, consentPatterns),
		PrivacyPolicy:  anyPattern(htmlLower, privacyPatterns),
		LegalMentions:  anyPattern(htmlLower, legalPatterns),
		DPOContact:     anyPattern(htmlLower, dpoPatterns),
		DataDeleteLink: anyPattern(htmlLower, deletePatterns),
		SecureForms: strings.Contains(htmlLower, "checkbox") &&
			(strings.Contains(htmlLower, "consent") || strings.Contains(htmlLower, "agree")),
		HasForms:        strings.Contains(htmlLower, "<form"),
		OptOutMechanism: anyPattern(htmlLower, optOutPatterns),
		AgeVerification: anyPattern(htmlLower, agePatterns),
		CookiePolicy:    anyPattern(htmlLower, cookiePolicyPatterns),
		GermanKeywords:  strings.Contains(htmlLower, "datenschutz"),
	}
}

var titlePattern = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)

// ExtractTitle returns the page title, truncated to 100 characters.
func ExtractTitle(html string) string {
	m := titlePattern.FindStringSubmatch(html)
	if m == nil {
		return "Untitled"
	}
	title := strings.TrimSpace(m[1])
	if len(title) > 100 {
		title = title[:100]
	}
	return title
}
