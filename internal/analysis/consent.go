package analysis

import "strings"

// Known consent management platforms and the markers that reveal them.
var consentProviders = []struct {
	Name     string
	Patterns []string
}{
	{"Cookiebot", []string{"cookiebot.com", "cookieconsent"}},
	{"OneTrust", []string{"onetrust.com", "onetrust", "optanon"}},
	{"TrustArc", []string{"trustarc.com", "consent.trustarc"}},
	{"Quantcast", []string{"quantcast.com", "quantcast_choice", "__cmpgdprapplies"}},
	{"Didomi", []string{"didomi.io", "didomi_"}},
	{"Usercentrics", []string{"usercentrics.eu", "usercentrics"}},
	{"CookieYes", []string{"cookieyes.com", "cky-consent"}},
	{"Termly", []string{"termly.io", "termly_"}},
	{"Axeptio", []string{"axeptio.eu", "axeptio"}},
	{"Osano", []string{"osano.com", "osano"}},
	{"Iubenda", []string{"iubenda.com", "iubenda"}},
	{"Complianz", []string{"complianz", "cmplz"}},
}

// Multilingual button labels. A compliant banner offers rejecting as easily
// as accepting.
var rejectLabels = []string{
	"reject all", "reject", "decline", "deny", "refuse", "no thanks",
	"only necessary", "necessary only", "essential only", "only essential",
	"tout refuser", "refuser", "continuer sans accepter",
	"alle ablehnen", "ablehnen", "nur notwendige",
	"rechazar todo", "rechazar", "solo necesarias",
	"rifiuta tutto", "rifiuta",
	"alles weigeren", "weigeren",
	"rejeitar tudo", "rejeitar",
}

var acceptLabels = []string{
	"accept all", "accept", "agree", "allow all", "i agree", "accept cookies",
	"tout accepter", "accepter", "j'accepte",
	"alle akzeptieren", "akzeptieren", "zustimmen",
	"aceptar todo", "aceptar",
	"accetta tutto", "accetta",
	"alles accepteren", "accepteren",
	"aceitar tudo", "aceitar",
}

var bannerMarkers = []string{
	"cookie-consent", "cookie-banner", "cookieconsent", "cookie-notice",
	"gdpr-consent", "consent-banner", "cookie-popup", "cc-window", "cc-banner",
	"accept cookies", "cookie preferences", "manage cookies",
	"onetrust", "cookiebot", "quantcast", "trustarc",
}

// Cookies that indicate tracking started before any consent was given.
var preConsentTrackingCookies = []string{"_ga", "_gid", "_fbp", "_gcl_au", "hubspotutk", "_hj"}

// AnalyzeConsentBanner scores the consent banner implementation 0-100.
func AnalyzeConsentBanner(html, setCookieHeader string) (*ConsentResult, error) {
	htmlLower := strings.ToLower(html)
	result := &ConsentResult{Issues: []string{}}

	for _, marker := range bannerMarkers {
		if strings.Contains(htmlLower, marker) {
			result.Detected = true
			break
		}
	}
	if !result.Detected {
		result.Score = 0
		result.Issues = append(result.Issues, "No cookie consent banner detected")
		return result, nil
	}

	for _, provider := range consentProviders {
		for _, pattern := range provider.Patterns {
			if strings.Contains(htmlLower, pattern) {
				result.Provider = provider.Name
				break
			}
		}
		if result.Provider != "" {
			break
		}
	}

	score := 100
	for _, label := range acceptLabels {
		if strings.Contains(htmlLower, label) {
			result.HasAcceptButton = true
			break
		}
	}
	for _, label := range rejectLabels {
		if strings.Contains(htmlLower, label) {
			result.HasRejectButton = true
			break
		}
	}

	if !result.HasRejectButton {
		score -= 30
		result.Issues = append(result.Issues, "No reject option found; rejecting must be as easy as accepting")
	}
	if !result.HasAcceptButton {
		score -= 10
		result.Issues = append(result.Issues, "No recognizable accept button")
	}

	// Tracking cookies set on the very first response arrived before any
	// consent could have been given.
	setCookieLower := strings.ToLower(setCookieHeader)
	for _, name := range preConsentTrackingCookies {
		if strings.Contains(setCookieLower, name+"=") {
			score -= 25
			result.Issues = append(result.Issues, "Tracking cookie "+name+" set before consent")
			break
		}
	}

	if score < 0 {
		score = 0
	}
	result.Score = score
	return result, nil
}
