package extract

import (
	"net/url"
	"regexp"
	"strings"
)

// ExternalResource is a third-party asset loaded by the page.
type ExternalResource struct {
	URL      string `json:"url"`
	Provider string `json:"provider"`
}

// ExternalResources groups third-party assets by kind.
type ExternalResources struct {
	Scripts []ExternalResource `json:"scripts"`
	Fonts   []ExternalResource `json:"fonts"`
	Iframes []ExternalResource `json:"iframes"`
}

const (
	maxExternalScripts = 30
	maxExternalFonts   = 10
	maxExternalIframes = 10
)

var (
	scriptSrcPattern = regexp.MustCompile(`(?i)<script[^>]+src\s*=\s*["']([^"']+)["']`)
	linkHrefPattern  = regexp.MustCompile(`(?i)<link[^>]+href\s*=\s*["']([^"']+)["'][^>]*>`)
	iframeSrcPattern = regexp.MustCompile(`(?i)<iframe[^>]+src\s*=\s*["']([^"']+)["']`)
	linkTagPattern   = regexp.MustCompile(`(?i)<link[^>]*>`)
)

// providerKeywords maps hostname substrings to human-readable provider names.
var providerKeywords = []struct {
	Keyword  string
	Provider string
}{
	{"googleapis.com", "Google"},
	{"gstatic.com", "Google"},
	{"googletagmanager", "Google Tag Manager"},
	{"google-analytics", "Google Analytics"},
	{"googlesyndication", "Google Ads"},
	{"doubleclick", "Google Ads"},
	{"youtube.com", "YouTube"},
	{"ytimg.com", "YouTube"},
	{"facebook", "Facebook"},
	{"fbcdn", "Facebook"},
	{"cloudflare", "Cloudflare"},
	{"cloudfront.net", "Amazon CloudFront"},
	{"amazonaws.com", "Amazon Web Services"},
	{"jsdelivr.net", "jsDelivr"},
	{"unpkg.com", "unpkg"},
	{"cdnjs", "cdnjs"},
	{"jquery.com", "jQuery"},
	{"bootstrapcdn", "Bootstrap CDN"},
	{"typekit", "Adobe Fonts"},
	{"fonts.com", "Monotype Fonts"},
	{"hotjar", "Hotjar"},
	{"intercom", "Intercom"},
	{"hubspot", "HubSpot"},
	{"stripe.com", "Stripe"},
	{"paypal", "PayPal"},
	{"vimeo", "Vimeo"},
	{"twitter", "Twitter/X"},
	{"linkedin", "LinkedIn"},
	{"tiktok", "TikTok"},
}

// ProviderName resolves a resource URL to a readable provider name, falling
// back to the registrable part of the hostname.
func ProviderName(rawURL string) string {
	lower := strings.ToLower(rawURL)
	for _, entry := range providerKeywords {
		if strings.Contains(lower, entry.Keyword) {
			return entry.Provider
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "Unknown"
	}
	parts := strings.Split(u.Hostname(), ".")
	if len(parts) >= 2 {
		return parts[len(parts)-2] + "." + parts[len(parts)-1]
	}
	return u.Hostname()
}

func isExternal(rawURL, baseDomain string) bool {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return false
	}
	return !strings.Contains(rawURL, baseDomain)
}

func looksLikeFont(tag, href string) bool {
	lower := strings.ToLower(tag)
	hrefLower := strings.ToLower(href)
	return strings.Contains(lower, "font") ||
		strings.Contains(hrefLower, "font") ||
		strings.Contains(hrefLower, ".woff") ||
		strings.Contains(hrefLower, ".ttf")
}

// ExtractExternalResources collects scripts, font stylesheets and iframes
// served from hosts other than baseDomain. Result lists are capped.
func ExtractExternalResources(html, baseDomain string) ExternalResources {
	res := ExternalResources{
		Scripts: make([]ExternalResource, 0),
		Fonts:   make([]ExternalResource, 0),
		Iframes: make([]ExternalResource, 0),
	}
	seen := make(map[string]struct{})

	for _, match := range scriptSrcPattern.FindAllStringSubmatch(html, -1) {
		src := match[1]
		if !isExternal(src, baseDomain) {
			continue
		}
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}
		res.Scripts = append(res.Scripts, ExternalResource{URL: src, Provider: ProviderName(src)})
		if len(res.Scripts) >= maxExternalScripts {
			break
		}
	}

	for _, tag := range linkTagPattern.FindAllString(html, -1) {
		hrefMatch := linkHrefPattern.FindStringSubmatch(tag)
		if hrefMatch == nil {
			continue
		}
		href := hrefMatch[1]
		if !isExternal(href, baseDomain) || !looksLikeFont(tag, href) {
			continue
		}
		if _, ok := seen[href]; ok {
			continue
		}
		seen[href] = struct{}{}
		res.Fonts = append(res.Fonts, ExternalResource{URL: href, Provider: ProviderName(href)})
		if len(res.Fonts) >= maxExternalFonts {
			break
		}
	}

	for _, match := range iframeSrcPattern.FindAllStringSubmatch(html, -1) {
		src := match[1]
		if !isExternal(src, baseDomain) {
			continue
		}
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}
		res.Iframes = append(res.Iframes, ExternalResource{URL: src, Provider: ProviderName(src)})
		if len(res.Iframes) >= maxExternalIframes {
			break
		}
	}

	return res
}
