package extract

import (
	"regexp"
	"strings"
)

const maxExposedEmails = 20

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// placeholderDomains are example/demo domains that do not expose anyone.
var placeholderDomains = []string{
	"example.com",
	"example.org",
	"domain.com",
	"email.com",
	"yourdomain.com",
	"yoursite.com",
	"sentry.io",
	"wixpress.com",
	"schema.org",
}

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}

// ExtractExposedEmails scans the document for third-party email addresses.
// Addresses on the site's own domain are legitimate contact details and are
// excluded, as are placeholder domains and image filenames that happen to
// contain an '@'.
func ExtractExposedEmails(html, baseDomain string) []string {
	matches := emailPattern.FindAllString(html, -1)
	exposed := make([]string, 0)
	seen := make(map[string]struct{})

	baseDomain = strings.ToLower(strings.TrimPrefix(baseDomain, "www."))

	for _, raw := range matches {
		email := strings.ToLower(raw)
		if _, ok := seen[email]; ok {
			continue
		}

		at := strings.LastIndex(email, "@")
		if at < 0 {
			continue
		}
		local, domain := email[:at], email[at+1:]

		// Same-domain addresses are intentional contact emails.
		if domain == baseDomain || strings.HasSuffix(domain, "."+baseDomain) {
			continue
		}
		if len(local) < 3 {
			continue
		}

		skip := false
		for _, placeholder := range placeholderDomains {
			if strings.HasSuffix(domain, placeholder) {
				skip = true
				break
			}
		}
		for _, ext := range imageExtensions {
			if strings.HasSuffix(email, ext) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		seen[email] = struct{}{}
		exposed = append(exposed, email)
		if len(exposed) >= maxExposedEmails {
			break
		}
	}
	return exposed
}
