package analysis

import (
	"strings"

	"github.com/privacycheck/privacycheck-cli/internal/extract"
)

// longLivedCookiePrefixes are tracking cookies whose default lifetime exceeds
// the 13-month ceiling recommended by EU data protection authorities.
var longLivedCookiePrefixes = []string{
	"_ga", "_gcl_au", "amplitude_id", "hubspotutk", "__hstc", "li_gc", "_clck",
}

// AnalyzeCookieLifespans flags non-essential cookies with excessive
// lifetimes. Only tracking categories count; necessary cookies may
// legitimately persist.
func AnalyzeCookieLifespans(cookies []extract.Cookie) (*CookieLifespanResult, error) {
	result := &CookieLifespanResult{Issues: []string{}}

	for _, cookie := range cookies {
		if cookie.Category == extract.CategoryNecessary {
			continue
		}
		for _, prefix := range longLivedCookiePrefixes {
			if strings.HasPrefix(cookie.Name, prefix) {
				result.IssuesCount++
				result.Issues = append(result.Issues, cookie.Name+" persists longer than 13 months")
				break
			}
		}
	}
	return result, nil
}
