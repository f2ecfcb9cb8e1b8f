package analysis

import (
	"regexp"
	"strings"
)

var insecureRefPattern = regexp.MustCompile(`(?i)<(script|iframe|link|img|audio|video|form)[^>]+(?:src|href|action)\s*=\s*["'](http://[^"']+)["']`)

// Tags whose insecure loads browsers block outright; the rest merely warn.
var blockedTags = map[string]struct{}{
	"script": {},
	"iframe": {},
	"link":   {},
}

// DetectMixedContent counts http:// subresources referenced from a page
// served over https. Plain-http pages have no mixed content by definition.
func DetectMixedContent(html, pageURL string) (*MixedContentResult, error) {
	result := &MixedContentResult{}
	if !strings.HasPrefix(pageURL, "https://") {
		return result, nil
	}

	for _, match := range insecureRefPattern.FindAllStringSubmatch(html, -1) {
		tag := strings.ToLower(match[1])
		if _, blocked := blockedTags[tag]; blocked {
			result.BlockedCount++
		} else {
			result.WarningCount++
		}
	}
	result.TotalIssues = result.BlockedCount + result.WarningCount
	return result, nil
}
