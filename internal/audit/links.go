package audit

import (
	"net/url"
	"regexp"
	"strings"
)

const maxLinksPerPage = 10

var hrefPattern = regexp.MustCompile(`href=["']([^"']+)["']`)

var assetPathPattern = regexp.MustCompile(`\.(jpg|jpeg|png|gif|svg|pdf|doc|docx|xls|xlsx|zip|css|js)$`)

// ExtractInternalLinks pulls same-origin page URLs out of anchor hrefs.
// Matching is regex-based so malformed markup degrades to fewer links, never
// to an error. URLs are normalized to origin+path (query and fragment
// stripped), deduplicated against the output and the base URL itself, and
// capped at maxLinksPerPage per call.
func ExtractInternalLinks(html string, base *url.URL) []string {
	links := make([]string, 0, maxLinksPerPage)
	seen := make(map[string]struct{})
	baseStr := base.String()

	for _, match := range hrefPattern.FindAllStringSubmatch(html, -1) {
		href := match[1]

		if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") ||
			strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "javascript:") {
			continue
		}

		var resolved *url.URL
		var err error
		if strings.HasPrefix(href, "http") {
			resolved, err = url.Parse(href)
			if err != nil {
				continue
			}
			if resolved.Hostname() != base.Hostname() {
				continue
			}
		} else {
			ref, parseErr := url.Parse(href)
			if parseErr != nil {
				continue
			}
			resolved = base.ResolveReference(ref)
		}

		if assetPathPattern.MatchString(strings.ToLower(resolved.Path)) {
			continue
		}

		clean := resolved.Scheme + "://" + resolved.Host + resolved.Path
		if clean == baseStr {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		links = append(links, clean)

		if len(links) >= maxLinksPerPage {
			break
		}
	}
	return links
}
