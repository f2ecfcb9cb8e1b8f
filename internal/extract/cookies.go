package extract

import (
	"regexp"
	"strings"
)

// Cookie categories used throughout the audit.
const (
	CategoryNecessary   = "necessary"
	CategoryAnalytics   = "analytics"
	CategoryMarketing   = "marketing"
	CategoryPreferences = "preferences"
	CategoryUnknown     = "unknown"
)

// Cookie describes a single cookie found during a scan.
type Cookie struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
}

// knownCookies maps cookie name prefixes to their classification. Kept as an
// ordered slice so prefix matching and the whole-HTML scan are deterministic.
var knownCookies = []Cookie{
	{Name: "_ga", Category: CategoryAnalytics, Description: "Google Analytics - Distinguishes users", Provider: "Google"},
	{Name: "_gid", Category: CategoryAnalytics, Description: "Google Analytics - Distinguishes users (24h)", Provider: "Google"},
	{Name: "_gat", Category: CategoryAnalytics, Description: "Google Analytics - Throttle request rate", Provider: "Google"},
	{Name: "_gcl_au", Category: CategoryMarketing, Description: "Google Ads conversion tracking", Provider: "Google"},
	{Name: "_fbp", Category: CategoryMarketing, Description: "Facebook Pixel - Identifies browsers", Provider: "Facebook"},
	{Name: "_fbc", Category: CategoryMarketing, Description: "Facebook Click ID", Provider: "Facebook"},
	{Name: "fr", Category: CategoryMarketing, Description: "Facebook advertising cookie", Provider: "Facebook"},
	{Name: "_hjid", Category: CategoryAnalytics, Description: "Hotjar user ID", Provider: "Hotjar"},
	{Name: "_hjSessionUser", Category: CategoryAnalytics, Description: "Hotjar session user", Provider: "Hotjar"},
	{Name: "intercom-id", Category: CategoryPreferences, Description: "Intercom user identification", Provider: "Intercom"},
	{Name: "hubspotutk", Category: CategoryMarketing, Description: "HubSpot visitor tracking", Provider: "HubSpot"},
	{Name: "__hstc", Category: CategoryMarketing, Description: "HubSpot main tracking cookie", Provider: "HubSpot"},
	{Name: "__hssc", Category: CategoryMarketing, Description: "HubSpot session tracking", Provider: "HubSpot"},
	{Name: "_clck", Category: CategoryAnalytics, Description: "Microsoft Clarity user ID", Provider: "Microsoft"},
	{Name: "_clsk", Category: CategoryAnalytics, Description: "Microsoft Clarity session", Provider: "Microsoft"},
	{Name: "li_gc", Category: CategoryMarketing, Description: "LinkedIn guest consent", Provider: "LinkedIn"},
	{Name: "lidc", Category: CategoryMarketing, Description: "LinkedIn data center routing", Provider: "LinkedIn"},
	{Name: "mp_", Category: CategoryAnalytics, Description: "Mixpanel tracking", Provider: "Mixpanel"},
	{Name: "amplitude_id", Category: CategoryAnalytics, Description: "Amplitude user tracking", Provider: "Amplitude"},
	{Name: "ajs_user_id", Category: CategoryAnalytics, Description: "Segment user ID", Provider: "Segment"},
	{Name: "ajs_anonymous_id", Category: CategoryAnalytics, Description: "Segment anonymous ID", Provider: "Segment"},
	{Name: "PHPSESSID", Category: CategoryNecessary, Description: "PHP session identifier", Provider: "Website"},
	{Name: "JSESSIONID", Category: CategoryNecessary, Description: "Java session identifier", Provider: "Website"},
	{Name: "csrf_token", Category: CategoryNecessary, Description: "CSRF protection", Provider: "Website"},
	{Name: "_csrf", Category: CategoryNecessary, Description: "CSRF protection", Provider: "Website"},
	{Name: "session", Category: CategoryNecessary, Description: "Session management", Provider: "Website"},
	{Name: "auth_token", Category: CategoryNecessary, Description: "Authentication token", Provider: "Website"},
}

var inlineCookiePattern = regexp.MustCompile(`document\.cookie\s*=\s*["']([^"'=]+)=`)

// lookupKnownCookie returns the first known cookie whose name is a prefix of
// name. Prefix matching covers suffixed or versioned cookie names.
func lookupKnownCookie(name string) (Cookie, bool) {
	for _, known := range knownCookies {
		if strings.HasPrefix(name, known.Name) {
			return known, true
		}
	}
	return Cookie{}, false
}

// ExtractCookies merges cookies from the Set-Cookie header, inline
// document.cookie assignments in script text, and a whole-document scan for
// known cookie names. Names are deduplicated; the first source wins.
func ExtractCookies(html, setCookieHeader string) []Cookie {
	cookies := make([]Cookie, 0)
	found := make(map[string]struct{})

	add := func(c Cookie) {
		if _, ok := found[c.Name]; ok {
			return
		}
		found[c.Name] = struct{}{}
		cookies = append(cookies, c)
	}

	// Source 1: Set-Cookie response header. Multiple cookies arrive joined
	// with commas; the cookie name is everything before the first '=' or ';'.
	if setCookieHeader != "" {
		for _, part := range strings.Split(setCookieHeader, ",") {
			name := strings.TrimSpace(part)
			if i := strings.IndexAny(name, "=;"); i >= 0 {
				name = name[:i]
			}
			if name == "" {
				continue
			}
			if known, ok := lookupKnownCookie(name); ok {
				known.Name = name
				add(known)
			} else {
				add(Cookie{Name: name, Category: CategoryUnknown, Description: "Third-party or custom cookie", Provider: "Unknown"})
			}
		}
	}

	// Source 2: document.cookie assignments inside scripts.
	for _, match := range inlineCookiePattern.FindAllStringSubmatch(html, -1) {
		name := match[1]
		if name == "" {
			continue
		}
		if known, ok := lookupKnownCookie(name); ok {
			known.Name = name
			add(known)
		} else {
			add(Cookie{Name: name, Category: CategoryUnknown, Description: "Custom cookie set by JavaScript", Provider: "Website"})
		}
	}

	// Source 3: known cookie names appearing anywhere in the document. Only
	// names of at least 4 characters are considered here; shorter names like
	// "fr" match too much unrelated text.
	htmlLower := strings.ToLower(html)
	for _, known := range knownCookies {
		if len(known.Name) < 4 {
			continue
		}
		if _, ok := found[known.Name]; ok {
			continue
		}
		if strings.Contains(htmlLower, strings.ToLower(known.Name)) {
			add(known)
		}
	}

	return cookies
}
