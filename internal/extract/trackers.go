package extract

import "strings"

// trackerSignature pairs a vendor name with the substrings that reveal it.
type trackerSignature struct {
	Name     string
	Patterns []string
}

var trackerSignatures = []trackerSignature{
	{Name: "Google Analytics", Patterns: []string{"google-analytics.com", "googletagmanager.com", "ga.js", "gtag", "analytics.js"}},
	{Name: "Facebook Pixel", Patterns: []string{"facebook.net", "fbq(", "connect.facebook", "facebook.com/tr"}},
	{Name: "Google Ads", Patterns: []string{"googleadservices.com", "googlesyndication.com", "doubleclick.net"}},
	{Name: "Hotjar", Patterns: []string{"hotjar.com", "static.hotjar.com", "vars.hotjar.com"}},
	{Name: "LinkedIn", Patterns: []string{"linkedin.com/px", "snap.licdn.com", "linkedin.com/insight"}},
	{Name: "Twitter/X", Patterns: []string{"static.ads-twitter.com", "t.co/i/adsct", "analytics.twitter.com"}},
	{Name: "TikTok", Patterns: []string{"analytics.tiktok.com", "tiktok.com/i18n"}},
	{Name: "Mixpanel", Patterns: []string{"mixpanel.com", "cdn.mxpnl.com", "api.mixpanel.com"}},
	{Name: "Segment", Patterns: []string{"segment.io", "segment.com", "cdn.segment.com", "api.segment.io"}},
	{Name: "Amplitude", Patterns: []string{"amplitude.com", "cdn.amplitude.com", "api.amplitude.com"}},
	{Name: "HubSpot", Patterns: []string{"hubspot.com", "hs-analytics", "hs-scripts", "hsforms.net"}},
	{Name: "Intercom", Patterns: []string{"intercom.io", "widget.intercom.io", "intercomcdn.com"}},
	{Name: "Clarity", Patterns: []string{"clarity.ms", "microsoft clarity", "c.bing.com"}},
	{Name: "Heap", Patterns: []string{"heap.io", "heapanalytics.com", "cdn.heapanalytics.com"}},
	{Name: "FullStory", Patterns: []string{"fullstory.com", "rs.fullstory.com"}},
	{Name: "Optimizely", Patterns: []string{"optimizely.com", "cdn.optimizely.com"}},
	{Name: "Crazy Egg", Patterns: []string{"crazyegg.com", "dnn506yrbagrg.cloudfront.net"}},
}

// DetectTrackers returns vendor names for every tracker with at least one
// pattern occurring anywhere in the document. Evidence is not attributed to a
// location; one hit anywhere records the vendor once.
func DetectTrackers(html string) []string {
	htmlLower := strings.ToLower(html)
	detected := make([]string, 0)

	for _, sig := range trackerSignatures {
		for _, pattern := range sig.Patterns {
			if strings.Contains(htmlLower, strings.ToLower(pattern)) {
				detected = append(detected, sig.Name)
				break
			}
		}
	}
	return detected
}

// SocialTracker is a social-network tracking pixel found in the document.
type SocialTracker struct {
	Name string `json:"name"`
	Risk string `json:"risk"` // "high", "medium" or "low"
}

type socialSignature struct {
	Name     string
	Risk     string
	Patterns []string
}

var socialSignatures = []socialSignature{
	{Name: "Meta Pixel", Risk: "high", Patterns: []string{"facebook.com/tr", "fbq('init'", `fbq("init"`, "connect.facebook.net"}},
	{Name: "TikTok Pixel", Risk: "high", Patterns: []string{"analytics.tiktok.com", "ttq.load", "ttq.track"}},
	{Name: "LinkedIn Insight", Risk: "medium", Patterns: []string{"snap.licdn.com", "linkedin.com/insight", "_linkedin_partner_id"}},
	{Name: "Twitter Pixel", Risk: "medium", Patterns: []string{"static.ads-twitter.com", "twq('init'", "t.co/i/adsct"}},
	{Name: "Pinterest Tag", Risk: "medium", Patterns: []string{"ct.pinterest.com", "pintrk('load'"}},
	{Name: "Snapchat Pixel", Risk: "medium", Patterns: []string{"sc-static.net/scevent", "snaptr('init'"}},
	{Name: "Reddit Pixel", Risk: "low", Patterns: []string{"redditstatic.com/ads", "rdt('init'"}},
}

// DetectSocialTrackers scans the document for social-network tracking pixels.
func DetectSocialTrackers(html string) []SocialTracker {
	htmlLower := strings.ToLower(html)
	detected := make([]SocialTracker, 0)

	for _, sig := range socialSignatures {
		for _, pattern := range sig.Patterns {
			if strings.Contains(htmlLower, strings.ToLower(pattern)) {
				detected = append(detected, SocialTracker{Name: sig.Name, Risk: sig.Risk})
				break
			}
		}
	}
	return detected
}
