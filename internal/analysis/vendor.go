package analysis

import "strings"

// vendorRiskDatabase rates third-party services 1 (low) to 10 (high) by data
// transfer jurisdiction, retention practices and transparency.
var vendorRiskDatabase = []VendorRisk{
	{Name: "Google Analytics", Category: "analytics", RiskScore: 5, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"US data transfer", "Third-party sharing", "Long retention"}, GDPRCompliant: true},
	{Name: "Google Ads", Category: "advertising", RiskScore: 8, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"Behavioral advertising", "Cross-site tracking", "Profile building"}, GDPRCompliant: true},
	{Name: "Facebook Pixel", Category: "advertising", RiskScore: 8, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"Cross-site tracking", "Shadow profiles", "Data sharing with Meta"}, GDPRCompliant: false},
	{Name: "Meta Pixel", Category: "advertising", RiskScore: 8, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"Cross-site tracking", "Shadow profiles"}, GDPRCompliant: false},
	{Name: "TikTok", Category: "advertising", RiskScore: 9, Jurisdiction: "China", DataTransfer: "CN", Concerns: []string{"CN data transfer", "Opaque retention", "Regulatory scrutiny"}, GDPRCompliant: false},
	{Name: "Hotjar", Category: "analytics", RiskScore: 4, Jurisdiction: "Malta (EU)", DataTransfer: "EU", Concerns: []string{"Session recording", "Behavior tracking"}, GDPRCompliant: true},
	{Name: "Mixpanel", Category: "analytics", RiskScore: 5, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"US data transfer", "User profiling"}, GDPRCompliant: true},
	{Name: "Amplitude", Category: "analytics", RiskScore: 5, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"US data transfer", "Behavioral analytics"}, GDPRCompliant: true},
	{Name: "Segment", Category: "analytics", RiskScore: 6, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"US data transfer", "Data broker", "Third-party sharing"}, GDPRCompliant: true},
	{Name: "Clarity", Category: "analytics", RiskScore: 6, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"Session recording", "US data transfer"}, GDPRCompliant: true},
	{Name: "HubSpot", Category: "analytics", RiskScore: 5, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"US data transfer", "Marketing profiling"}, GDPRCompliant: true},
	{Name: "Intercom", Category: "other", RiskScore: 4, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"US data transfer", "Chat transcripts"}, GDPRCompliant: true},
	{Name: "LinkedIn", Category: "advertising", RiskScore: 6, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"B2B profiling", "US data transfer"}, GDPRCompliant: true},
	{Name: "LinkedIn Insight", Category: "advertising", RiskScore: 6, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"B2B profiling", "US data transfer"}, GDPRCompliant: true},
	{Name: "Twitter/X", Category: "advertising", RiskScore: 7, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"Cross-site tracking", "Policy volatility"}, GDPRCompliant: false},
	{Name: "FullStory", Category: "analytics", RiskScore: 6, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"Full session replay", "Keystroke capture risk"}, GDPRCompliant: true},
	{Name: "Heap", Category: "analytics", RiskScore: 5, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"Autocapture of all events"}, GDPRCompliant: true},
	{Name: "Optimizely", Category: "analytics", RiskScore: 4, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"A/B test bucketing"}, GDPRCompliant: true},
	{Name: "Crazy Egg", Category: "analytics", RiskScore: 4, Jurisdiction: "USA", DataTransfer: "US", Concerns: []string{"Heatmap tracking"}, GDPRCompliant: true},
}

// GetVendorRisk looks up a vendor by tracker name or URL. Returns nil when
// the vendor is unknown.
func GetVendorRisk(nameOrURL string) *VendorRisk {
	needle := strings.ToLower(strings.TrimSpace(nameOrURL))
	if needle == "" {
		return nil
	}

	for i := range vendorRiskDatabase {
		vendor := &vendorRiskDatabase[i]
		nameLower := strings.ToLower(vendor.Name)
		if needle == nameLower || strings.Contains(needle, nameLower) ||
			strings.Contains(needle, strings.ReplaceAll(nameLower, " ", "-")) {
			copied := *vendor
			return &copied
		}
	}
	return nil
}
