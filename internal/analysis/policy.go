package analysis

import "strings"

// policyElements are the disclosures a complete privacy policy must contain.
// Weights sum to 100.
var policyElements = []struct {
	Label    string
	Weight   int
	Patterns []string
}{
	{"Data collection disclosure", 15, []string{"data we collect", "information we collect", "personal data", "personal information"}},
	{"Legal basis for processing", 15, []string{"legal basis", "legitimate interest", "lawful basis", "article 6"}},
	{"Data subject rights", 15, []string{"your rights", "right to access", "right to erasure", "right to rectification", "data subject"}},
	{"Retention period", 10, []string{"retention", "how long we keep", "storage period"}},
	{"Contact / DPO details", 10, []string{"dpo", "data protection officer", "privacy@", "contact us"}},
	{"Third-party sharing", 15, []string{"third part", "share your", "service providers", "processors"}},
	{"Cookie usage", 10, []string{"cookie", "tracking technolog"}},
	{"International transfers", 10, []string{"international transfer", "outside the eu", "standard contractual clauses", "adequacy decision"}},
}

// AnalyzePrivacyPolicy scores privacy-policy completeness 0-100. When the
// policy page itself was fetched its text is analyzed; otherwise the combined
// site text is the best available evidence.
func AnalyzePrivacyPolicy(html, policyHTML, baseURL string) (*PolicyResult, error) {
	text := policyHTML
	if text == "" {
		text = html
	}
	textLower := strings.ToLower(text)

	result := &PolicyResult{MissingElements: []string{}}
	for _, element := range policyElements {
		found := false
		for _, pattern := range element.Patterns {
			if strings.Contains(textLower, pattern) {
				found = true
				break
			}
		}
		if found {
			result.OverallScore += element.Weight
		} else {
			result.MissingElements = append(result.MissingElements, element.Label)
		}
	}
	return result, nil
}
