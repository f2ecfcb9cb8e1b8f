package analysis

import "regexp"

type darkPatternSignature struct {
	Pattern  *regexp.Regexp
	Severity string
	Label    string
}

// Confirm-shaming, urgency and obstruction signatures. The regexes target
// the phrasing itself, so they survive arbitrary surrounding markup.
var darkPatternSignatures = []darkPatternSignature{
	{regexp.MustCompile(`(?i)no,?\s*(thanks|thank you),?\s*i\s*(don'?t|do not)\s*(want|need|like|care)`), "high", "Confirm-shaming decline option"},
	{regexp.MustCompile(`(?i)i('?m|\s+am)\s+(not interested|happy|fine)\s+(in|with)\s+(saving|getting|having)`), "medium", "Guilt-tripping opt-out"},
	{regexp.MustCompile(`(?i)i\s*(prefer|want)\s+to\s*(miss out|pay more|stay uninformed)`), "high", "Shaming opt-out wording"},
	{regexp.MustCompile(`(?i)no,?\s*i\s*(hate|don'?t care about|don'?t like)\s*(money|saving|deals|myself)`), "critical", "Hostile confirm-shaming"},
	{regexp.MustCompile(`(?i)i\s+don'?t\s+care\s+about\s+my\s+(privacy|experience|data|security)`), "critical", "Privacy confirm-shaming"},
	{regexp.MustCompile(`(?i)i'?d\s+rather\s+(pay full|not save|miss)`), "high", "Loss-framing decline"},
	{regexp.MustCompile(`(?i)no,?\s*maybe\s+later`), "low", "Nagging dismissal"},
	{regexp.MustCompile(`(?i)(only|just)\s+\d+\s+(left|remaining)\s+(in stock|at this price)`), "medium", "Artificial scarcity"},
	{regexp.MustCompile(`(?i)(offer|deal|price)\s+(expires|ends)\s+in\s+\d`), "medium", "Countdown urgency"},
	{regexp.MustCompile(`(?i)\d+\s+(people|others|users)\s+(are|is)\s+(viewing|looking at)\s+this`), "low", "Social-proof pressure"},
	{regexp.MustCompile(`(?i)by\s+continuing\s+you\s+(agree|accept|consent)`), "high", "Forced-action consent"},
}

// DetectDarkPatterns scans the document for manipulative UI wording.
func DetectDarkPatterns(html string) (*DarkPatternsResult, error) {
	result := &DarkPatternsResult{Findings: []string{}}

	for _, sig := range darkPatternSignatures {
		if !sig.Pattern.MatchString(html) {
			continue
		}
		result.TotalCount++
		result.Findings = append(result.Findings, sig.Label)
		switch sig.Severity {
		case "critical":
			result.Critical++
		case "high":
			result.High++
		case "medium":
			result.Medium++
		default:
			result.Low++
		}
	}
	result.Detected = result.TotalCount > 0
	return result, nil
}
