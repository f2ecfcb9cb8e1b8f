package analysis

import "regexp"

type fingerprintSignature struct {
	Pattern  *regexp.Regexp
	Name     string
	Severity string
}

var fingerprintLibraries = []fingerprintSignature{
	{regexp.MustCompile(`(?i)fingerprintjs`), "FingerprintJS", "critical"},
	{regexp.MustCompile(`(?i)fingerprint2`), "Fingerprint2", "critical"},
	{regexp.MustCompile(`(?i)evercookie`), "Evercookie", "critical"},
	{regexp.MustCompile(`(?i)supercookie`), "Supercookie", "critical"},
	{regexp.MustCompile(`(?i)clientjs`), "ClientJS", "high"},
	{regexp.MustCompile(`(?i)imprint\.js`), "ImprintJS", "high"},
}

// Technique heuristics: API combinations that rarely appear together outside
// of fingerprinting code.
var fingerprintTechniques = []struct {
	Name     string
	Severity string
	Requires []*regexp.Regexp
}{
	{"Canvas fingerprinting", "high", []*regexp.Regexp{
		regexp.MustCompile(`toDataURL`),
		regexp.MustCompile(`getContext\(['"]2d['"]\)`),
	}},
	{"Audio fingerprinting", "medium", []*regexp.Regexp{
		regexp.MustCompile(`AudioContext`),
		regexp.MustCompile(`createOscillator`),
	}},
	{"Navigator enumeration", "medium", []*regexp.Regexp{
		regexp.MustCompile(`navigator\.plugins`),
		regexp.MustCompile(`screen\.(width|height|colorDepth)`),
	}},
	{"WebGL fingerprinting", "high", []*regexp.Regexp{
		regexp.MustCompile(`getParameter\(.*(VENDOR|RENDERER)`),
	}},
}

// DetectFingerprinting scans scripts for fingerprinting libraries and
// technique signatures.
func DetectFingerprinting(html string) (*FingerprintingResult, error) {
	result := &FingerprintingResult{RiskLevel: "none", Libraries: []string{}}

	record := func(severity string) {
		switch severity {
		case "critical":
			result.Critical++
		case "high":
			result.High++
		default:
			result.Medium++
		}
	}

	for _, lib := range fingerprintLibraries {
		if lib.Pattern.MatchString(html) {
			result.Libraries = append(result.Libraries, lib.Name)
			record(lib.Severity)
		}
	}

	for _, technique := range fingerprintTechniques {
		all := true
		for _, re := range technique.Requires {
			if !re.MatchString(html) {
				all = false
				break
			}
		}
		if all {
			record(technique.Severity)
		}
	}

	result.Detected = result.Critical+result.High+result.Medium > 0
	switch {
	case result.Critical > 0:
		result.RiskLevel = "critical"
	case result.High > 0:
		result.RiskLevel = "high"
	case result.Medium > 0:
		result.RiskLevel = "medium"
	}
	return result, nil
}
