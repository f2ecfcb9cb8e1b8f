package analysis

import (
	"net/http"
	"strings"
)

// headerSpec describes one scored security header. Weights sum to 100.
type headerSpec struct {
	Name      string
	MaxScore  int
	CheckFunc func(value string) int
}

var headerSpecs = []headerSpec{
	{"Strict-Transport-Security", 20, checkHSTSValue},
	{"Content-Security-Policy", 20, checkCSPValue},
	{"X-Frame-Options", 15, checkXFrameOptionsValue},
	{"X-Content-Type-Options", 15, checkNosniffValue},
	{"Referrer-Policy", 10, checkReferrerPolicyValue},
	{"Permissions-Policy", 10, func(string) int { return 10 }},
	{"Cross-Origin-Opener-Policy", 5, checkCOOPValue},
	{"Cross-Origin-Embedder-Policy", 5, checkCOEPValue},
}

// informationDisclosureHeaders should be removed or obfuscated in responses.
var informationDisclosureHeaders = []string{"Server", "X-Powered-By", "X-AspNet-Version", "X-AspNetMvc-Version"}

// ScoreSecurityHeaders produces the weighted 0-100 security-header sub-score
// consumed by the scorer's graduated header rule.
func ScoreSecurityHeaders(headers http.Header) (*HeaderScoreResult, error) {
	result := &HeaderScoreResult{Missing: []string{}, Warnings: []string{}}

	for _, spec := range headerSpecs {
		value := headers.Get(spec.Name)
		if value == "" {
			result.Missing = append(result.Missing, spec.Name)
			continue
		}
		result.Score += spec.CheckFunc(value)
	}

	for _, name := range informationDisclosureHeaders {
		if value := headers.Get(name); value != "" {
			result.Warnings = append(result.Warnings, name+" header exposes server information: "+value)
		}
	}
	if xss := headers.Get("X-XSS-Protection"); xss != "" && xss != "0" {
		result.Warnings = append(result.Warnings, "X-XSS-Protection is deprecated and may introduce vulnerabilities")
	}

	return result, nil
}

func checkHSTSValue(value string) int {
	value = strings.ToLower(value)
	score := 20
	if !strings.Contains(value, "max-age=") || strings.Contains(value, "max-age=0") {
		return 0
	}
	if !strings.Contains(value, "max-age=31536000") && !strings.Contains(value, "max-age=63072000") {
		score -= 3
	}
	if !strings.Contains(value, "includesubdomains") {
		score -= 5
	}
	if !strings.Contains(value, "preload") {
		score -= 2
	}
	return score
}

func checkCSPValue(value string) int {
	value = strings.ToLower(value)
	score := 20
	if strings.Contains(value, "'unsafe-inline'") {
		score -= 5
	}
	if strings.Contains(value, "'unsafe-eval'") {
		score -= 5
	}
	if strings.Contains(value, "*") {
		score -= 3
	}
	if !strings.Contains(value, "default-src") {
		score -= 3
	}
	if score < 0 {
		score = 0
	}
	return score
}

func checkXFrameOptionsValue(value string) int {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "DENY", "SAMEORIGIN":
		return 15
	default:
		return 0
	}
}

func checkNosniffValue(value string) int {
	if strings.EqualFold(strings.TrimSpace(value), "nosniff") {
		return 15
	}
	return 0
}

func checkReferrerPolicyValue(value string) int {
	value = strings.ToLower(value)
	for _, policy := range []string{"no-referrer", "strict-origin", "strict-origin-when-cross-origin", "same-origin"} {
		if strings.Contains(value, policy) {
			return 10
		}
	}
	if strings.Contains(value, "unsafe-url") {
		return 3
	}
	return 7
}

func checkCOOPValue(value string) int {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "same-origin", "same-origin-allow-popups":
		return 5
	default:
		return 1
	}
}

func checkCOEPValue(value string) int {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "require-corp", "credentialless":
		return 5
	default:
		return 1
	}
}
