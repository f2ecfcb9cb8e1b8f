package extract

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// SecurityHeaders records the presence of the baseline security headers.
type SecurityHeaders struct {
	ContentSecurityPolicy   bool `json:"contentSecurityPolicy"`
	XFrameOptions           bool `json:"xFrameOptions"`
	XContentTypeOptions     bool `json:"xContentTypeOptions"`
	ReferrerPolicy          bool `json:"referrerPolicy"`
	PermissionsPolicy       bool `json:"permissionsPolicy"`
	StrictTransportSecurity bool `json:"strictTransportSecurity"`
	HSTSMaxAge              int  `json:"hstsMaxAge"`
}

var hstsMaxAgePattern = regexp.MustCompile(`max-age=(\d+)`)

// CheckSecurityHeaders performs presence checks on the response headers.
// X-Content-Type-Options must be exactly "nosniff"; Feature-Policy is
// accepted as a legacy spelling of Permissions-Policy.
func CheckSecurityHeaders(headers http.Header) SecurityHeaders {
	result := SecurityHeaders{
		ContentSecurityPolicy: headers.Get("Content-Security-Policy") != "",
		XFrameOptions:         headers.Get("X-Frame-Options") != "",
		XContentTypeOptions:   strings.EqualFold(strings.TrimSpace(headers.Get("X-Content-Type-Options")), "nosniff"),
		ReferrerPolicy:        headers.Get("Referrer-Policy") != "",
		PermissionsPolicy:     headers.Get("Permissions-Policy") != "" || headers.Get("Feature-Policy") != "",
	}

	if hsts := headers.Get("Strict-Transport-Security"); hsts != "" {
		result.StrictTransportSecurity = true
		if m := hstsMaxAgePattern.FindStringSubmatch(hsts); m != nil {
			if age, err := strconv.Atoi(m[1]); err == nil {
				result.HSTSMaxAge = age
			}
		}
	}
	return result
}
