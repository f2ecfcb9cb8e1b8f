package analysis

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AnalyzeFormSecurity inspects form handling for transport and CSRF
// weaknesses. Compliant means no critical or high finding.
func AnalyzeFormSecurity(html, pageURL string) (*FormSecurityResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &FormSecurityResult{Compliant: true, Issues: []string{}}, err
	}

	result := &FormSecurityResult{Issues: []string{}}
	pageSecure := strings.HasPrefix(pageURL, "https://")
	pageHost := ""
	if parsed, parseErr := url.Parse(pageURL); parseErr == nil {
		pageHost = parsed.Hostname()
	}

	addIssue := func(severity, label string) {
		result.IssuesCount++
		result.Issues = append(result.Issues, label)
		switch severity {
		case "critical":
			result.Critical++
		case "high":
			result.High++
		}
	}

	doc.Find("form").Each(func(_ int, form *goquery.Selection) {
		action, _ := form.Attr("action")
		hasPassword := form.Find(`input[type="password"]`).Length() > 0

		if strings.HasPrefix(action, "http://") {
			addIssue("critical", "Form submits over unencrypted HTTP: "+action)
		}
		if hasPassword && !pageSecure {
			addIssue("critical", "Password field on a page served over HTTP")
		}

		if action != "" && strings.HasPrefix(action, "http") {
			if target, parseErr := url.Parse(action); parseErr == nil &&
				pageHost != "" && target.Hostname() != pageHost {
				addIssue("high", "Form submits to a third-party host: "+target.Hostname())
			}
		}

		method, _ := form.Attr("method")
		if strings.EqualFold(method, "post") && hasPassword {
			hasToken := false
			form.Find(`input[type="hidden"]`).Each(func(_ int, hidden *goquery.Selection) {
				name, _ := hidden.Attr("name")
				nameLower := strings.ToLower(name)
				if strings.Contains(nameLower, "csrf") || strings.Contains(nameLower, "token") {
					hasToken = true
				}
			})
			if !hasToken {
				addIssue("medium", "Login form without a visible CSRF token")
			}
		}
	})

	result.Compliant = result.Critical == 0 && result.High == 0
	return result, nil
}
