package analysis

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Safe, read-only probes for files that must never be publicly reachable.
var sensitivePaths = []struct {
	Path     string
	Title    string
	Severity string
}{
	{"/.git/config", "Git Repository Exposed", "critical"},
	{"/.env", "Environment File Exposed", "critical"},
	{"/.htpasswd", "Password File Exposed", "critical"},
	{"/wp-config.php.bak", "WordPress Config Backup Exposed", "critical"},
	{"/backup.sql", "Database Backup Exposed", "critical"},
	{"/config.json", "JSON Config File Exposed", "high"},
	{"/phpinfo.php", "PHP Info Page Exposed", "medium"},
	{"/server-status", "Apache Server Status Exposed", "medium"},
}

// Leaked-credential signatures in page source.
var secretPatterns = []struct {
	Pattern *regexp.Regexp
	Title   string
}{
	{regexp.MustCompile(`AKIA[0-9A-Z]{16}`), "AWS Access Key in Page Source"},
	{regexp.MustCompile(`sk_live_[0-9a-zA-Z]{20,}`), "Stripe Secret Key in Page Source"},
	{regexp.MustCompile(`-----BEGIN (RSA |EC )?PRIVATE KEY-----`), "Private Key in Page Source"},
}

// SurfaceScanner probes a small list of sensitive paths and scans page
// source for leaked secrets.
type SurfaceScanner struct {
	Client *http.Client
}

// NewSurfaceScanner builds a scanner; a nil client gets a short-timeout
// default. Probes are GETs of fixed paths only.
func NewSurfaceScanner(client *http.Client) *SurfaceScanner {
	if client == nil {
		client = &http.Client{
			Timeout: 5 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				// A redirect to a login or home page is not an exposure.
				return http.ErrUseLastResponse
			},
		}
	}
	return &SurfaceScanner{Client: client}
}

// Scan is best-effort: probe failures are skipped silently and the caller
// swallows any returned error.
func (s *SurfaceScanner) Scan(ctx context.Context, baseURL, html string) (*AttackSurfaceResult, error) {
	result := &AttackSurfaceResult{Findings: []AttackSurfaceFinding{}}
	base := strings.TrimSuffix(baseURL, "/")

	for _, probe := range sensitivePaths {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+probe.Path, nil)
		if err != nil {
			continue
		}
		resp, err := s.Client.Do(req)
		if err != nil {
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			result.Findings = append(result.Findings, AttackSurfaceFinding{
				Path:     probe.Path,
				Title:    probe.Title,
				Severity: probe.Severity,
			})
		}
	}

	for _, sig := range secretPatterns {
		if sig.Pattern.MatchString(html) {
			result.Findings = append(result.Findings, AttackSurfaceFinding{
				Title:    sig.Title,
				Severity: "critical",
			})
		}
	}
	return result, nil
}
