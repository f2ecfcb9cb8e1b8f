package analysis

import (
	"net/http"
	"testing"
)

func TestScoreSecurityHeadersAllPresent(t *testing.T) {
	headers := http.Header{}
	headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
	headers.Set("Content-Security-Policy", "default-src 'self'")
	headers.Set("X-Frame-Options", "DENY")
	headers.Set("X-Content-Type-Options", "nosniff")
	headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	headers.Set("Permissions-Policy", "geolocation=()")
	headers.Set("Cross-Origin-Opener-Policy", "same-origin")
	headers.Set("Cross-Origin-Embedder-Policy", "require-corp")

	result, err := ScoreSecurityHeaders(headers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 100 {
		t.Fatalf("expected 100, got %d (missing: %v)", result.Score, result.Missing)
	}
	if len(result.Missing) != 0 {
		t.Errorf("nothing should be missing, got %v", result.Missing)
	}
}

func TestScoreSecurityHeadersEmpty(t *testing.T) {
	result, err := ScoreSecurityHeaders(http.Header{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 0 {
		t.Fatalf("expected 0, got %d", result.Score)
	}
	if len(result.Missing) != 8 {
		t.Errorf("all 8 headers should be missing, got %d", len(result.Missing))
	}
}

func TestScoreSecurityHeadersWeakValues(t *testing.T) {
	headers := http.Header{}
	headers.Set("Strict-Transport-Security", "max-age=0")
	headers.Set("Content-Security-Policy", "default-src 'unsafe-inline' 'unsafe-eval'")
	headers.Set("X-Frame-Options", "ALLOWALL")

	result, err := ScoreSecurityHeaders(headers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// HSTS max-age=0 scores 0, CSP loses 10, invalid XFO scores 0.
	if result.Score != 10 {
		t.Fatalf("expected 10, got %d", result.Score)
	}
}

func TestScoreSecurityHeadersWarnings(t *testing.T) {
	headers := http.Header{}
	headers.Set("Server", "Apache/2.4.1")
	headers.Set("X-Powered-By", "PHP/8.1")
	headers.Set("X-XSS-Protection", "1; mode=block")

	result, err := ScoreSecurityHeaders(headers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(result.Warnings), result.Warnings)
	}
}
