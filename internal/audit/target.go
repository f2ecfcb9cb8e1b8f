package audit

import (
	"net/url"
	"strings"

	sharederrors "github.com/privacycheck/privacycheck-cli/internal/shared/errors"
)

// ScanTarget is the normalized starting point of an audit. Immutable once
// parsed from user input.
type ScanTarget struct {
	URL    *url.URL
	Domain string
	HTTPS  bool
}

// ParseScanTarget normalizes raw user input into a ScanTarget. Input without
// a scheme gets https:// prepended before parsing; anything that still does
// not yield a hostname is an input-validation failure.
func ParseScanTarget(raw string) (*ScanTarget, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, sharederrors.ErrEmptyTarget
	}

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return nil, sharederrors.ErrInvalidTarget
	}
	if parsed.Path == "" {
		parsed.Path = "/"
	}

	return &ScanTarget{
		URL:    parsed,
		Domain: parsed.Hostname(),
		HTTPS:  parsed.Scheme == "https",
	}, nil
}
