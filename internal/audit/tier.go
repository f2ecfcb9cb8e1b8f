package audit

import (
	"fmt"

	sharederrors "github.com/privacycheck/privacycheck-cli/internal/shared/errors"
)

// Tier is a subscription level gating crawl depth and concurrency.
type Tier string

const (
	TierFree    Tier = "free"
	TierPro     Tier = "pro"
	TierProPlus Tier = "pro_plus"
)

// TierLimits are the crawl bounds derived from a tier.
type TierLimits struct {
	// MaxPages is the total fetch budget, main page included.
	MaxPages int
	// MaxExtraPages caps the frontier of additional pages. The discovered-URL
	// list may grow to twice this value as a memory ceiling; MaxPages remains
	// the only fetch budget.
	MaxExtraPages int
	// BatchSize is how many pages are fetched concurrently per wave.
	BatchSize int
}

// ParseTier validates a tier name. An empty string defaults to the free tier.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case "":
		return TierFree, nil
	case TierFree, TierPro, TierProPlus:
		return Tier(s), nil
	default:
		return "", fmt.Errorf("%w: %q", sharederrors.ErrInvalidTier, s)
	}
}

// Limits returns the crawl bounds for the tier.
func (t Tier) Limits() TierLimits {
	switch t {
	case TierPro:
		return TierLimits{MaxPages: 200, MaxExtraPages: 199, BatchSize: 10}
	case TierProPlus:
		return TierLimits{MaxPages: 1000, MaxExtraPages: 999, BatchSize: 10}
	default:
		return TierLimits{MaxPages: 20, MaxExtraPages: 19, BatchSize: 20}
	}
}
