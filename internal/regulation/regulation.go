// Package regulation maps a scanned domain to the privacy regimes most
// likely to apply to it. The mapping is a TLD heuristic, not legal
// geolocation; GDPR is always included as the baseline.
package regulation

import "strings"

// Applicable returns the regulation names for a domain. germanContent
// marks pages whose text signals a German-language audience.
func Applicable(domain string, germanContent bool) []string {
	regs := []string{"GDPR"}
	host := strings.ToLower(strings.TrimSpace(domain))

	switch {
	case strings.HasSuffix(host, ".co.uk"), strings.HasSuffix(host, ".uk"):
		regs = append(regs, "UK GDPR")
	case strings.HasSuffix(host, ".com"), strings.HasSuffix(host, ".us"):
		regs = append(regs, "CCPA")
	case strings.HasSuffix(host, ".br"):
		regs = append(regs, "LGPD")
	case strings.HasSuffix(host, ".ca"):
		regs = append(regs, "PIPEDA")
	case strings.HasSuffix(host, ".de"):
		regs = append(regs, "DSGVO")
	}

	if germanContent && !contains(regs, "DSGVO") {
		regs = append(regs, "DSGVO")
	}
	return regs
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
