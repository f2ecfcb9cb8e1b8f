package score

import "math"

// binary builds a pass/fail rule: zero deduction when compliant returns
// true, the full penalty otherwise. An entry is always emitted.
func binary(label string, penalty int, compliant func(f Facts) bool) rule {
	return rule{
		label: label,
		apply: func(f Facts) (int, bool, bool) {
			if compliant(f) {
				return 0, true, true
			}
			return penalty, false, true
		},
	}
}

// graduated builds a capped counting rule. A zero penalty still emits a
// passed entry so the report shows the check ran.
func graduated(label string, penalty func(f Facts) int) rule {
	return rule{
		label: label,
		apply: func(f Facts) (int, bool, bool) {
			p := penalty(f)
			return p, p == 0, true
		},
	}
}

// graduatedIfFailing is like graduated but emits no entry at zero.
func graduatedIfFailing(label string, penalty func(f Facts) int) rule {
	return rule{
		label: label,
		apply: func(f Facts) (int, bool, bool) {
			p := penalty(f)
			return p, false, p > 0
		},
	}
}

// rules is the fixed check ordering; breakdown display order follows it.
var rules = []rule{
	binary("HTTPS Encryption", 10, func(f Facts) bool { return f.HTTPS }),
	binary("Cookie Consent Banner", 8, func(f Facts) bool { return f.Flags.ConsentBanner }),
	binary("Privacy Policy", 10, func(f Facts) bool { return f.Flags.PrivacyPolicy }),
	binary("Legal Mentions", 6, func(f Facts) bool { return f.Flags.LegalMentions }),
	binary("DPO Contact", 6, func(f Facts) bool { return f.Flags.DPOContact }),
	binary("Data Deletion Option", 6, func(f Facts) bool { return f.Flags.DataDeleteLink }),
	binary("Secure Forms", 4, func(f Facts) bool { return f.Flags.SecureForms || !f.Flags.HasForms }),
	binary("Opt-Out Mechanism", 6, func(f Facts) bool { return f.Flags.OptOutMechanism }),
	binary("Cookie Policy", 4, func(f Facts) bool { return f.Flags.CookiePolicy }),
	binary("SPF Record", 3, func(f Facts) bool { return f.SPF }),
	binary("DMARC Record", 3, func(f Facts) bool { return f.DMARC }),

	graduated("Consent Banner Behavior", func(f Facts) int {
		if f.Consent == nil || f.Consent.Score >= 80 {
			return 0
		}
		return min((100-f.Consent.Score)/10, 10)
	}),
	graduated("Privacy Policy Quality", func(f Facts) int {
		if f.Policy == nil || f.Policy.OverallScore >= 70 {
			return 0
		}
		return min((70-f.Policy.OverallScore)/10, 8)
	}),
	graduated("Dark Patterns", func(f Facts) int {
		dp := f.DarkPatterns
		if dp == nil || !dp.Detected {
			return 0
		}
		return min(dp.Critical*5+dp.High*3+dp.Medium*2+dp.Low, 15)
	}),
	graduated("Opt-In Form Issues", func(f Facts) int {
		o := f.OptInForms
		if o == nil || o.TotalIssues == 0 {
			return 0
		}
		return min(o.PreCheckedCount*5+o.HiddenConsentCount*3+o.BundledConsentCount*2, 10)
	}),
	graduated("Cookie Lifespan Issues", func(f Facts) int {
		if f.Lifespans == nil {
			return 0
		}
		return min(f.Lifespans.IssuesCount*3, 8)
	}),
	graduated("Browser Fingerprinting", func(f Facts) int {
		fp := f.Fingerprinting
		if fp == nil || !fp.Detected {
			return 0
		}
		return min(fp.Critical*5+fp.High*3+fp.Medium*2, 12)
	}),
	graduated("Security Headers", func(f Facts) int {
		if f.HeaderScore == nil {
			return 0
		}
		penalty := int(math.Round(math.Min(float64(100-f.HeaderScore.Score)/10, 10)))
		// Small header gaps are absorbed rather than itemized.
		if penalty <= 2 {
			return 0
		}
		return penalty
	}),
	graduated("Web Storage Audit", func(f Facts) int {
		if f.Storage == nil {
			return 0
		}
		risky := 0
		for _, issue := range f.Storage.Issues {
			if issue.Risk == "critical" || issue.Risk == "high" {
				risky++
			}
		}
		return min(risky*3, 6)
	}),
	graduated("Mixed Content", func(f Facts) int {
		mc := f.MixedContent
		if mc == nil {
			return 0
		}
		return min(mc.BlockedCount*5+mc.WarningCount*2, 15)
	}),
	graduated("Form Security", func(f Facts) int {
		fs := f.FormSecurity
		if fs == nil || fs.Compliant {
			return 0
		}
		return min(fs.Critical*5+fs.High*3, 10)
	}),
	graduated("Accessibility", func(f Facts) int {
		a := f.Accessibility
		if a == nil {
			return 0
		}
		return min(a.CriticalCount*5+a.SeriousCount*3+a.ModerateCount, 15)
	}),
	graduated("Third-Party Trackers", func(f Facts) int {
		return min(f.TrackerCount*2, 8)
	}),
	graduated("Undeclared Cookies", func(f Facts) int {
		return min(f.UndeclaredCookies, 5)
	}),

	graduatedIfFailing("Exposed Email Addresses", func(f Facts) int {
		return min(f.ExposedEmailCount*2, 10)
	}),
	graduatedIfFailing("High-Risk Vendors", func(f Facts) int {
		return min(f.HighRiskVendors*3, 10)
	}),
	graduatedIfFailing("Known Data Breaches", func(f Facts) int {
		return min(f.BreachCount*5, 15)
	}),
}
