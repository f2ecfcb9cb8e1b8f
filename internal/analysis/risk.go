package analysis

// Fine estimation constants derived from published GDPR enforcement data.
// Article 83(5) caps the worst case at EUR 20M for smaller companies.
const maxFineCeiling = 20_000_000

// CalculateRiskPrediction estimates regulatory fine exposure from the audit
// facts. The numbers are order-of-magnitude guidance, not legal advice.
func CalculateRiskPrediction(input RiskInput) (*RiskPrediction, error) {
	factors := make([]RiskFactor, 0)
	riskScore := 0
	probability := 10 // base chance of enforcement attention

	addFactor := func(f RiskFactor, risk, prob int) {
		factors = append(factors, f)
		riskScore += risk
		probability += prob
	}

	if !input.ConsentBanner {
		addFactor(RiskFactor{
			Issue:            "No Cookie Consent Banner",
			Severity:         "critical",
			FineContribution: 50_000,
			GDPRArticle:      "Art. 6, 7",
			Description:      "Processing data without valid consent is a Tier 2 violation.",
		}, 30, 25)
	}
	if !input.PrivacyPolicy {
		addFactor(RiskFactor{
			Issue:            "Missing Privacy Policy",
			Severity:         "high",
			FineContribution: 25_000,
			GDPRArticle:      "Art. 13, 14",
			Description:      "Failure to provide required information to data subjects.",
		}, 20, 15)
	}
	if !input.HTTPS {
		addFactor(RiskFactor{
			Issue:            "No HTTPS Encryption",
			Severity:         "high",
			FineContribution: 15_000,
			GDPRArticle:      "Art. 32",
			Description:      "Personal data transmitted without appropriate security measures.",
		}, 15, 10)
	}
	if input.UndeclaredCookies > 0 {
		addFactor(RiskFactor{
			Issue:            "Undeclared Cookies",
			Severity:         "medium",
			FineContribution: int64(input.UndeclaredCookies) * 2_000,
			GDPRArticle:      "Art. 7",
			Description:      "Cookies set without being declared to the user.",
		}, 10, 5)
	}
	if input.TrackerCount > 5 {
		addFactor(RiskFactor{
			Issue:            "Extensive Third-Party Tracking",
			Severity:         "high",
			FineContribution: 20_000,
			GDPRArticle:      "Art. 28",
			Description:      "Many processors sharing visitor data without clear agreements.",
		}, 15, 10)
	}
	if input.HighRiskVendors > 0 {
		addFactor(RiskFactor{
			Issue:            "High-Risk Data Processors",
			Severity:         "high",
			FineContribution: int64(input.HighRiskVendors) * 10_000,
			GDPRArticle:      "Art. 44-49",
			Description:      "Vendors transferring data to jurisdictions without adequacy decisions.",
		}, 15, 10)
	}
	if input.BreachCount > 0 {
		addFactor(RiskFactor{
			Issue:            "Known Data Breaches",
			Severity:         "critical",
			FineContribution: int64(input.BreachCount) * 30_000,
			GDPRArticle:      "Art. 33, 34",
			Description:      "Past incidents raise the likelihood of regulator scrutiny.",
		}, 25, 20)
	}
	if input.ExposedEmails > 0 {
		addFactor(RiskFactor{
			Issue:            "Exposed Email Addresses",
			Severity:         "medium",
			FineContribution: int64(input.ExposedEmails) * 1_000,
			GDPRArticle:      "Art. 32",
			Description:      "Third-party personal data published in page source.",
		}, 10, 5)
	}

	var base int64
	for _, f := range factors {
		base += f.FineContribution
	}

	prediction := &RiskPrediction{
		MinFine: base / 2,
		MaxFine: base * 3,
		Factors: factors,
	}
	if prediction.MaxFine > maxFineCeiling {
		prediction.MaxFine = maxFineCeiling
	}
	if probability > 95 {
		probability = 95
	}
	prediction.Probability = probability

	switch {
	case riskScore >= 60:
		prediction.RiskLevel = "critical"
		prediction.Recommendation = "Immediate remediation required; multiple Tier 2 violations detected."
	case riskScore >= 35:
		prediction.RiskLevel = "high"
		prediction.Recommendation = "Address consent and transparency gaps before they attract enforcement."
	case riskScore >= 15:
		prediction.RiskLevel = "medium"
		prediction.Recommendation = "Close the remaining gaps to reduce exposure."
	default:
		prediction.RiskLevel = "low"
		prediction.Recommendation = "Maintain current practices and monitor for regressions."
	}
	return prediction, nil
}
