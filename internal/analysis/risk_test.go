package analysis

import "testing"

func TestCalculateRiskPredictionLowRisk(t *testing.T) {
	prediction, err := CalculateRiskPrediction(RiskInput{
		Score:         95,
		ConsentBanner: true,
		PrivacyPolicy: true,
		HTTPS:         true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prediction.RiskLevel != "low" {
		t.Errorf("expected low risk, got %q", prediction.RiskLevel)
	}
	if len(prediction.Factors) != 0 {
		t.Errorf("compliant input should produce no factors, got %v", prediction.Factors)
	}
	if prediction.MinFine != 0 || prediction.MaxFine != 0 {
		t.Errorf("expected zero fine range, got %d-%d", prediction.MinFine, prediction.MaxFine)
	}
	if prediction.Probability != 10 {
		t.Errorf("expected base probability 10, got %d", prediction.Probability)
	}
}

func TestCalculateRiskPredictionCritical(t *testing.T) {
	prediction, err := CalculateRiskPrediction(RiskInput{
		ConsentBanner:     false,
		PrivacyPolicy:     false,
		HTTPS:             false,
		UndeclaredCookies: 3,
		TrackerCount:      8,
		BreachCount:       2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prediction.RiskLevel != "critical" {
		t.Errorf("expected critical risk, got %q", prediction.RiskLevel)
	}
	// 50k + 25k + 15k + 6k + 20k + 60k = 176k base.
	if prediction.MinFine != 88_000 {
		t.Errorf("expected min fine 88000, got %d", prediction.MinFine)
	}
	if prediction.MaxFine != 528_000 {
		t.Errorf("expected max fine 528000, got %d", prediction.MaxFine)
	}
	if len(prediction.Factors) != 6 {
		t.Errorf("expected 6 factors, got %d", len(prediction.Factors))
	}
}

func TestCalculateRiskPredictionCaps(t *testing.T) {
	prediction, err := CalculateRiskPrediction(RiskInput{
		BreachCount:     500,
		HighRiskVendors: 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prediction.MaxFine != 20_000_000 {
		t.Errorf("max fine must cap at the Article 83 ceiling, got %d", prediction.MaxFine)
	}
	if prediction.Probability > 95 {
		t.Errorf("probability must cap at 95, got %d", prediction.Probability)
	}
}
