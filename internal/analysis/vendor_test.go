package analysis

import "testing"

func TestGetVendorRisk(t *testing.T) {
	vendor := GetVendorRisk("Google Analytics")
	if vendor == nil {
		t.Fatal("Google Analytics should be known")
	}
	if vendor.RiskScore != 5 || vendor.Category != "analytics" {
		t.Errorf("unexpected rating: %+v", vendor)
	}

	if GetVendorRisk("Totally Unknown Vendor") != nil {
		t.Error("unknown vendor should return nil")
	}
	if GetVendorRisk("") != nil {
		t.Error("empty input should return nil")
	}
}

func TestGetVendorRiskURLMatch(t *testing.T) {
	vendor := GetVendorRisk("https://analytics.tiktok.com/i18n/pixel.js")
	if vendor == nil {
		t.Fatal("TikTok URL should match")
	}
	if vendor.Name != "TikTok" || vendor.RiskScore != 9 {
		t.Errorf("unexpected vendor: %+v", vendor)
	}
}

func TestGetVendorRiskReturnsCopy(t *testing.T) {
	first := GetVendorRisk("Hotjar")
	if first == nil {
		t.Fatal("Hotjar should be known")
	}
	first.RiskScore = 99

	second := GetVendorRisk("Hotjar")
	if second.RiskScore != 4 {
		t.Fatalf("lookup must return a copy, database was mutated: %d", second.RiskScore)
	}
}
