package extract

import (
	"strings"
	"testing"
)

func TestDetectContentFlags(t *testing.T) {
	html := `
		<div class="cookie-banner">We use cookies. Accept cookies?</div>
		<a href="/privacy-policy">Privacy Policy</a>
		<a href="/impressum">Imprint</a>
		<p>Contact our data protection officer at dpo@site.de</p>
		<p>You can request data deletion at any time.</p>
		<a href="/preferences">Unsubscribe</a>
		<form><input type="checkbox"> I agree to the terms</form>
	`
	flags := DetectContentFlags(html)

	if !flags.ConsentBanner {
		t.Error("consent banner not detected")
	}
	if !flags.PrivacyPolicy {
		t.Error("privacy policy not detected")
	}
	if !flags.LegalMentions {
		t.Error("legal mentions not detected")
	}
	if !flags.DPOContact {
		t.Error("DPO contact not detected")
	}
	if !flags.DataDeleteLink {
		t.Error("data deletion not detected")
	}
	if !flags.OptOutMechanism {
		t.Error("opt-out not detected")
	}
	if !flags.SecureForms || !flags.HasForms {
		t.Error("secure form not detected")
	}
	if flags.AgeVerification {
		t.Error("age verification falsely detected")
	}
}

func TestDetectContentFlagsGermanKeywords(t *testing.T) {
	flags := DetectContentFlags(`<a href="/datenschutz">Datenschutz</a>`)
	if !flags.GermanKeywords {
		t.Error("German keyword not detected")
	}
	if !flags.PrivacyPolicy {
		t.Error("/datenschutz should count as a privacy policy link")
	}
}

func TestExtractTitle(t *testing.T) {
	if got := ExtractTitle("<html><head><title> My Site </title></head></html>"); got != "My Site" {
		t.Errorf("expected trimmed title, got %q", got)
	}
	if got := ExtractTitle("<p>no title</p>"); got != "Untitled" {
		t.Errorf("expected Untitled fallback, got %q", got)
	}

	long := "<title>" + strings.Repeat("a", 150) + "</title>"
	if got := ExtractTitle(long); len(got) != 100 {
		t.Errorf("expected 100-char truncation, got %d chars", len(got))
	}
}
