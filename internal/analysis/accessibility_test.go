package analysis

import "testing"

func TestAnalyzeAccessibility(t *testing.T) {
	html := `<html><body>
		<img src="/logo.png">
		<img src="/hero.png" alt="Hero banner">
		<input type="text" name="q">
		<input type="text" name="email" placeholder="Email">
		<input type="text" id="name"><label for="name">Name</label>
		<input type="hidden" name="token">
		<a href="/empty"></a>
		<a href="/ok">Read more</a>
	</body></html>`

	result, err := AnalyzeAccessibility(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.CriticalCount != 1 {
		t.Errorf("expected 1 missing-alt image, got %d", result.CriticalCount)
	}
	// Missing lang attribute plus the unlabeled text input.
	if result.SeriousCount != 2 {
		t.Errorf("expected 2 serious issues, got %d", result.SeriousCount)
	}
	// Placeholder-only input plus the empty link.
	if result.ModerateCount != 2 {
		t.Errorf("expected 2 moderate issues, got %d", result.ModerateCount)
	}
	if result.TotalIssues != 5 {
		t.Errorf("expected 5 total, got %d", result.TotalIssues)
	}
}

func TestAnalyzeAccessibilityCleanDocument(t *testing.T) {
	html := `<html lang="en"><body>
		<img src="/logo.png" alt="Logo">
		<a href="/about">About us</a>
	</body></html>`

	result, err := AnalyzeAccessibility(html)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalIssues != 0 {
		t.Fatalf("clean document flagged: %+v", result)
	}
}
