package analysis

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AnalyzeAccessibility runs a lightweight WCAG pass over the markup. It is
// nowhere near a full axe audit; it counts the violations that are reliably
// detectable from static HTML.
func AnalyzeAccessibility(html string) (*AccessibilityResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &AccessibilityResult{}, err
	}

	result := &AccessibilityResult{}

	// Images without alternative text.
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		if _, ok := img.Attr("alt"); !ok {
			result.CriticalCount++
		}
	})

	// Document language missing.
	if lang, ok := doc.Find("html").Attr("lang"); !ok || strings.TrimSpace(lang) == "" {
		result.SeriousCount++
	}

	// Form controls without any accessible name.
	doc.Find("input").Each(func(_ int, input *goquery.Selection) {
		typ, _ := input.Attr("type")
		switch typ {
		case "hidden", "submit", "button":
			return
		}
		if _, ok := input.Attr("aria-label"); ok {
			return
		}
		if id, ok := input.Attr("id"); ok && doc.Find(`label[for="`+id+`"]`).Length() > 0 {
			return
		}
		if _, ok := input.Attr("placeholder"); ok {
			// Placeholder is a weak substitute for a label.
			result.ModerateCount++
			return
		}
		result.SeriousCount++
	})

	// Links with no discernible text.
	doc.Find("a").Each(func(_ int, link *goquery.Selection) {
		if strings.TrimSpace(link.Text()) != "" {
			return
		}
		if _, ok := link.Attr("aria-label"); ok {
			return
		}
		if link.Find("img[alt]").Length() > 0 {
			return
		}
		result.ModerateCount++
	})

	result.TotalIssues = result.CriticalCount + result.SeriousCount + result.ModerateCount
	return result, nil
}
