package analysis

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var marketingWords = []string{"newsletter", "marketing", "offers", "promotions", "updates", "subscribe"}
var consentWords = []string{"consent", "agree", "accept", "privacy", "terms"}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// AnalyzeOptInForms inspects form markup for consent defects: pre-checked
// marketing checkboxes, consent smuggled into hidden inputs, and a single
// checkbox bundling terms acceptance with marketing consent.
func AnalyzeOptInForms(html string) (*OptInFormsResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &OptInFormsResult{}, err
	}

	result := &OptInFormsResult{}

	doc.Find(`input[type="checkbox"]`).Each(func(_ int, sel *goquery.Selection) {
		_, checked := sel.Attr("checked")
		context := strings.ToLower(attrOr(sel, "name") + " " + attrOr(sel, "id") + " " + parentText(sel))

		if checked && containsAny(context, marketingWords) {
			result.PreCheckedCount++
		}
		if containsAny(context, []string{"terms"}) && containsAny(context, marketingWords) {
			result.BundledConsentCount++
		}
	})

	doc.Find(`input[type="hidden"]`).Each(func(_ int, sel *goquery.Selection) {
		context := strings.ToLower(attrOr(sel, "name") + "=" + attrOr(sel, "value"))
		if containsAny(context, consentWords) && (strings.Contains(context, "=1") ||
			strings.Contains(context, "=true") || strings.Contains(context, "=yes")) {
			result.HiddenConsentCount++
		}
	})

	result.TotalIssues = result.PreCheckedCount + result.HiddenConsentCount + result.BundledConsentCount
	return result, nil
}

func attrOr(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return v
}

// parentText returns the text around an input, which usually holds its label.
func parentText(sel *goquery.Selection) string {
	parent := sel.Parent()
	if parent.Length() == 0 {
		return ""
	}
	text := parent.Text()
	if len(text) > 300 {
		text = text[:300]
	}
	return text
}
