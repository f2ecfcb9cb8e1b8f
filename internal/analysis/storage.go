package analysis

import (
	"regexp"
	"strings"
)

var storageSetPattern = regexp.MustCompile(`(localStorage|sessionStorage)\.setItem\(\s*["']([^"']+)["']`)

var storageCategories = []struct {
	Category string
	Risk     string
	Words    []string
}{
	{"pii-risk", "critical", []string{"email", "phone", "address", "firstname", "lastname", "ssn", "dob"}},
	{"tracking", "high", []string{"track", "utm_", "gclid", "fbclid", "_fbp", "campaign"}},
	{"user-id", "high", []string{"user_id", "userid", "uid", "visitor", "device_id", "deviceid"}},
	{"analytics", "medium", []string{"analytics", "session_count", "pageview", "event"}},
}

// AnalyzeStorageUsage finds localStorage/sessionStorage writes and flags keys
// whose names suggest tracking or personal data. Only non-low-risk keys are
// reported as issues.
func AnalyzeStorageUsage(html string) (*StorageResult, error) {
	result := &StorageResult{Issues: []StorageIssue{}}
	seen := make(map[string]struct{})

	for _, match := range storageSetPattern.FindAllStringSubmatch(html, -1) {
		storage, key := match[1], match[2]
		dedupKey := storage + ":" + key
		if _, ok := seen[dedupKey]; ok {
			continue
		}
		seen[dedupKey] = struct{}{}

		keyLower := strings.ToLower(key)
		for _, cat := range storageCategories {
			if containsAny(keyLower, cat.Words) {
				risk := cat.Risk
				// sessionStorage clears on tab close, one step less severe.
				if storage == "sessionStorage" && risk == "high" {
					risk = "medium"
				}
				result.Issues = append(result.Issues, StorageIssue{
					Key:      key,
					Storage:  storage,
					Category: cat.Category,
					Risk:     risk,
				})
				break
			}
		}
	}
	return result, nil
}
