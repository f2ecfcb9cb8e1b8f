package regulation

import (
	"reflect"
	"testing"
)

func TestApplicable(t *testing.T) {
	cases := []struct {
		name    string
		domain  string
		german  bool
		want    []string
	}{
		{"baseline", "site.io", false, []string{"GDPR"}},
		{"com adds ccpa", "example.com", false, []string{"GDPR", "CCPA"}},
		{"us adds ccpa", "example.us", false, []string{"GDPR", "CCPA"}},
		{"uk", "example.co.uk", false, []string{"GDPR", "UK GDPR"}},
		{"brazil", "example.com.br", false, []string{"GDPR", "LGPD"}},
		{"canada", "example.ca", false, []string{"GDPR", "PIPEDA"}},
		{"germany by tld", "example.de", false, []string{"GDPR", "DSGVO"}},
		{"germany by content", "example.io", true, []string{"GDPR", "DSGVO"}},
		{"german tld and content no dup", "example.de", true, []string{"GDPR", "DSGVO"}},
		{"case insensitive", "Example.DE", false, []string{"GDPR", "DSGVO"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Applicable(tc.domain, tc.german); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Applicable(%q, %v) = %v, want %v", tc.domain, tc.german, got, tc.want)
			}
		})
	}
}
