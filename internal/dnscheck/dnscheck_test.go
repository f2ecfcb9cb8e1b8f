package dnscheck

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newDoHServer(t *testing.T, records map[string][]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		txts, ok := records[name]
		if !ok {
			fmt.Fprint(w, `{"Answer":[]}`)
			return
		}
		answers := make([]string, 0, len(txts))
		for _, txt := range txts {
			answers = append(answers, fmt.Sprintf(`{"data":"\"%s\""}`, txt))
		}
		fmt.Fprintf(w, `{"Answer":[%s]}`, strings.Join(answers, ","))
	}))
}

func TestCheckBothRecords(t *testing.T) {
	server := newDoHServer(t, map[string][]string{
		"example.com":        {"v=spf1 include:_spf.google.com ~all"},
		"_dmarc.example.com": {"v=DMARC1; p=reject"},
	})
	defer server.Close()

	checker := NewChecker(server.URL)
	auth := checker.Check(context.Background(), "www.example.com")

	if !auth.SPF {
		t.Error("SPF record not detected")
	}
	if !auth.DMARC {
		t.Error("DMARC record not detected")
	}
}

func TestCheckMissingRecords(t *testing.T) {
	server := newDoHServer(t, map[string][]string{
		"example.com": {"google-site-verification=abc"},
	})
	defer server.Close()

	checker := NewChecker(server.URL)
	auth := checker.Check(context.Background(), "example.com")

	if auth.SPF {
		t.Error("non-SPF TXT record must not count as SPF")
	}
	if auth.DMARC {
		t.Error("missing DMARC falsely reported")
	}
}

func TestCheckResolverFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	checker := NewChecker(server.URL)
	auth := checker.Check(context.Background(), "example.com")

	if auth.SPF || auth.DMARC {
		t.Error("resolver failure must degrade to false, not error")
	}
}
