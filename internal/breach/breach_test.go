package breach

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const listingJSON = `[
	{"Name":"OldLeak","Domain":"example.com","BreachDate":"2019-03-01","PwnCount":1000},
	{"Name":"NewLeak","Domain":"example.com","BreachDate":"2023-07-15","PwnCount":5000},
	{"Name":"SubLeak","Domain":"shop.example.com","BreachDate":"2021-01-01","PwnCount":200},
	{"Name":"Other","Domain":"unrelated.org","BreachDate":"2022-05-05","PwnCount":99},
	{"Name":"NoDomain","Domain":"","BreachDate":"2022-06-06","PwnCount":1}
]`

func TestCheckFiltersAndSorts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingJSON)
	}))
	defer server.Close()

	checker := NewChecker(server.URL)
	breaches := checker.Check(context.Background(), "www.example.com")

	if len(breaches) != 3 {
		t.Fatalf("expected 3 matching breaches, got %d: %v", len(breaches), breaches)
	}
	if breaches[0].Name != "NewLeak" {
		t.Errorf("expected newest breach first, got %q", breaches[0].Name)
	}
	if breaches[2].Name != "OldLeak" {
		t.Errorf("expected oldest breach last, got %q", breaches[2].Name)
	}
}

func TestCheckCapsAtFive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[`)
		for i := 0; i < 8; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"Name":"L%d","Domain":"example.com","BreachDate":"202%d-01-01","PwnCount":1}`, i, i)
		}
		fmt.Fprint(w, `]`)
	}))
	defer server.Close()

	checker := NewChecker(server.URL)
	breaches := checker.Check(context.Background(), "example.com")

	if len(breaches) != 5 {
		t.Fatalf("expected cap at 5 breaches, got %d", len(breaches))
	}
}

func TestCheckFailuresReturnEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	checker := NewChecker(server.URL)
	if got := checker.Check(context.Background(), "example.com"); len(got) != 0 {
		t.Fatalf("HTTP failure must yield an empty list, got %v", got)
	}

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{not json")
	}))
	defer broken.Close()

	checker = NewChecker(broken.URL)
	if got := checker.Check(context.Background(), "example.com"); len(got) != 0 {
		t.Fatalf("decode failure must yield an empty list, got %v", got)
	}
}
