package company

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSuggest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "netf" {
			t.Errorf("query param = %q, want %q", got, "netf")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Netflix","domain":"netflix.com","logo":"https://logo.clearbit.com/netflix.com"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got := c.Suggest(context.Background(), "netf")

	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].Name != "Netflix" || got[0].Domain != "netflix.com" {
		t.Errorf("suggestion = %+v, want Netflix/netflix.com", got[0])
	}
}

func TestSuggest_ShortQuery(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if got := c.Suggest(context.Background(), "n"); got != nil {
		t.Errorf("short query returned %v, want nil", got)
	}
	if called {
		t.Error("short query hit the server")
	}
}

func TestSuggest_FailuresDegradeToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL)
			if got := c.Suggest(context.Background(), "netflix"); len(got) != 0 {
				t.Errorf("failure returned %v, want empty", got)
			}
		})
	}
}

func TestSuggest_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately unreachable

	c := NewClient(srv.URL)
	if got := c.Suggest(context.Background(), "netflix"); len(got) != 0 {
		t.Errorf("unreachable server returned %v, want empty", got)
	}
}
