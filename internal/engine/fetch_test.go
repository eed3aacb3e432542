package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "golang" {
			t.Errorf("q = %q, want golang", got)
		}
		if got := r.Header.Get("X-Custom"); got != "yes" {
			t.Errorf("X-Custom = %q, want yes", got)
		}
		if !strings.Contains(r.Header.Get("User-Agent"), "JobSift") {
			t.Errorf("User-Agent = %q, want default agent", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value": 42}`))
	}))
	defer srv.Close()

	var out struct {
		Value int `json:"value"`
	}
	params := url.Values{}
	params.Set("q", "golang")
	err := GetJSON(context.Background(), srv.Client(), srv.URL, map[string]string{"X-Custom": "yes"}, params, &out)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Value != 42 {
		t.Errorf("Value = %d, want 42", out.Value)
	}
}

func TestGetJSONHostOverride(t *testing.T) {
	var gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost = r.Host
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var out struct{}
	err := GetJSON(context.Background(), srv.Client(), srv.URL, map[string]string{"Host": "data.usajobs.gov"}, nil, &out)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if gotHost != "data.usajobs.gov" {
		t.Errorf("Host = %q, want override applied", gotHost)
	}
}

func TestGetJSONRetriesTransientStatus(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	err := GetJSON(context.Background(), srv.Client(), srv.URL, nil, nil, &out)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want retry then success", calls)
	}
	if !out.OK {
		t.Error("decoded value lost after retry")
	}
}

func TestGetJSONPermanentStatus(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	var out struct{}
	err := GetJSON(context.Background(), srv.Client(), srv.URL, nil, nil, &out)
	if err == nil {
		t.Fatal("expected error for 403")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want no retries on a client error", calls)
	}
}

func TestGetJSONInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	var out struct{}
	if err := GetJSON(context.Background(), srv.Client(), srv.URL, nil, nil, &out); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGetJSONBadURL(t *testing.T) {
	var out struct{}
	if err := GetJSON(context.Background(), nil, "://bad", nil, nil, &out); err == nil {
		t.Fatal("expected parse error")
	}
}
