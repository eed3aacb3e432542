package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleAdzunaJSON = `{
	"results": [
		{
			"title": "DevOps Engineer",
			"company": {"display_name": "CloudCo"},
			"location": {"display_name": "London, UK"},
			"description": "Terraform and AWS pipelines",
			"redirect_url": "https://adzuna.com/details/1",
			"created": "2025-06-15T10:00:00Z"
		}
	]
}`

func TestAdzunaCountryCode(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"India", "in"},
		{"usa", "us"},
		{"United States", "us"},
		{"UK", "gb"},
		{"united kingdom", "gb"},
		{"Germany", "de"},
		{"Singapore", "sg"},
		{"Canada", "ca"},
		{"Australia", "au"},
		{"", "gb"},
		{"France", "gb"},
		{"Mars", "gb"},
	}
	for _, tt := range tests {
		if got := AdzunaCountryCode(tt.location); got != tt.want {
			t.Errorf("AdzunaCountryCode(%q) = %q, want %q", tt.location, got, tt.want)
		}
	}
}

func TestAdzunaFetch(t *testing.T) {
	var gotPath, gotWhere string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotWhere = r.URL.Query().Get("where")
		if r.URL.Query().Get("app_id") != "id" || r.URL.Query().Get("app_key") != "key" {
			t.Error("credentials missing from query")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleAdzunaJSON))
	}))
	defer srv.Close()

	p := &Adzuna{Client: srv.Client(), AppID: "id", AppKey: "key", BaseURL: srv.URL}
	records, err := p.Fetch(context.Background(), []string{"devops"}, 5, "Germany")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotPath != "/v1/api/jobs/de/search/1" {
		t.Errorf("path = %q, want country code in path", gotPath)
	}
	if gotWhere != "Germany" {
		t.Errorf("where = %q, want Germany", gotWhere)
	}
	if len(records) != 1 {
		t.Fatalf("len = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.Company != "CloudCo" || rec.Location != "London, UK" {
		t.Errorf("nested fields not flattened: %+v", rec)
	}
	if rec.SourceSite != "Adzuna API" {
		t.Errorf("SourceSite = %q", rec.SourceSite)
	}
}

func TestAdzunaFetchDisabled(t *testing.T) {
	p := &Adzuna{Client: http.DefaultClient}
	records, err := p.Fetch(context.Background(), []string{"devops"}, 5, "")
	if err != nil || records != nil {
		t.Errorf("Fetch without credentials = %v, %v, want nil, nil", records, err)
	}
}

func TestAdzunaFetchAnyLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("where") {
			t.Error("where sent for location=any")
		}
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	p := &Adzuna{Client: srv.Client(), AppID: "id", AppKey: "key", BaseURL: srv.URL}
	if _, err := p.Fetch(context.Background(), []string{"devops"}, 5, "any"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
}
