package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleJSearchJSON = `{
	"data": [
		{
			"job_title": "Data Engineer",
			"employer_name": "DataWorks",
			"job_city": "Austin",
			"job_state": "TX",
			"job_country": "US",
			"job_description": "Spark and Airflow pipelines",
			"job_apply_link": "https://example.com/apply/1",
			"job_google_link": "https://google.com/jobs/1",
			"job_posted_at_datetime_utc": "2025-06-20T00:00:00.000Z"
		},
		{
			"job_title": "ML Engineer",
			"employer_name": "ModelHouse",
			"job_city": "",
			"job_state": "",
			"job_country": "",
			"job_description": "PyTorch",
			"job_apply_link": "",
			"job_google_link": "https://google.com/jobs/2",
			"job_posted_at_datetime_utc": ""
		}
	]
}`

func TestJSearchFetch(t *testing.T) {
	var gotQuery, gotKey, gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleJSearchJSON))
	}))
	defer srv.Close()

	p := &JSearch{Client: srv.Client(), APIKey: "secret", BaseURL: srv.URL}
	records, err := p.Fetch(context.Background(), []string{"data", "engineer"}, 5, "United States")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotQuery != "data engineer in United States" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotKey != "secret" || gotHost != "jsearch.p.rapidapi.com" {
		t.Errorf("rapidapi headers = %q / %q", gotKey, gotHost)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].Location != "Austin, TX, US" {
		t.Errorf("Location = %q, want joined city/state/country", records[0].Location)
	}
	if records[0].URL != "https://example.com/apply/1" {
		t.Errorf("URL = %q, want apply link preferred", records[0].URL)
	}
	if records[1].Location != "Not specified" {
		t.Errorf("Location = %q, want Not specified", records[1].Location)
	}
	if records[1].URL != "https://google.com/jobs/2" {
		t.Errorf("URL = %q, want google link fallback", records[1].URL)
	}
	if records[0].SourceSite != "JSearch API (RapidAPI)" {
		t.Errorf("SourceSite = %q", records[0].SourceSite)
	}
}

func TestJSearchFetchDisabled(t *testing.T) {
	p := &JSearch{Client: http.DefaultClient}
	records, err := p.Fetch(context.Background(), []string{"x"}, 5, "")
	if err != nil || records != nil {
		t.Errorf("Fetch without key = %v, %v, want nil, nil", records, err)
	}
}
