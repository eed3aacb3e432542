package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jobsift/jobsift/internal/engine"
)

const jsearchHost = "jsearch.p.rapidapi.com"

// JSearch queries the JSearch API on RapidAPI. Auth is a subscription key
// plus the fixed routing host, both sent as headers. The endpoint has no
// per-item limit parameter, so one page is fetched and sliced client-side;
// location is embedded in the free-text query.
type JSearch struct {
	Client  *http.Client
	APIKey  string
	Host    string // RapidAPI routing host, defaults to jsearchHost
	BaseURL string
}

func (p *JSearch) Name() string { return "jsearch" }

// Enabled reports whether the RapidAPI key is configured.
func (p *JSearch) Enabled() bool { return p.APIKey != "" }

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

type jsearchJob struct {
	JobTitle       string `json:"job_title"`
	EmployerName   string `json:"employer_name"`
	JobCity        string `json:"job_city"`
	JobState       string `json:"job_state"`
	JobCountry     string `json:"job_country"`
	JobDescription string `json:"job_description"`
	JobApplyLink   string `json:"job_apply_link"`
	JobGoogleLink  string `json:"job_google_link"`
	JobPostedAtUTC string `json:"job_posted_at_datetime_utc"`
}

func (p *JSearch) Fetch(ctx context.Context, keywords []string, limit int, location string) ([]engine.JobRecord, error) {
	if !p.Enabled() {
		slog.Info("jsearch: rapidapi key not set, skipping")
		return nil, nil
	}
	if len(keywords) == 0 {
		slog.Info("jsearch: no keywords, skipping")
		return nil, nil
	}
	engine.IncrJSearchRequests()

	host := p.Host
	if host == "" {
		host = jsearchHost
	}
	base := p.BaseURL
	if base == "" {
		base = "https://" + host + "/search"
	}

	query := joinKeywords(keywords)
	if locationFilter(location) {
		query += " in " + location
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "1")

	headers := map[string]string{
		"X-RapidAPI-Key":  p.APIKey,
		"X-RapidAPI-Host": host,
	}

	var jr jsearchResponse
	if err := engine.GetJSON(ctx, p.Client, base, headers, params, &jr); err != nil {
		return nil, fmt.Errorf("jsearch: %w", err)
	}

	records := make([]engine.JobRecord, 0, limit)
	for _, j := range jr.Data {
		if len(records) >= limit {
			break
		}
		desc := engine.StripHTML(j.JobDescription)

		var locParts []string
		for _, part := range []string{j.JobCity, j.JobState, j.JobCountry} {
			if part != "" {
				locParts = append(locParts, part)
			}
		}
		loc := strings.Join(locParts, ", ")
		if loc == "" {
			loc = "Not specified"
		}

		jobURL := j.JobApplyLink
		if jobURL == "" {
			jobURL = j.JobGoogleLink
		}

		records = append(records, engine.JobRecord{
			Title:           j.JobTitle,
			Company:         j.EmployerName,
			Location:        loc,
			DescriptionText: desc,
			ExtractedSkills: engine.ExtractSkills(desc),
			URL:             jobURL,
			PublicationDate: j.JobPostedAtUTC,
			SourceSite:      "JSearch API (RapidAPI)",
		})
	}

	slog.Debug("jsearch: fetch complete", slog.Int("jobs", len(records)))
	return records, nil
}
