package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jobsift/jobsift/internal/engine"
)

const (
	adzunaBaseURL        = "https://api.adzuna.com"
	adzunaDefaultCountry = "gb"
)

// adzunaCountryCodes maps recognized country names to Adzuna's 2-letter
// market codes. Unrecognized locations fall back to the default market.
var adzunaCountryCodes = map[string]string{
	"india":          "in",
	"usa":            "us",
	"united states":  "us",
	"uk":             "gb",
	"united kingdom": "gb",
	"germany":        "de",
	"singapore":      "sg",
	"canada":         "ca",
	"australia":      "au",
}

// Adzuna queries the Adzuna search API. Auth is an app_id/app_key pair sent
// as query parameters; the country code is part of the URL path while the
// free-text location goes into the `where` parameter.
type Adzuna struct {
	Client  *http.Client
	AppID   string
	AppKey  string
	BaseURL string
}

func (p *Adzuna) Name() string { return "adzuna" }

// Enabled reports whether credentials are configured.
func (p *Adzuna) Enabled() bool { return p.AppID != "" && p.AppKey != "" }

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

type adzunaJob struct {
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description string `json:"description"`
	RedirectURL string `json:"redirect_url"`
	Created     string `json:"created"`
}

// AdzunaCountryCode resolves a free-text location to an Adzuna market code.
func AdzunaCountryCode(location string) string {
	if location == "" {
		return adzunaDefaultCountry
	}
	if code, ok := adzunaCountryCodes[strings.ToLower(location)]; ok {
		return code
	}
	return adzunaDefaultCountry
}

func (p *Adzuna) Fetch(ctx context.Context, keywords []string, limit int, location string) ([]engine.JobRecord, error) {
	if !p.Enabled() {
		slog.Info("adzuna: app_id/app_key not set, skipping")
		return nil, nil
	}
	if len(keywords) == 0 {
		slog.Info("adzuna: no keywords, skipping")
		return nil, nil
	}
	engine.IncrAdzunaRequests()

	base := p.BaseURL
	if base == "" {
		base = adzunaBaseURL
	}
	endpoint := fmt.Sprintf("%s/v1/api/jobs/%s/search/1", strings.TrimSuffix(base, "/"), AdzunaCountryCode(location))

	params := url.Values{}
	params.Set("app_id", p.AppID)
	params.Set("app_key", p.AppKey)
	params.Set("results_per_page", strconv.Itoa(limit))
	params.Set("what", joinKeywords(keywords))
	params.Set("content-type", "application/json")
	if locationFilter(location) {
		params.Set("where", location)
	}

	var ar adzunaResponse
	if err := engine.GetJSON(ctx, p.Client, endpoint, nil, params, &ar); err != nil {
		return nil, fmt.Errorf("adzuna: %w", err)
	}

	records := make([]engine.JobRecord, 0, len(ar.Results))
	for _, j := range ar.Results {
		desc := engine.StripHTML(j.Description)
		records = append(records, engine.JobRecord{
			Title:           j.Title,
			Company:         j.Company.DisplayName,
			Location:        j.Location.DisplayName,
			DescriptionText: desc,
			ExtractedSkills: engine.ExtractSkills(desc),
			URL:             j.RedirectURL,
			PublicationDate: j.Created,
			SourceSite:      "Adzuna API",
		})
	}
	if len(records) > limit {
		records = records[:limit]
	}

	slog.Debug("adzuna: fetch complete", slog.Int("jobs", len(records)))
	return records, nil
}
