package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jobsift/jobsift/internal/engine"
)

const remotiveAPI = "https://remotive.com/api/remote-jobs"

// Remotive queries the Remotive public JSON API. No auth required; results
// are filtered server-side by the `search` parameter and capped server-side
// by `limit`. Remote-only board, so location is never sent as a filter.
type Remotive struct {
	Client  *http.Client
	BaseURL string // defaults to the public endpoint; overridable for tests
}

func (p *Remotive) Name() string { return "remotive" }

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	Title                     string `json:"title"`
	CompanyName               string `json:"company_name"`
	CandidateRequiredLocation string `json:"candidate_required_location"`
	Description               string `json:"description"`
	URL                       string `json:"url"`
	PublicationDate           string `json:"publication_date"`
}

func (p *Remotive) Fetch(ctx context.Context, keywords []string, limit int, _ string) ([]engine.JobRecord, error) {
	if len(keywords) == 0 {
		slog.Info("remotive: no keywords, skipping")
		return nil, nil
	}
	engine.IncrRemotiveRequests()

	base := p.BaseURL
	if base == "" {
		base = remotiveAPI
	}
	params := url.Values{}
	params.Set("search", joinKeywords(keywords))
	params.Set("limit", strconv.Itoa(limit))

	var rr remotiveResponse
	if err := engine.GetJSON(ctx, p.Client, base, nil, params, &rr); err != nil {
		return nil, fmt.Errorf("remotive: %w", err)
	}

	records := make([]engine.JobRecord, 0, len(rr.Jobs))
	for _, j := range rr.Jobs {
		desc := engine.StripHTML(j.Description)
		location := j.CandidateRequiredLocation
		if location == "" {
			location = "Remote"
		}
		records = append(records, engine.JobRecord{
			Title:           j.Title,
			Company:         j.CompanyName,
			Location:        location,
			DescriptionText: desc,
			ExtractedSkills: engine.ExtractSkills(desc),
			URL:             j.URL,
			PublicationDate: j.PublicationDate,
			SourceSite:      "Remotive API",
		})
	}
	if len(records) > limit {
		records = records[:limit]
	}

	slog.Debug("remotive: fetch complete", slog.Int("jobs", len(records)))
	return records, nil
}
