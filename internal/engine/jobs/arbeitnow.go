package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jobsift/jobsift/internal/engine"
)

const arbeitnowAPI = "https://arbeitnow.com/api/job-board-api"

// Arbeitnow queries the Arbeitnow job-board API. No auth required. The
// endpoint has no structured location filter and no server-side limit, so
// the limit is applied client-side and the caller's location only fills in
// records that arrive without one.
type Arbeitnow struct {
	Client  *http.Client
	BaseURL string
}

func (p *Arbeitnow) Name() string { return "arbeitnow" }

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Title       string      `json:"title"`
	CompanyName string      `json:"company_name"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	CreatedAt   json.Number `json:"created_at"` // unix seconds, kept provider-native
}

func (p *Arbeitnow) Fetch(ctx context.Context, keywords []string, limit int, location string) ([]engine.JobRecord, error) {
	if len(keywords) == 0 {
		slog.Info("arbeitnow: no keywords, skipping")
		return nil, nil
	}
	engine.IncrArbeitnowRequests()

	base := p.BaseURL
	if base == "" {
		base = arbeitnowAPI
	}
	params := url.Values{}
	params.Set("q", joinKeywords(keywords))
	params.Set("page", "1")

	var ar arbeitnowResponse
	if err := engine.GetJSON(ctx, p.Client, base, nil, params, &ar); err != nil {
		return nil, fmt.Errorf("arbeitnow: %w", err)
	}

	records := make([]engine.JobRecord, 0, limit)
	for _, j := range ar.Data {
		if len(records) >= limit {
			break
		}
		desc := engine.StripHTML(j.Description)
		loc := j.Location
		if loc == "" {
			if locationFilter(location) {
				loc = location
			} else {
				loc = "Not specified"
			}
		}
		records = append(records, engine.JobRecord{
			Title:           j.Title,
			Company:         j.CompanyName,
			Location:        loc,
			DescriptionText: desc,
			ExtractedSkills: engine.ExtractSkills(desc),
			URL:             j.URL,
			PublicationDate: j.CreatedAt.String(),
			SourceSite:      "Arbeitnow API",
		})
	}

	slog.Debug("arbeitnow: fetch complete", slog.Int("jobs", len(records)))
	return records, nil
}
