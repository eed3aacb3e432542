package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jobsift/jobsift/internal/engine"
)

const (
	usaJobsAPI  = "https://data.usajobs.gov/api/search"
	usaJobsHost = "data.usajobs.gov"
)

// USAJobs queries the federal USAJOBS search API. Auth is a key plus a
// registered User-Agent (the email used at signup), and the API rejects
// requests whose Host header does not match data.usajobs.gov.
type USAJobs struct {
	Client    *http.Client
	APIKey    string
	UserAgent string
	BaseURL   string
}

func (p *USAJobs) Name() string { return "usajobs" }

// Enabled reports whether both credentials are configured.
func (p *USAJobs) Enabled() bool { return p.APIKey != "" && p.UserAgent != "" }

func (p *USAJobs) endpoint() string {
	if p.BaseURL != "" {
		return p.BaseURL
	}
	return usaJobsAPI
}

func (p *USAJobs) headers() map[string]string {
	return map[string]string{
		"Authorization-Key": p.APIKey,
		"User-Agent":        p.UserAgent,
		"Host":              usaJobsHost,
	}
}

type usaJobsResponse struct {
	SearchResult struct {
		SearchResultItems []usaJobsItem `json:"SearchResultItems"`
	} `json:"SearchResult"`
}

type usaJobsItem struct {
	MatchedObjectID         string            `json:"MatchedObjectId"`
	MatchedObjectDescriptor usaJobsDescriptor `json:"MatchedObjectDescriptor"`
}

// id returns the stable identifier for an opening, preferring PositionID
// over the search engine's internal MatchedObjectId.
func (it *usaJobsItem) id() string {
	if it.MatchedObjectDescriptor.PositionID != "" {
		return it.MatchedObjectDescriptor.PositionID
	}
	return it.MatchedObjectID
}

type usaJobsDescriptor struct {
	PositionID              string `json:"PositionID"`
	PositionTitle           string `json:"PositionTitle"`
	OrganizationName        string `json:"OrganizationName"`
	PositionLocationDisplay string `json:"PositionLocationDisplay"`
	PositionURI             string `json:"PositionURI"`
	PublicationStartDate    string `json:"PublicationStartDate"`
	UserArea                struct {
		Details struct {
			JobSummary   string       `json:"JobSummary"`
			MajorDuties  stringOrList `json:"MajorDuties"`
			Requirements string       `json:"Requirements"`
		} `json:"Details"`
	} `json:"UserArea"`
}

// stringOrList tolerates fields the API serves as either a plain string or
// an array of strings. MajorDuties is the known offender.
type stringOrList string

func (s *stringOrList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = stringOrList(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = stringOrList(strings.Join(many, " "))
	return nil
}

func (it *usaJobsItem) record(sourceSite string) engine.JobRecord {
	d := &it.MatchedObjectDescriptor
	parts := make([]string, 0, 3)
	for _, p := range []string{d.UserArea.Details.JobSummary, string(d.UserArea.Details.MajorDuties), d.UserArea.Details.Requirements} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	desc := engine.CollapseWhitespace(strings.Join(parts, " "))
	return engine.JobRecord{
		Title:           d.PositionTitle,
		Company:         d.OrganizationName,
		Location:        d.PositionLocationDisplay,
		DescriptionText: desc,
		ExtractedSkills: engine.ExtractSkills(desc),
		URL:             d.PositionURI,
		PublicationDate: d.PublicationStartDate,
		SourceSite:      sourceSite,
	}
}

// Fetch runs a standard keyword search. An empty location means a nationwide
// search; the aggregator decides whether the overall request targets the US
// at all before calling this.
func (p *USAJobs) Fetch(ctx context.Context, keywords []string, limit int, location string) ([]engine.JobRecord, error) {
	if !p.Enabled() {
		slog.Info("usajobs: api key or user agent not set, skipping")
		return nil, nil
	}
	if len(keywords) == 0 {
		slog.Info("usajobs: no keywords, skipping")
		return nil, nil
	}
	engine.IncrUSAJobsRequests()

	params := url.Values{}
	params.Set("Keyword", joinKeywords(keywords))
	params.Set("ResultsPerPage", strconv.Itoa(limit))
	if location != "" {
		params.Set("LocationName", location)
	}

	var ur usaJobsResponse
	if err := engine.GetJSON(ctx, p.Client, p.endpoint(), p.headers(), params, &ur); err != nil {
		return nil, fmt.Errorf("usajobs: %w", err)
	}

	items := ur.SearchResult.SearchResultItems
	records := make([]engine.JobRecord, 0, len(items))
	for i := range items {
		records = append(records, items[i].record("USAJOBS API"))
	}
	if len(records) > limit {
		records = records[:limit]
	}

	slog.Debug("usajobs: fetch complete", slog.Int("jobs", len(records)))
	return records, nil
}

// searchKeyword runs a single-keyword query and returns the raw result items.
// The aggregator uses it to sweep the skill vocabulary one term at a time
// when no personalized keyword list is available.
func (p *USAJobs) searchKeyword(ctx context.Context, keyword, location string, perPage int) ([]usaJobsItem, error) {
	params := url.Values{}
	params.Set("Keyword", keyword)
	params.Set("ResultsPerPage", strconv.Itoa(perPage))
	if location != "" {
		params.Set("LocationName", location)
	}

	var ur usaJobsResponse
	if err := engine.GetJSON(ctx, p.Client, p.endpoint(), p.headers(), params, &ur); err != nil {
		return nil, fmt.Errorf("usajobs keyword %q: %w", keyword, err)
	}
	return ur.SearchResult.SearchResultItems, nil
}
