// Package jobs implements the multi-source job aggregation engine:
// one adapter per external job-listing API, keyword fallback resolution,
// the fan-out aggregator, and cross-source deduplication.
package jobs

import (
	"context"
	"strings"

	"github.com/jobsift/jobsift/internal/engine"
)

// Provider is one external job source. Fetch translates the common
// (keywords, limit, location) triple into the provider's native query,
// normalizes the response into JobRecords capped at limit, and returns an
// error only for transport or response-shape failures. A provider whose
// credentials are missing returns (nil, nil) and logs the skip; the
// aggregator treats both cases as zero results.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, keywords []string, limit int, location string) ([]engine.JobRecord, error)
}

var (
	_ Provider = (*Remotive)(nil)
	_ Provider = (*Arbeitnow)(nil)
	_ Provider = (*Adzuna)(nil)
	_ Provider = (*JSearch)(nil)
	_ Provider = (*USAJobs)(nil)
	_ Provider = (*GitHubMirror)(nil)
)

// joinKeywords flattens a keyword list into a single provider query string.
func joinKeywords(keywords []string) string {
	return strings.Join(keywords, " ")
}

// locationFilter reports whether loc is a usable location filter.
// "any" is the caller's way of saying no preference.
func locationFilter(loc string) bool {
	return loc != "" && !strings.EqualFold(loc, "any")
}
