package jobs

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jobsift/jobsift/internal/engine"
)

// developerHints mark a keyword set as developer-themed, which is the only
// case the mirror serves.
var developerHints = []string{"developer", "engineer", "software", "code", "repository"}

// GitHubMirror stands in for the retired GitHub Jobs API. When the keyword
// set looks developer-themed it delegates to Arbeitnow with an augmented
// keyword list; otherwise it yields nothing.
type GitHubMirror struct {
	Arbeitnow *Arbeitnow
}

func (p *GitHubMirror) Name() string { return "github-mirror" }

func developerThemed(keywords []string) bool {
	joined := strings.ToLower(strings.Join(keywords, " "))
	for _, kw := range keywords {
		if strings.EqualFold(kw, "github") {
			return true
		}
	}
	for _, hint := range developerHints {
		if strings.Contains(joined, hint) {
			return true
		}
	}
	return false
}

// proxyKeywords appends the augmentation terms, dropping duplicates while
// keeping first-seen order.
func proxyKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords)+4)
	seen := make(map[string]struct{}, len(keywords)+4)
	for _, kw := range append(append([]string(nil), keywords...), "developer", "engineer", "software", "remote") {
		key := strings.ToLower(kw)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, kw)
	}
	return out
}

func (p *GitHubMirror) Fetch(ctx context.Context, keywords []string, limit int, location string) ([]engine.JobRecord, error) {
	if len(keywords) == 0 {
		slog.Info("github-mirror: no keywords, skipping")
		return nil, nil
	}
	if !developerThemed(keywords) {
		slog.Info("github-mirror: keywords not developer-themed, no proxy search")
		return nil, nil
	}
	return p.Arbeitnow.Fetch(ctx, proxyKeywords(keywords), limit, location)
}
