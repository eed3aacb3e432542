package jobs

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jobsift/jobsift/internal/engine"
)

const (
	// DefaultMaxPerSource caps per-provider results when the caller does
	// not specify one.
	DefaultMaxPerSource = 5

	// usaJobsFallbackPerPage is the page size for the vocabulary sweep.
	// Larger pages mean fewer keyword queries before the target is hit.
	usaJobsFallbackPerPage = 25
)

// Aggregator fans one search request out to every provider, merges and
// deduplicates the results. Provider failures are logged and absorbed; an
// aggregation never fails as a whole.
type Aggregator struct {
	vocab     *engine.Vocabulary
	remotive  *Remotive
	arbeitnow *Arbeitnow
	adzuna    *Adzuna
	jsearch   *JSearch
	usajobs   *USAJobs
	github    *GitHubMirror
	history   *History

	// fallbackLimiter paces the vocabulary sweep so a single aggregation
	// cannot hammer the USAJOBS API with hundreds of rapid-fire queries.
	fallbackLimiter *rate.Limiter
}

// NewAggregator wires the provider adapters from the given configuration.
// All adapters share cfg's HTTP client.
func NewAggregator(cfg engine.Config) *Aggregator {
	client := cfg.Client()
	arbeitnow := &Arbeitnow{Client: client}
	return &Aggregator{
		vocab:           engine.DefaultVocabulary,
		remotive:        &Remotive{Client: client},
		arbeitnow:       arbeitnow,
		adzuna:          &Adzuna{Client: client, AppID: cfg.AdzunaAppID, AppKey: cfg.AdzunaAppKey},
		jsearch:         &JSearch{Client: client, APIKey: cfg.RapidAPIKey},
		usajobs:         &USAJobs{Client: client, APIKey: cfg.USAJobsAPIKey, UserAgent: cfg.USAJobsUserAgent},
		github:          &GitHubMirror{Arbeitnow: arbeitnow},
		fallbackLimiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// WithHistory attaches a search history log. Without one, runs are simply
// not recorded.
func (a *Aggregator) WithHistory(h *History) *Aggregator {
	a.history = h
	return a
}

// usaJobsTarget decides whether a search targets the United States and, if
// so, which LocationName to pass along. An empty location means a global
// search, which still includes a nationwide US query.
func usaJobsTarget(location string) (name string, eligible bool) {
	if location == "" {
		return "", true
	}
	lower := strings.ToLower(location)
	if lower == "usa" || lower == "united states" {
		return location, true
	}
	for _, field := range strings.Fields(lower) {
		if field == "us" {
			return location, true
		}
	}
	return "", false
}

// remotiveKeywords appends "remote" unless already present, since Remotive
// is a remote-only board and benefits from the hint.
func remotiveKeywords(keywords []string) []string {
	for _, kw := range keywords {
		if strings.EqualFold(kw, "remote") {
			return keywords
		}
	}
	return append(append([]string(nil), keywords...), "remote")
}

// Aggregate runs one full multi-provider search. Providers run concurrently
// and their results are concatenated in a fixed provider order before
// deduplication, so output ordering is deterministic for a given set of
// provider responses.
func (a *Aggregator) Aggregate(ctx context.Context, req engine.SearchRequest) engine.AggregateOutput {
	engine.IncrAggregateRequests()

	limit := req.MaxJobsPerSource
	if limit <= 0 {
		limit = DefaultMaxPerSource
	}
	res := ResolveKeywords(req.Keywords, req.SkillsPath)

	slog.Info("aggregate: starting",
		slog.Int("keywords", len(res.Keywords)),
		slog.String("location", req.Location),
		slog.Int("max_per_source", limit),
		slog.Bool("skills_file", res.FromSkillsFile))

	type fetch struct {
		name string
		run  func(context.Context) ([]engine.JobRecord, error)
	}
	fetches := []fetch{
		{a.remotive.Name(), func(ctx context.Context) ([]engine.JobRecord, error) {
			return a.remotive.Fetch(ctx, remotiveKeywords(res.Keywords), limit, "")
		}},
		{a.arbeitnow.Name(), func(ctx context.Context) ([]engine.JobRecord, error) {
			return a.arbeitnow.Fetch(ctx, res.Keywords, limit, req.Location)
		}},
		{a.adzuna.Name(), func(ctx context.Context) ([]engine.JobRecord, error) {
			return a.adzuna.Fetch(ctx, res.Keywords, limit, req.Location)
		}},
		{a.jsearch.Name(), func(ctx context.Context) ([]engine.JobRecord, error) {
			return a.jsearch.Fetch(ctx, res.Keywords, limit, req.Location)
		}},
	}

	if usaLocation, eligible := usaJobsTarget(req.Location); eligible {
		switch {
		case res.FromSkillsFile:
			fetches = append(fetches, fetch{a.usajobs.Name(), func(ctx context.Context) ([]engine.JobRecord, error) {
				return a.usajobs.Fetch(ctx, res.Keywords, limit, usaLocation)
			}})
		case a.usajobs.Enabled():
			fetches = append(fetches, fetch{"usajobs-fallback", func(ctx context.Context) ([]engine.JobRecord, error) {
				return a.usaJobsFallback(ctx, usaLocation, limit), nil
			}})
		default:
			slog.Warn("aggregate: usajobs credentials not set, skipping US search")
		}
	}

	fetches = append(fetches, fetch{a.github.Name(), func(ctx context.Context) ([]engine.JobRecord, error) {
		return a.github.Fetch(ctx, res.Keywords, limit, req.Location)
	}})

	results := make([][]engine.JobRecord, len(fetches))
	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func(i int, f fetch) {
			defer wg.Done()
			recs, err := f.run(ctx)
			if err != nil {
				engine.IncrProviderErrors()
				slog.Warn("aggregate: provider error",
					slog.String("provider", f.name), slog.Any("error", err))
				return
			}
			results[i] = recs
		}(i, f)
	}
	wg.Wait()

	var all []engine.JobRecord
	for _, recs := range results {
		all = append(all, recs...)
	}
	unique := Dedupe(all)
	slog.Info("aggregate: complete",
		slog.Int("fetched", len(all)), slog.Int("unique", len(unique)))

	if a.history != nil {
		if err := a.history.Record(ctx, res, req.Location, unique); err != nil {
			slog.Warn("aggregate: history record failed", slog.Any("error", err))
		}
	}

	return engine.AggregateOutput{
		EffectiveKeywords: res.Keywords,
		UsedSkillsFile:    res.FromSkillsFile,
		Total:             len(unique),
		Jobs:              unique,
	}
}

// usaJobsFallback sweeps the skill vocabulary one term at a time until the
// target count is reached, deduplicating by the posting's native identifier.
// Per-keyword failures are logged and skipped; cancellation returns whatever
// was collected so far.
func (a *Aggregator) usaJobsFallback(ctx context.Context, location string, target int) []engine.JobRecord {
	seen := make(map[string]struct{})
	var out []engine.JobRecord
	for _, term := range a.vocab.Terms() {
		if len(out) >= target {
			break
		}
		if err := a.fallbackLimiter.Wait(ctx); err != nil {
			slog.Warn("aggregate: usajobs fallback interrupted", slog.Any("error", err))
			break
		}
		engine.IncrUSAJobsFallbackRequests()
		items, err := a.usajobs.searchKeyword(ctx, term, location, usaJobsFallbackPerPage)
		if err != nil {
			slog.Warn("aggregate: usajobs fallback keyword failed",
				slog.String("keyword", term), slog.Any("error", err))
			continue
		}
		for i := range items {
			if len(out) >= target {
				break
			}
			id := items[i].id()
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, items[i].record("USAJOBS API (Fallback Search)"))
		}
	}
	slog.Info("aggregate: usajobs fallback complete", slog.Int("jobs", len(out)))
	return out
}
