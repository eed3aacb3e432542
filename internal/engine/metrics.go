package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AggregateRequests       atomic.Int64
	RemotiveRequests        atomic.Int64
	ArbeitnowRequests       atomic.Int64
	AdzunaRequests          atomic.Int64
	JSearchRequests         atomic.Int64
	USAJobsRequests         atomic.Int64
	USAJobsFallbackRequests atomic.Int64
	ProviderErrors          atomic.Int64
}

func IncrAggregateRequests()       { metrics.AggregateRequests.Add(1) }
func IncrRemotiveRequests()        { metrics.RemotiveRequests.Add(1) }
func IncrArbeitnowRequests()       { metrics.ArbeitnowRequests.Add(1) }
func IncrAdzunaRequests()          { metrics.AdzunaRequests.Add(1) }
func IncrJSearchRequests()         { metrics.JSearchRequests.Add(1) }
func IncrUSAJobsRequests()         { metrics.USAJobsRequests.Add(1) }
func IncrUSAJobsFallbackRequests() { metrics.USAJobsFallbackRequests.Add(1) }
func IncrProviderErrors()          { metrics.ProviderErrors.Add(1) }

// GetMetrics returns a snapshot of all counters including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"aggregate_requests":        metrics.AggregateRequests.Load(),
		"remotive_requests":         metrics.RemotiveRequests.Load(),
		"arbeitnow_requests":        metrics.ArbeitnowRequests.Load(),
		"adzuna_requests":           metrics.AdzunaRequests.Load(),
		"jsearch_requests":          metrics.JSearchRequests.Load(),
		"usajobs_requests":          metrics.USAJobsRequests.Load(),
		"usajobs_fallback_requests": metrics.USAJobsFallbackRequests.Load(),
		"provider_errors":           metrics.ProviderErrors.Load(),
		"cache_hits":                hits,
		"cache_misses":              misses,
	}
}

// FormatMetrics renders counters as a simple text format for the HTTP
// /metrics endpoint, sorted by name for stable output.
func FormatMetrics() string {
	snapshot := GetMetrics()
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s %d\n", name, snapshot[name])
	}
	return b.String()
}
